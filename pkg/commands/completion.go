package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/questlog/pkg/config"
	"tableflip.dev/questlog/pkg/logging"
	"tableflip.dev/questlog/pkg/source"
	"tableflip.dev/questlog/pkg/viewmodel"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(questlog completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(questlog completion)
`,
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerMonthCompletion(cmd *cobra.Command, env *environment) {
	_ = cmd.RegisterFlagCompletionFunc("month", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return monthCompletions(env, toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// monthCompletions lists the months of the document that have events.
// Completion runs without PersistentPreRunE, so the config is read here.
func monthCompletions(env *environment, toComplete string) []string {
	cfg, err := config.Load(env.v)
	if err != nil {
		return nil
	}
	loader := &source.Loader{Logger: logging.Quiet()}
	doc, err := loader.Load(context.Background(), cfg.Document)
	if err != nil {
		return nil
	}
	months, err := viewmodel.AvailableMonths(doc.QuestProgress.CompletedDays)
	if err != nil {
		return nil
	}
	var out []string
	for _, m := range months.Sorted() {
		if strings.HasPrefix(m, toComplete) {
			out = append(out, m)
		}
	}
	return out
}
