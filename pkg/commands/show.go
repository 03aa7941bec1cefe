package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/questlog/pkg/commands/options"
	"tableflip.dev/questlog/pkg/runner/show"
)

func addShow(topLevel *cobra.Command, env *environment) {
	mo := &options.MonthOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print stats, the month selector and the timeline.",
		Example: `
questlog show
questlog show --month 2026-02
questlog show -f https://example.com/quest-data.json --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(runShow(cmd, env, show.SectionAll, mo, oo))
		},
	}

	options.AddMonthArgs(cmd, mo)
	options.AddOutputArg(cmd, oo)
	registerMonthCompletion(cmd, env)

	topLevel.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, env *environment, section show.Section, mo *options.MonthOptions, oo *options.OutputOptions) error {
	month, err := mo.Resolve(env.cfg.Year)
	if err != nil {
		return err
	}
	s := show.Show{
		Session:  env.session(env.logger),
		Location: env.cfg.Document,
		Month:    month,
		Section:  section,
		JSON:     oo.JSON,
		Width:    env.cfg.Width,
		Out:      oo.Writer(),
		Logger:   env.logger,
	}
	return s.Do(cmd.Context())
}
