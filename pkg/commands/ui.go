package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/questlog/pkg/commands/options"
	"tableflip.dev/questlog/pkg/logging"
	"tableflip.dev/questlog/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command, env *environment) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
questlog ui
questlog ui --watch -f ~/quests/quest-data.yaml
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := env.logger
			if !env.cfg.Debug {
				// Warnings on stderr would tear the alternate screen.
				logger = logging.Quiet()
			}
			i := ui.UI{
				Session:  env.session(logger),
				Location: env.cfg.Document,
				Watch:    env.cfg.Watch,
				Logger:   logger,
			}
			return i.Do(cmd.Context())
		},
	}
	options.AddWatchArg(cmd, env.v)

	topLevel.AddCommand(cmd)
}
