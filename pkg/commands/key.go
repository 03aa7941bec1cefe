package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/questlog/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the legend for month symbols and outcome highlights.",
		Example: `
questlog key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return k.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
