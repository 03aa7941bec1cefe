package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/questlog/pkg/commands/options"
	"tableflip.dev/questlog/pkg/runner/show"
)

func addSections(topLevel *cobra.Command, env *environment) {
	sections := []struct {
		section   show.Section
		short     string
		example   string
		withMonth bool
	}{
		{
			section: show.SectionStats,
			short:   "Print the character stats and active modifiers.",
			example: `
questlog stats
questlog stats --json
`,
		},
		{
			section: show.SectionMonths,
			short:   "List the months of the year and which have events.",
			example: `
questlog months
questlog months --year 2027 --json
`,
		},
		{
			section: show.SectionTimeline,
			short:   "Print the completed days of one month.",
			example: `
questlog timeline
questlog timeline --month 3
`,
			withMonth: true,
		},
	}

	for _, s := range sections {
		s := s
		mo := &options.MonthOptions{}
		oo := &options.OutputOptions{}

		cmd := &cobra.Command{
			Use:     string(s.section),
			Short:   s.short,
			Example: s.example,
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return oo.HandleError(runShow(cmd, env, s.section, mo, oo))
			},
		}
		if s.withMonth {
			options.AddMonthArgs(cmd, mo)
			registerMonthCompletion(cmd, env)
		}
		options.AddOutputArg(cmd, oo)

		topLevel.AddCommand(cmd)
	}
}
