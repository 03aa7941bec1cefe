package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   HeaderTheme
	Card     CardTheme
	Month    MonthTheme
	Calendar CalendarTheme
	Timeline TimelineTheme
	Footer   FooterTheme
}

// HeaderTheme styles the title line.
type HeaderTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
}

// CardTheme styles the stats cards.
type CardTheme struct {
	Frame lipgloss.Style
	Label lipgloss.Style
	Value lipgloss.Style
	Badge lipgloss.Style
	// BarEmpty is the unfilled part of the HP bar; the filled part is
	// colored by percentage.
	BarEmpty lipgloss.Style
}

// MonthTheme styles the month selector buttons.
type MonthTheme struct {
	Enabled  lipgloss.Style
	Disabled lipgloss.Style
	Selected lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Header   lipgloss.Style
	Empty    lipgloss.Style
	Entry    lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
}

// TimelineTheme styles the timeline entries.
type TimelineTheme struct {
	Frame       lipgloss.Style
	Date        lipgloss.Style
	Today       lipgloss.Style
	Event       lipgloss.Style
	Outcome     lipgloss.Style
	Success     lipgloss.Style
	Placeholder lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Prompt  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)

	enabled := lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Padding(0, 1)

	return Theme{
		Header: HeaderTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		},
		Card: CardTheme{
			Frame:    frame.Width(24),
			Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Value:    lipgloss.NewStyle().Bold(true),
			Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("177")),
			BarEmpty: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		},
		Month: MonthTheme{
			Enabled:  enabled,
			Disabled: enabled.Foreground(lipgloss.Color("240")).Faint(true),
			Selected: enabled.Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")).Bold(true),
		},
		Calendar: CalendarTheme{
			Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
			Today:    lipgloss.NewStyle().Underline(true),
			Selected: lipgloss.NewStyle().Background(lipgloss.Color("63")).Foreground(lipgloss.Color("0")),
		},
		Timeline: TimelineTheme{
			Frame:       frame,
			Date:        lipgloss.NewStyle().Bold(true),
			Today:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
			Event:       lipgloss.NewStyle(),
			Outcome:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Success:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
			Placeholder: lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
			Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}
