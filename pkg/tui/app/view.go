package teaui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/questlog/pkg/app"
	"tableflip.dev/questlog/pkg/printers"
	"tableflip.dev/questlog/pkg/source"
	"tableflip.dev/questlog/pkg/tui/calendar"
	"tableflip.dev/questlog/pkg/viewmodel"
)

const hpBarCells = 16

// View renders the UI.
func (m *Model) View() string {
	sections := []string{m.renderHeader()}

	if vm := m.session.Current(); vm != nil {
		sections = append(sections,
			m.renderStats(vm.Stats),
			m.renderMonths(vm.Months),
			m.renderBody(vm),
		)
	} else {
		sections = append(sections, m.theme.Timeline.Placeholder.Render("No quest loaded."))
	}

	sections = append(sections, m.renderFooter())
	return strings.Join(sections, "\n\n")
}

func (m *Model) width() int {
	if m.termWidth <= 0 {
		return 100
	}
	return m.termWidth
}

func (m *Model) renderHeader() string {
	title := m.theme.Header.Title.Render("⚔ Quest Log")
	if m.location == "" {
		return title
	}
	return title + " " + m.theme.Header.Subtitle.Render(source.Name(m.location))
}

func (m *Model) renderStats(s viewmodel.Stats) string {
	th := m.theme.Card
	card := func(label string, lines ...string) string {
		body := append([]string{th.Label.Render(label)}, lines...)
		return th.Frame.Render(strings.Join(body, "\n"))
	}

	hp := th.Value.Render(fmt.Sprintf("%s / %s", viewmodel.FormatNumber(s.HP), viewmodel.FormatNumber(s.MaxHP)))
	spell := []string{th.Value.Render(viewmodel.FormatNumber(s.SpellPoints))}
	for _, mod := range s.Modifiers {
		spell = append(spell, th.Badge.Render(mod.Badge()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Character", th.Value.Render(s.Name), s.Class),
		card("Health", hp, m.renderHPBar(s.BarPercent())),
		card("Spell Points", spell...),
		card("Quest Progress", th.Value.Render(fmt.Sprintf("Day %d", s.DayCount)),
			fmt.Sprintf("%d events completed", s.EventsCompleted())),
	)
}

func (m *Model) renderHPBar(percent float64) string {
	filled := int(percent/100*hpBarCells + 0.5)
	full := lipgloss.NewStyle().
		Foreground(lipgloss.Color(printers.HPColor(percent).Hex())).
		Render(strings.Repeat("█", filled))
	return full + m.theme.Card.BarEmpty.Render(strings.Repeat("░", hpBarCells-filled))
}

func (m *Model) renderMonths(buttons []viewmodel.MonthButton) string {
	th := m.theme.Month
	cells := make([]string, 0, len(buttons))
	for _, b := range buttons {
		label := b.Label
		if len(label) > 3 {
			label = label[:3]
		}
		style := th.Enabled
		switch {
		case b.IsSelected:
			style = th.Selected
		case !b.Selectable():
			style = th.Disabled
		}
		cells = append(cells, style.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m *Model) renderBody(vm *app.ViewModel) string {
	cal := ""
	if first, days, err := calendar.FromTimeline(vm.Timeline, 0); err == nil {
		cal = calendar.Render(first, days, calendar.DefaultOptions(m.theme.Calendar))
	}
	calWidth := lipgloss.Width(cal)

	timelineWidth := m.width() - calWidth - 8
	if timelineWidth < 30 {
		timelineWidth = 30
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		cal,
		"    ",
		m.theme.Timeline.Frame.Width(timelineWidth).Render(m.renderTimeline(vm.Timeline, timelineWidth-4)),
	)
}

func (m *Model) renderTimeline(t viewmodel.Timeline, wrap int) string {
	th := m.theme.Timeline
	if t.IsEmpty() {
		return th.Placeholder.Render(t.Entries[0].Message)
	}
	if wrap < 10 {
		wrap = 10
	}
	emphasis := func(s string) string { return th.Success.Render(s) }

	blocks := make([]string, 0, len(t.Entries))
	for _, e := range t.Events() {
		heading := th.Date.Render(e.Heading())
		if e.IsToday {
			heading = th.Today.Render(e.Heading())
		}
		blocks = append(blocks, strings.Join([]string{
			heading,
			th.Event.Render(wordwrap.String(e.Event, wrap)),
			wordwrap.String(e.Outcome.Render(emphasis), wrap),
		}, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

func (m *Model) renderFooter() string {
	th := m.theme.Footer
	var lines []string

	if m.mode == modeOpen {
		lines = append(lines, th.Prompt.Render(m.input.View()))
	}
	if m.status != "" {
		style := th.Status
		switch m.statusKind {
		case statusSuccess:
			style = th.Success
		case statusWarning:
			style = th.Warning
		case statusError:
			style = th.Error
		}
		lines = append(lines, style.Render(wordwrap.String(m.status, m.width())))
	}

	bindings := m.keys.ShortHelp()
	if m.mode == modeOpen {
		bindings = m.keys.promptHelp()
	}
	lines = append(lines, th.Help.Render(helpLine(bindings)))
	return strings.Join(lines, "\n")
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
