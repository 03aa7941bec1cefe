package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"tableflip.dev/questlog/pkg/app"
	"tableflip.dev/questlog/pkg/viewmodel"
)

// PrettyPrint writes quest views to a terminal.
type PrettyPrint struct {
	Out     io.Writer
	Width   int
	Profile termenv.Profile
}

// New returns a printer for color.Output. The termenv profile follows the
// fatih/color switch so both agree on whether to emit escapes.
func New(width int) *PrettyPrint {
	profile := termenv.ColorProfile()
	if color.NoColor {
		profile = termenv.Ascii
	}
	return &PrettyPrint{Out: color.Output, Width: width, Profile: profile}
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 80
	}
	return pp.Width
}

var (
	titleColor   = color.New(color.Bold, color.Underline)
	labelColor   = color.New(color.Faint)
	valueColor   = color.New(color.Bold)
	todayColor   = color.New(color.Bold, color.FgHiYellow)
	successColor = color.New(color.Bold, color.FgGreen)
	badgeColor   = color.New(color.FgHiMagenta)
	emptyColor   = color.New(color.Faint, color.Italic)
	selectColor  = color.New(color.Bold, color.FgHiCyan)
)

// NewLine prints an empty line.
func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

// Title prints an underlined heading.
func (pp *PrettyPrint) Title(title string) {
	_, _ = titleColor.Fprintln(pp.out(), title)
}

// View prints stats, the month selector, the month grid and the timeline.
func (pp *PrettyPrint) View(vm *app.ViewModel) error {
	pp.Stats(vm.Stats)
	pp.NewLine()
	pp.Months(vm.Months)
	pp.NewLine()
	if err := pp.Calendar(vm.Timeline); err != nil {
		return err
	}
	pp.NewLine()
	pp.Timeline(vm.Timeline)
	return nil
}

// Stats prints the four stats cards one after another.
func (pp *PrettyPrint) Stats(s viewmodel.Stats) {
	w := pp.out()

	pp.card("Character", s.Name)
	pp.card("Class", s.Class)

	pp.card("Health Points", fmt.Sprintf("%s / %s", viewmodel.FormatNumber(s.HP), viewmodel.FormatNumber(s.MaxHP)))
	_, _ = fmt.Fprintf(w, "  %s\n", HPBar(pp.Profile, s.BarPercent(), 20))

	pp.card("Spell Points", viewmodel.FormatNumber(s.SpellPoints))
	for _, m := range s.Modifiers {
		_, _ = badgeColor.Fprintf(w, "  %s\n", m.Badge())
	}

	pp.card("Quest Progress", fmt.Sprintf("Day %d", s.DayCount))
	pp.card("Events Completed", fmt.Sprintf("%d", s.EventsCompleted()))
}

func (pp *PrettyPrint) card(label, value string) {
	w := pp.out()
	_, _ = labelColor.Fprintf(w, "%-17s", label)
	_, _ = valueColor.Fprintln(w, value)
}

// Months prints the twelve selector entries as a table. Months without
// events are faint.
func (pp *PrettyPrint) Months(buttons []viewmodel.MonthButton) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", titleColor.Sprint("Month"), titleColor.Sprint("Key"), titleColor.Sprint("Events"))
	for _, b := range buttons {
		marker := " "
		label := b.Label
		events := "-"
		if b.HasEvents {
			events = "✓"
		} else {
			label = labelColor.Sprint(label)
		}
		if b.IsSelected {
			marker = selectColor.Sprint("●")
			label = selectColor.Sprint(b.Label)
		}
		tbl.AddRow(marker, label, b.MonthKey, events)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Timeline prints the month's entries, or the placeholder when it has none.
func (pp *PrettyPrint) Timeline(t viewmodel.Timeline) {
	w := pp.out()
	title := t.MonthKey
	if name, err := monthTitle(t.MonthKey); err == nil {
		title = name
	}
	pp.Title(title)

	if t.IsEmpty() {
		_, _ = emptyColor.Fprintf(w, "  %s\n", t.Entries[0].Message)
		return
	}

	wrap := pp.width() - 4
	if wrap < 20 {
		wrap = 20
	}
	for _, e := range t.Events() {
		heading := valueColor
		if e.IsToday {
			heading = todayColor
		}
		_, _ = heading.Fprintln(w, e.Heading())
		_, _ = fmt.Fprintln(w, indent(wordwrap.String(e.Event, wrap), "    "))
		outcome := e.Outcome.Render(emphasis)
		_, _ = fmt.Fprintln(w, indent(wordwrap.String(outcome, wrap), "    "))
	}
}

func emphasis(s string) string {
	return successColor.Sprint(s)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
