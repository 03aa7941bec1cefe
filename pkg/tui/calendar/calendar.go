// Package calendar renders a month grid for the selected timeline month.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/questlog/pkg/datekey"
	"tableflip.dev/questlog/pkg/tui/theme"
	"tableflip.dev/questlog/pkg/viewmodel"
)

// Day describes metadata used when rendering the calendar.
type Day struct {
	Day        int
	HasEntry   bool
	IsToday    bool
	IsSelected bool
}

// Options controls the styling of the rendered calendar.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	EntryStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// DefaultOptions maps the calendar part of a theme onto Options.
func DefaultOptions(th theme.CalendarTheme) Options {
	return Options{
		HeaderStyle:   th.Header,
		EmptyStyle:    th.Empty,
		EntryStyle:    th.Entry,
		TodayStyle:    th.Today,
		SelectedStyle: th.Selected,
		ShowHeader:    true,
	}
}

// FromTimeline returns the first of the timeline's month and the days that
// carry events. selected may be 0.
func FromTimeline(t viewmodel.Timeline, selected int) (time.Time, []Day, error) {
	year, month, err := datekey.ParseMonthKey(t.MonthKey)
	if err != nil {
		return time.Time{}, nil, err
	}
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)

	byDay := map[int]*Day{}
	var order []int
	for _, e := range t.Events() {
		d, err := datekey.Parse(e.Date)
		if err != nil {
			return time.Time{}, nil, err
		}
		info, ok := byDay[d.Day]
		if !ok {
			info = &Day{Day: d.Day}
			byDay[d.Day] = info
			order = append(order, d.Day)
		}
		info.HasEntry = true
		info.IsToday = info.IsToday || e.IsToday
	}
	if selected > 0 {
		if _, ok := byDay[selected]; !ok {
			byDay[selected] = &Day{Day: selected}
			order = append(order, selected)
		}
		byDay[selected].IsSelected = true
	}

	days := make([]Day, 0, len(order))
	for _, d := range order {
		days = append(days, *byDay[d])
	}
	return first, days, nil
}

// Render produces a multi-line calendar string for the given month.
func Render(month time.Time, days []Day, opts Options) string {
	if month.IsZero() {
		return ""
	}

	firstOfMonth := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := daysIn(month)

	meta := make(map[int]Day, len(days))
	for _, d := range days {
		if d.Day >= 1 && d.Day <= daysInMonth {
			meta[d.Day] = d
		}
	}

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render("Su Mo Tu We Th Fr Sa"))
	}

	offset := int(firstOfMonth.Weekday()) // Sunday == 0
	rows := (offset + daysInMonth + 6) / 7
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			cells = append(cells, renderDay(meta[day], day, opts))
		}
		lines = append(lines, strings.TrimRight(strings.Join(cells, " "), " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(info Day, day int, opts Options) string {
	style := opts.EmptyStyle
	if info.HasEntry {
		style = opts.EntryStyle
	}
	if info.IsToday {
		style = style.Inherit(opts.TodayStyle)
	}
	if info.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(fmt.Sprintf("%2d", day))
}

func daysIn(month time.Time) int {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	return first.AddDate(0, 1, -1).Day()
}
