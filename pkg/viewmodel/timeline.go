package viewmodel

import (
	"fmt"

	"tableflip.dev/questlog/pkg/datekey"
	"tableflip.dev/questlog/pkg/highlight"
	"tableflip.dev/questlog/pkg/quest"
)

// NoEventsMessage is shown in place of an empty month.
const NoEventsMessage = "No events recorded for this month"

const todaySuffix = " - TODAY"

// Entry is one row of the timeline. A placeholder entry stands for an empty
// month and carries only Message.
type Entry struct {
	Date      string          `json:"date,omitempty"`
	DateLabel string          `json:"date_label,omitempty"`
	IsToday   bool            `json:"is_today,omitempty"`
	Event     string          `json:"event,omitempty"`
	Outcome   highlight.Markup `json:"outcome,omitempty"`

	Placeholder bool   `json:"placeholder,omitempty"`
	Message     string `json:"message,omitempty"`
}

// Heading is the date label, marked when the entry is today.
func (e Entry) Heading() string {
	if e.IsToday {
		return e.DateLabel + todaySuffix
	}
	return e.DateLabel
}

// Timeline is the filtered view of one month.
type Timeline struct {
	MonthKey string  `json:"month_key"`
	Entries  []Entry `json:"entries"`
}

// IsEmpty reports whether the timeline is the empty-month placeholder.
func (t Timeline) IsEmpty() bool {
	return len(t.Entries) == 1 && t.Entries[0].Placeholder
}

// Events returns the non-placeholder entries.
func (t Timeline) Events() []Entry {
	if t.IsEmpty() {
		return nil
	}
	return t.Entries
}

// RenderTimeline keeps the days of month in their original order. Days are
// not sorted. Today is decided by exact string equality with currentDate,
// so "2026/01/05" is not today when currentDate is "2026-01-05".
func RenderTimeline(days []quest.CompletedDay, currentDate, month string) (Timeline, error) {
	t := Timeline{MonthKey: month}
	for i, day := range days {
		d, err := datekey.Parse(day.Date)
		if err != nil {
			return Timeline{}, fmt.Errorf("completed_days[%d]: %w", i, err)
		}
		if d.MonthKey() != month {
			continue
		}
		t.Entries = append(t.Entries, Entry{
			Date:      day.Date,
			DateLabel: d.LongLabel(),
			IsToday:   day.Date == currentDate,
			Event:     day.Event,
			Outcome:   highlight.Highlight(day.Outcome),
		})
	}
	if len(t.Entries) == 0 {
		t.Entries = []Entry{{Placeholder: true, Message: NoEventsMessage}}
	}
	return t, nil
}
