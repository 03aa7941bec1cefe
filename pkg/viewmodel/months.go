// Package viewmodel derives display-ready structures from a quest document:
// the month selector, the filtered timeline and the stats cards. Everything
// here is a pure function of its inputs.
package viewmodel

import (
	"fmt"
	"sort"

	"tableflip.dev/questlog/pkg/datekey"
	"tableflip.dev/questlog/pkg/quest"
)

// MonthSet is the set of month keys that have at least one event.
type MonthSet map[string]struct{}

// Has reports whether key is in the set.
func (s MonthSet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the keys in calendar order.
func (s MonthSet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AvailableMonths collects the month keys of every completed day. Months
// outside the selector year are included.
func AvailableMonths(days []quest.CompletedDay) (MonthSet, error) {
	set := make(MonthSet, len(days))
	for i, day := range days {
		d, err := datekey.Parse(day.Date)
		if err != nil {
			return nil, fmt.Errorf("completed_days[%d]: %w", i, err)
		}
		set[d.MonthKey()] = struct{}{}
	}
	return set, nil
}

// AllSelectorMonths returns the twelve month keys of year in calendar order.
// The selector always lists one fixed year, whatever the data contains.
func AllSelectorMonths(year int) []string {
	keys := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		keys = append(keys, datekey.MonthKey(year, m))
	}
	return keys
}

// MonthButton is one entry of the month selector.
type MonthButton struct {
	MonthKey   string `json:"month_key"`
	Label      string `json:"label"`
	HasEvents  bool   `json:"has_events"`
	IsSelected bool   `json:"is_selected"`
}

// Selectable reports whether the button may be chosen. Months without
// events render disabled.
func (b MonthButton) Selectable() bool {
	return b.HasEvents
}

// BuildButtons lays out the selector for year with selected marked.
func BuildButtons(days []quest.CompletedDay, selected string, year int) ([]MonthButton, error) {
	available, err := AvailableMonths(days)
	if err != nil {
		return nil, err
	}
	keys := AllSelectorMonths(year)
	buttons := make([]MonthButton, 0, len(keys))
	for _, key := range keys {
		label, err := datekey.MonthName(key)
		if err != nil {
			return nil, err
		}
		buttons = append(buttons, MonthButton{
			MonthKey:   key,
			Label:      label,
			HasEvents:  available.Has(key),
			IsSelected: key == selected,
		})
	}
	return buttons, nil
}

// Reselect copies buttons with only the IsSelected flags moved to selected.
func Reselect(buttons []MonthButton, selected string) []MonthButton {
	out := make([]MonthButton, len(buttons))
	for i, b := range buttons {
		b.IsSelected = b.MonthKey == selected
		out[i] = b
	}
	return out
}

// Neighbour finds the nearest selectable button before (step -1) or after
// (step +1) from. It returns "" when there is none.
func Neighbour(buttons []MonthButton, from string, step int) string {
	start := -1
	for i, b := range buttons {
		if b.MonthKey == from {
			start = i
			break
		}
	}
	if start < 0 && step < 0 {
		start = len(buttons)
	}
	for i := start + step; i >= 0 && i < len(buttons); i += step {
		if buttons[i].Selectable() {
			return buttons[i].MonthKey
		}
	}
	return ""
}
