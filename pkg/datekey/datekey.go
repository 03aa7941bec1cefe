// Package datekey parses quest log dates and derives the YYYY-MM keys used
// to group and select them by month.
package datekey

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/questlog/pkg/quest"
)

// Separators lists the characters accepted between year, month and day.
const Separators = "-/"

const (
	layoutLong  = "January 2, 2006"
	layoutMonth = "January"
)

// Date is a calendar date as written in the document, without a location.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Parse reads YYYY-MM-DD or YYYY/MM/DD. Both separators parse identically,
// and components past the third are ignored.
func Parse(s string) (Date, error) {
	parts := split(s)
	if len(parts) < 3 {
		return Date{}, fmt.Errorf("%w: %q needs year, month and day", quest.ErrMalformedDate, s)
	}
	var n [3]int
	for i := 0; i < 3; i++ {
		v, ok := numeral(parts[i])
		if !ok {
			return Date{}, fmt.Errorf("%w: %q has a non-numeric component %q", quest.ErrMalformedDate, s, parts[i])
		}
		n[i] = v
	}
	d := Date{Year: n[0], Month: n[1], Day: n[2]}
	if d.Month < 1 || d.Month > 12 {
		return Date{}, fmt.Errorf("%w: %q has month %d", quest.ErrMalformedDate, s, d.Month)
	}
	if d.Day < 1 || d.Day > 31 {
		return Date{}, fmt.Errorf("%w: %q has day %d", quest.ErrMalformedDate, s, d.Day)
	}
	return d, nil
}

// MonthKey is the canonical grouping key for the date.
func (d Date) MonthKey() string {
	return MonthKey(d.Year, d.Month)
}

// LongLabel renders the date as "January 5, 2026".
func (d Date) LongLabel() string {
	return d.time().Format(layoutLong)
}

func (d Date) time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.Local)
}

// MonthKey joins year and zero-padded month with a dash. Keys sort
// lexicographically in calendar order.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// ParseMonthKey splits a YYYY-MM key.
func ParseMonthKey(key string) (year, month int, err error) {
	y, m, ok := strings.Cut(key, "-")
	if !ok {
		return 0, 0, fmt.Errorf("%w: month key %q", quest.ErrMalformedDate, key)
	}
	var vy, vm int
	if vy, ok = numeral(y); !ok {
		return 0, 0, fmt.Errorf("%w: month key %q", quest.ErrMalformedDate, key)
	}
	if vm, ok = numeral(m); !ok || vm < 1 || vm > 12 {
		return 0, 0, fmt.Errorf("%w: month key %q", quest.ErrMalformedDate, key)
	}
	return vy, vm, nil
}

// MonthName returns the full month name for a key, e.g. "February".
func MonthName(key string) (string, error) {
	year, month, err := ParseMonthKey(key)
	if err != nil {
		return "", err
	}
	return Date{Year: year, Month: month, Day: 1}.time().Format(layoutMonth), nil
}

// split cuts s at every separator, keeping empty fields so "2026--01"
// does not collapse into two components.
func split(s string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Separators, s[i]) >= 0 {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// numeral accepts ASCII digits only; signs and spaces are rejected.
func numeral(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
