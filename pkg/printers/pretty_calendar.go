package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/questlog/pkg/datekey"
	"tableflip.dev/questlog/pkg/viewmodel"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints a month grid for the timeline's month. Days with events
// are bold and today is underlined.
func (pp *PrettyPrint) Calendar(t viewmodel.Timeline) error {
	year, month, err := datekey.ParseMonthKey(t.MonthKey)
	if err != nil {
		return err
	}
	then := time.Date(year, time.Month(month), 1, 1, 0, 0, 0, time.Local)

	count := make([]int, DaysIn(then))
	today := 0
	for _, e := range t.Events() {
		d, err := datekey.Parse(e.Date)
		if err != nil {
			return err
		}
		if d.Day >= 1 && d.Day <= len(count) {
			count[d.Day-1]++
			if e.IsToday {
				today = d.Day
			}
		}
	}
	pp.PrintMonthCount(then, count, today)
	return nil
}

// PrintMonthCount prints the grid for then, marking days with a non-zero
// count. today may be 0 for none.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int, today int) {
	w := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(w, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(w, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	l3 := color.New(color.Bold, color.Underline, color.FgHiYellow)

	for i := 0; i < DaysIn(then); i++ {
		printer := l1
		if i < len(count) && count[i] > 0 {
			printer = l2
		}
		if i+1 == today {
			printer = l3
		}
		_, _ = printer.Fprintf(w, "%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(w, "\n")
		}
	}
	_, _ = fmt.Fprint(w, "\n")
}

// DaysIn returns the number of days in then's month.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday of the first of then's month.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}

func monthTitle(key string) (string, error) {
	name, err := datekey.MonthName(key)
	if err != nil {
		return "", err
	}
	year, _, err := datekey.ParseMonthKey(key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %d", name, year), nil
}
