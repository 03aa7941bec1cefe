package datekey

import (
	"errors"
	"sort"
	"testing"

	"tableflip.dev/questlog/pkg/quest"
)

func TestParseSeparatorsAgree(t *testing.T) {
	pairs := [][2]string{
		{"2026-01-05", "2026/01/05"},
		{"2026-12-31", "2026/12/31"},
		{"2026-1-5", "2026/1/5"},
		{"2026-02/01", "2026/02-01"},
	}
	for _, p := range pairs {
		a, err := Parse(p[0])
		if err != nil {
			t.Fatalf("Parse(%q): %v", p[0], err)
		}
		b, err := Parse(p[1])
		if err != nil {
			t.Fatalf("Parse(%q): %v", p[1], err)
		}
		if a != b {
			t.Errorf("%q and %q parsed differently: %+v vs %+v", p[0], p[1], a, b)
		}
		if a.MonthKey() != b.MonthKey() {
			t.Errorf("month keys differ: %s vs %s", a.MonthKey(), b.MonthKey())
		}
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2026/03/09")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Year != 2026 || d.Month != 3 || d.Day != 9 {
		t.Fatalf("unexpected date %+v", d)
	}
	if got := d.MonthKey(); got != "2026-03" {
		t.Fatalf("MonthKey = %s", got)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, in := range []string{
		"",
		"2026-01",
		"2026.01.05",
		"2026-Jan-05",
		"2026--05",
		"2026-+1-05",
		"2026-01-05T10:00",
		" 2026-01-05",
		"2026-13-01",
		"2026-00-10",
		"2026-01-00",
		"2026-01-32",
	} {
		if _, err := Parse(in); !errors.Is(err, quest.ErrMalformedDate) {
			t.Errorf("Parse(%q) = %v, want ErrMalformedDate", in, err)
		}
	}
}

func TestParseIgnoresTrailingComponents(t *testing.T) {
	d, err := Parse("2026-04-02-extra")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d != (Date{Year: 2026, Month: 4, Day: 2}) {
		t.Fatalf("unexpected date %+v", d)
	}
}

func TestLongLabel(t *testing.T) {
	tests := map[string]string{
		"2026-01-05": "January 5, 2026",
		"2026/11/30": "November 30, 2026",
		"2026-2-1":   "February 1, 2026",
	}
	for in, want := range tests {
		d, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if got := d.LongLabel(); got != want {
			t.Errorf("LongLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMonthKeysSortInCalendarOrder(t *testing.T) {
	keys := []string{MonthKey(2026, 10), MonthKey(2025, 12), MonthKey(2026, 2), MonthKey(2026, 1)}
	sort.Strings(keys)
	want := []string{"2025-12", "2026-01", "2026-02", "2026-10"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("sorted keys = %v, want %v", keys, want)
		}
	}
}

func TestMonthName(t *testing.T) {
	name, err := MonthName("2026-02")
	if err != nil {
		t.Fatalf("MonthName: %v", err)
	}
	if name != "February" {
		t.Fatalf("MonthName = %q", name)
	}
	for _, bad := range []string{"2026", "2026-13", "x-01", "2026/02"} {
		if _, err := MonthName(bad); !errors.Is(err, quest.ErrMalformedDate) {
			t.Errorf("MonthName(%q) = %v, want ErrMalformedDate", bad, err)
		}
	}
}
