package calendar

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/questlog/pkg/quest"
	"tableflip.dev/questlog/pkg/viewmodel"
)

func TestRenderPlain(t *testing.T) {
	month := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	out := Render(month, nil, Options{ShowHeader: true})
	lines := strings.Split(out, "\n")
	if lines[0] != "Su Mo Tu We Th Fr Sa" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if want := strings.Repeat(" ", 12) + " 1  2  3"; lines[1] != want {
		t.Fatalf("first week = %q, want %q", lines[1], want)
	}
	if last := lines[len(lines)-1]; last != "25 26 27 28 29 30 31" {
		t.Fatalf("last week = %q", last)
	}
}

func TestRenderZeroMonth(t *testing.T) {
	if got := Render(time.Time{}, nil, Options{}); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}

func TestFromTimeline(t *testing.T) {
	days := []quest.CompletedDay{
		{Date: "2026-01-09", Event: "b", Outcome: "x"},
		{Date: "2026-01-05", Event: "a", Outcome: "y"},
		{Date: "2026-01-09", Event: "c", Outcome: "z"},
	}
	tl, err := viewmodel.RenderTimeline(days, "2026-01-05", "2026-01")
	if err != nil {
		t.Fatalf("RenderTimeline: %v", err)
	}
	first, got, err := FromTimeline(tl, 12)
	if err != nil {
		t.Fatalf("FromTimeline: %v", err)
	}
	if first.Month() != time.January || first.Year() != 2026 || first.Day() != 1 {
		t.Fatalf("unexpected first day %v", first)
	}
	want := []Day{
		{Day: 9, HasEntry: true},
		{Day: 5, HasEntry: true, IsToday: true},
		{Day: 12, IsSelected: true},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("day %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFromTimelineEmptyMonth(t *testing.T) {
	tl, err := viewmodel.RenderTimeline(nil, "2026-01-05", "2026-03")
	if err != nil {
		t.Fatalf("RenderTimeline: %v", err)
	}
	first, got, err := FromTimeline(tl, 0)
	if err != nil {
		t.Fatalf("FromTimeline: %v", err)
	}
	if first.Month() != time.March || len(got) != 0 {
		t.Fatalf("unexpected %v %+v", first, got)
	}
}
