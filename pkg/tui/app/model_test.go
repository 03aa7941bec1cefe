package teaui

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"tableflip.dev/questlog/pkg/app"
	"tableflip.dev/questlog/pkg/quest"
	"tableflip.dev/questlog/pkg/source"
)

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type fakeLoader map[string]any

func (f fakeLoader) Load(_ context.Context, location string) (*quest.Document, error) {
	switch v := f[location].(type) {
	case *quest.Document:
		return v, nil
	case error:
		return nil, v
	}
	return nil, fmt.Errorf("%w: %s not found", quest.ErrAcquisition, location)
}

func sampleDocument() *quest.Document {
	return &quest.Document{
		Character: &quest.Character{
			Name:  "Ayla",
			Class: "Wizard",
			Stats: &quest.Stats{HP: 30, MaxHP: 40, SpellPoints: 5},
		},
		QuestProgress: &quest.QuestProgress{
			CurrentDate: "2026-01-05",
			CompletedDays: []quest.CompletedDay{
				{Date: "2026-01-05", Event: "Cleared the cellar", Outcome: "A clear Victory"},
				{Date: "2026-03-02", Event: "Crossed the river", Outcome: "Result 3"},
			},
			ActiveModifiers: quest.Modifiers{{Key: "well_rested", Value: 2}},
		},
	}
}

func newTestModel(loader fakeLoader, location string) *Model {
	session := &app.Session{Renderer: app.Renderer{TargetYear: 2026}, Loader: loader}
	m := New(Options{Session: session, Location: location})
	m.termWidth = 120
	m.termHeight = 40
	return m
}

// load runs the acquisition command synchronously and feeds the result back.
func load(t *testing.T, m *Model, location string, kind loadKind) tea.Cmd {
	t.Helper()
	msg := m.loadCmd(location, kind)()
	_, cmd := m.Update(msg)
	return cmd
}

func TestAutoLoadShowsBannerAndView(t *testing.T) {
	m := newTestModel(fakeLoader{"quest-data.json": sampleDocument()}, "quest-data.json")
	if cmd := load(t, m, "quest-data.json", loadAuto); cmd == nil {
		t.Fatalf("expected a command to clear the banner")
	}
	if m.status != loadedBanner || m.statusKind != statusSuccess {
		t.Fatalf("unexpected status %q", m.status)
	}

	view := stripANSI(m.View())
	for _, want := range []string{
		"Ayla",
		"30 / 40",
		"✨ Well Rested: +2",
		"Day 2",
		"January 5, 2026 - TODAY",
		"A clear Victory",
		loadedBanner,
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q\n%s", want, view)
		}
	}
	if strings.Contains(view, "Crossed the river") {
		t.Errorf("March event shown while January is selected")
	}
}

func TestBannerClearsOnlyForItsSequence(t *testing.T) {
	m := newTestModel(fakeLoader{"q.json": sampleDocument()}, "q.json")
	load(t, m, "q.json", loadAuto)
	seq := m.statusSeq

	m.Update(clearStatusMsg{seq: seq - 1})
	if m.status == "" {
		t.Fatalf("stale clear removed the banner")
	}
	m.Update(clearStatusMsg{seq: seq})
	if m.status != "" {
		t.Fatalf("banner not cleared: %q", m.status)
	}
}

func TestAutoLoadFailureWarns(t *testing.T) {
	m := newTestModel(fakeLoader{}, "/data/quest-data.json")
	load(t, m, "/data/quest-data.json", loadAuto)

	if m.statusKind != statusWarning {
		t.Fatalf("expected warning, got %v", m.statusKind)
	}
	if !strings.Contains(m.status, "Could not auto-load quest-data.json. Press o to open a file manually.") {
		t.Fatalf("unexpected status %q", m.status)
	}
	if m.session.Current() != nil {
		t.Fatalf("nothing should be loaded")
	}
	if !strings.Contains(stripANSI(m.View()), "No quest loaded.") {
		t.Fatalf("expected empty state in view")
	}
}

func TestInvalidDocumentKeepsPreviousQuest(t *testing.T) {
	broken := sampleDocument()
	broken.QuestProgress.CurrentDate = "2026-13-01"
	m := newTestModel(fakeLoader{
		"good.json": sampleDocument(),
		"bad.json":  broken,
		"gone.json": fmt.Errorf("%w: read failed", quest.ErrAcquisition),
		"junk.json": fmt.Errorf("%w: unexpected EOF", quest.ErrInvalidDocument),
	}, "good.json")
	load(t, m, "good.json", loadAuto)
	before := m.session.Current()

	load(t, m, "bad.json", loadManual)
	if !strings.HasPrefix(m.status, invalidBanner) {
		t.Fatalf("unexpected status %q", m.status)
	}
	if m.session.Current() != before {
		t.Fatalf("failed load replaced the quest")
	}
	if m.location != "good.json" {
		t.Fatalf("failed manual load changed location to %q", m.location)
	}

	load(t, m, "junk.json", loadManual)
	if !strings.HasPrefix(m.status, invalidBanner) {
		t.Fatalf("unexpected status %q", m.status)
	}

	load(t, m, "gone.json", loadManual)
	if !strings.HasPrefix(m.status, "Could not load gone.json") || m.statusKind != statusError {
		t.Fatalf("unexpected status %q", m.status)
	}
	if m.session.Current() != before {
		t.Fatalf("failed load replaced the quest")
	}
}

func TestMonthNavigationSkipsEmptyMonths(t *testing.T) {
	m := newTestModel(fakeLoader{"q.json": sampleDocument()}, "q.json")
	load(t, m, "q.json", loadAuto)

	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := m.session.Current().SelectedMonth; got != "2026-03" {
		t.Fatalf("right should skip February, got %s", got)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "Crossed the river") || strings.Contains(view, "Cleared the cellar") {
		t.Fatalf("timeline not switched to March:\n%s", view)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	if got := m.session.Current().SelectedMonth; got != "2026-03" {
		t.Fatalf("no later month has events, got %s", got)
	}

	m.Update(tea.KeyPressMsg{Text: "h", Code: 'h'})
	if got := m.session.Current().SelectedMonth; got != "2026-01" {
		t.Fatalf("h should go back to January, got %s", got)
	}

	m.Update(tea.KeyPressMsg{Text: "l", Code: 'l'})
	m.Update(tea.KeyPressMsg{Text: "t", Code: 't'})
	if got := m.session.Current().SelectedMonth; got != "2026-01" {
		t.Fatalf("t should return to the current month, got %s", got)
	}
}

func TestOpenPromptLoadsNewLocation(t *testing.T) {
	other := sampleDocument()
	other.Character.Name = "Brom"
	m := newTestModel(fakeLoader{"q.json": sampleDocument(), "b.json": other}, "q.json")
	load(t, m, "q.json", loadAuto)

	m.Update(tea.KeyPressMsg{Text: "o", Code: 'o'})
	if m.mode != modeOpen {
		t.Fatalf("o should open the prompt")
	}
	if !strings.Contains(stripANSI(m.View()), "enter load") {
		t.Fatalf("prompt help not shown")
	}

	// Keys typed in the prompt must not navigate.
	m.Update(tea.KeyPressMsg{Text: "l", Code: 'l'})
	if got := m.session.Current().SelectedMonth; got != "2026-01" || m.mode != modeOpen {
		t.Fatalf("typing in the prompt moved to %s", got)
	}
	m.input.SetValue("b.json")
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.mode != modeBrowse {
		t.Fatalf("enter should close the prompt")
	}

	load(t, m, "b.json", loadManual)
	if m.location != "b.json" {
		t.Fatalf("location = %q", m.location)
	}
	if got := m.session.Current().Stats.Name; got != "Brom" {
		t.Fatalf("name = %q", got)
	}
}

func TestPromptEscapeCancels(t *testing.T) {
	m := newTestModel(fakeLoader{}, "")
	m.Update(tea.KeyPressMsg{Text: "o", Code: 'o'})
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.mode != modeBrowse {
		t.Fatalf("esc should close the prompt")
	}
	if cmd != nil {
		if _, ok := cmd().(docLoadedMsg); ok {
			t.Fatalf("esc must not load")
		}
	}
}

func TestReloadWithoutLocationWarns(t *testing.T) {
	m := newTestModel(fakeLoader{}, "")
	m.Update(tea.KeyPressMsg{Text: "r", Code: 'r'})
	if m.statusKind != statusWarning {
		t.Fatalf("expected warning, got %q", m.status)
	}
}

func TestQuitCancelsContext(t *testing.T) {
	m := newTestModel(fakeLoader{}, "")
	_, cmd := m.Update(tea.KeyPressMsg{Text: "q", Code: 'q'})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if m.ctx.Err() == nil {
		t.Fatalf("context should be cancelled on quit")
	}
}

func TestStaleWatchStopIsIgnored(t *testing.T) {
	m := newTestModel(fakeLoader{}, "q.json")
	live := make(chan source.Event)
	m.watchCh = live

	m.Update(watchStoppedMsg{ch: make(chan source.Event)})
	if m.watchCh != (<-chan source.Event)(live) {
		t.Fatalf("stale stop replaced the live watch")
	}
}

func TestWatchChangeReloads(t *testing.T) {
	m := newTestModel(fakeLoader{"q.json": sampleDocument()}, "q.json")
	ch := make(chan source.Event, 1)
	m.watchCh = ch

	_, cmd := m.Update(watchEventMsg{event: source.Event{Type: source.EventChanged, Path: "q.json"}})
	if cmd == nil {
		t.Fatalf("expected reload command")
	}
	m.Update(m.loadCmd(m.location, loadReload)())
	if m.session.Current() == nil || m.status != loadedBanner {
		t.Fatalf("reload did not load the quest: %q", m.status)
	}
}
