package teaui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/questlog/pkg/quest"
	"tableflip.dev/questlog/pkg/source"
)

type loadKind int

const (
	loadAuto loadKind = iota
	loadManual
	loadReload
)

// docLoadedMsg carries an acquired document back to the update loop, which
// is the only place the session is touched.
type docLoadedMsg struct {
	kind     loadKind
	location string
	doc      *quest.Document
	err      error
}

type clearStatusMsg struct {
	seq int
}

const bannerDuration = 3 * time.Second

func (m *Model) loadCmd(location string, kind loadKind) tea.Cmd {
	loader := m.session.Loader
	ctx := m.ctx
	return func() tea.Msg {
		if loader == nil {
			return docLoadedMsg{kind: kind, location: location, err: errNoLoader}
		}
		doc, err := loader.Load(ctx, location)
		return docLoadedMsg{kind: kind, location: location, doc: doc, err: err}
	}
}

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(bannerDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

type watchStartedMsg struct {
	ch     <-chan source.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event source.Event
}

// watchStoppedMsg reports that ch closed. A stale channel from an earlier
// watch is ignored.
type watchStoppedMsg struct {
	ch <-chan source.Event
}

func startWatchCmd(parent context.Context, location string, logger *zap.Logger) tea.Cmd {
	if location == "" || source.IsRemote(location) {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := source.Watch(ctx, location, logger)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{ch: ch}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}
