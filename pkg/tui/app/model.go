// Package teaui is the interactive quest log built on Bubble Tea.
package teaui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/v2/key"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"go.uber.org/zap"

	"tableflip.dev/questlog/pkg/app"
	"tableflip.dev/questlog/pkg/quest"
	"tableflip.dev/questlog/pkg/source"
	"tableflip.dev/questlog/pkg/tui/theme"
	"tableflip.dev/questlog/pkg/viewmodel"
)

const (
	loadedBanner   = "✓ Quest data loaded successfully!"
	invalidBanner  = "Invalid quest file. Please check your file format."
	autoLoadFormat = "Could not auto-load %s. Press o to open a file manually."
)

var errNoLoader = errors.New("no loader configured")

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
	statusError
)

type mode int

const (
	modeBrowse mode = iota
	modeOpen
)

// Options configures a Model.
type Options struct {
	Session  *app.Session
	Location string
	Watch    bool
	Logger   *zap.Logger
}

// Model contains UI state
type Model struct {
	session  *app.Session
	location string
	watch    bool
	logger   *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mode  mode
	keys  keyMap
	input textinput.Model
	theme theme.Theme

	status     string
	statusKind statusKind
	statusSeq  int

	termWidth  int
	termHeight int

	watchCh     <-chan source.Event
	watchCancel context.CancelFunc
}

// New creates a UI model around session. Nothing is loaded until Init.
func New(opts Options) *Model {
	session := opts.Session
	if session == nil {
		session = &app.Session{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "path or URL to a quest file"
	ti.CharLimit = 1024
	ti.Prompt = "open: "

	ctx, cancel := context.WithCancel(context.Background())
	return &Model{
		session:  session,
		location: opts.Location,
		watch:    opts.Watch,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
		mode:     modeBrowse,
		keys:     defaultKeys(),
		input:    ti,
		theme:    theme.Default(),
	}
}

// Init loads the configured document and starts watching it when asked.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.location != "" {
		cmds = append(cmds, m.loadCmd(m.location, loadAuto))
		if m.watch {
			cmds = append(cmds, startWatchCmd(m.ctx, m.location, m.logger))
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages in the Bubble Tea loop.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case docLoadedMsg:
		m.handleLoaded(msg, &cmds)
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
	case watchStartedMsg:
		if msg.err != nil {
			m.logger.Warn("watch failed", zap.Error(msg.err))
			m.setStatus(statusError, "ERR: watch "+msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event, &cmds)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		if msg.ch != m.watchCh {
			break
		}
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.location, m.logger))
		}
	case tea.KeyPressMsg:
		if m.mode == modeOpen {
			m.handlePromptKey(msg, &cmds)
		} else {
			m.handleKeyPress(msg, &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quit()
		*cmds = append(*cmds, tea.Quit)
	case key.Matches(msg, m.keys.Prev):
		m.step(-1)
	case key.Matches(msg, m.keys.Next):
		m.step(1)
	case key.Matches(msg, m.keys.Today):
		if vm := m.session.Current(); vm != nil {
			m.selectMonth(vm.CurrentMonth)
		}
	case key.Matches(msg, m.keys.Reload):
		if m.location == "" {
			m.setStatus(statusWarning, "No quest file to reload. Press o to open one.")
			break
		}
		*cmds = append(*cmds, m.loadCmd(m.location, loadReload))
	case key.Matches(msg, m.keys.Open):
		m.mode = modeOpen
		m.input.SetValue(m.location)
		m.input.CursorEnd()
		if cmd := m.input.Focus(); cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		*cmds = append(*cmds, textinput.Blink)
	}
}

func (m *Model) handlePromptKey(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
	case key.Matches(msg, m.keys.Submit):
		location := m.input.Value()
		m.closePrompt()
		if location == "" {
			break
		}
		*cmds = append(*cmds, m.loadCmd(location, loadManual))
	case msg.String() == "ctrl+c":
		m.quit()
		*cmds = append(*cmds, tea.Quit)
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) closePrompt() {
	m.mode = modeBrowse
	m.input.Blur()
}

func (m *Model) quit() {
	m.stopWatch()
	m.cancel()
}

// step moves the selection to the nearest month with events.
func (m *Model) step(dir int) {
	vm := m.session.Current()
	if vm == nil {
		return
	}
	next := viewmodel.Neighbour(vm.Months, vm.SelectedMonth, dir)
	if next == "" {
		return
	}
	m.selectMonth(next)
}

func (m *Model) selectMonth(month string) {
	if _, err := m.session.Select(month); err != nil {
		m.logger.Warn("select month", zap.String("month", month), zap.Error(err))
		m.setStatus(statusError, "ERR: "+err.Error())
	}
}

func (m *Model) handleLoaded(msg docLoadedMsg, cmds *[]tea.Cmd) {
	err := msg.err
	if err == nil {
		_, err = m.session.Load(msg.doc)
	}
	if err != nil {
		m.logger.Warn("quest load failed",
			zap.String("location", msg.location),
			zap.Int("kind", int(msg.kind)),
			zap.Error(err))
		m.setStatus(loadFailureStatus(msg, err))
		return
	}

	if msg.kind == loadManual && msg.location != m.location {
		m.location = msg.location
		if m.watch {
			m.stopWatch()
			if cmd := startWatchCmd(m.ctx, m.location, m.logger); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
		}
	}
	m.logger.Info("quest loaded", zap.String("location", msg.location))
	seq := m.setStatus(statusSuccess, loadedBanner)
	*cmds = append(*cmds, clearStatusAfter(seq))
}

func loadFailureStatus(msg docLoadedMsg, err error) (statusKind, string) {
	name := source.Name(msg.location)
	switch {
	case errors.Is(err, quest.ErrInvalidDocument), errors.Is(err, quest.ErrMalformedDate):
		return statusError, fmt.Sprintf("%s (%v)", invalidBanner, err)
	case msg.kind == loadAuto:
		return statusWarning, fmt.Sprintf(autoLoadFormat+" (%v)", name, err)
	default:
		return statusError, fmt.Sprintf("Could not load %s: %v", name, err)
	}
}

func (m *Model) handleWatchEvent(ev source.Event, cmds *[]tea.Cmd) {
	switch ev.Type {
	case source.EventChanged:
		*cmds = append(*cmds, m.loadCmd(m.location, loadReload))
	case source.EventRemoved:
		m.setStatus(statusWarning, fmt.Sprintf("%s was removed; showing the last loaded quest", source.Name(ev.Path)))
	case source.EventError:
		m.setStatus(statusError, "ERR: watch "+ev.Err.Error())
	}
}

// setStatus replaces the footer status and returns its sequence number so a
// delayed clear only removes the status it was scheduled for.
func (m *Model) setStatus(kind statusKind, text string) int {
	m.statusSeq++
	m.status = text
	m.statusKind = kind
	return m.statusSeq
}

// Run launches the interactive TUI program.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
