// Package show prints a quest log, or sections of it, to the terminal.
package show

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"tableflip.dev/questlog/pkg/app"
	"tableflip.dev/questlog/pkg/printers"
)

// Section selects what Show prints.
type Section string

const (
	SectionAll      Section = "all"
	SectionStats    Section = "stats"
	SectionMonths   Section = "months"
	SectionTimeline Section = "timeline"
)

// Show loads a document and prints it.
type Show struct {
	Session  *app.Session
	Location string
	// Month is an optional YYYY-MM key; the current month is shown when empty.
	Month   string
	Section Section
	JSON    bool
	Width   int

	Out    io.Writer
	Logger *zap.Logger
}

// Do loads the document and prints the chosen section.
func (s *Show) Do(ctx context.Context) error {
	vm, err := s.Session.Open(ctx, s.Location)
	if err != nil {
		return err
	}
	if s.Month != "" && s.Month != vm.SelectedMonth {
		if vm, err = s.Session.Select(s.Month); err != nil {
			return err
		}
	}
	s.logger().Debug("showing quest",
		zap.String("location", s.Location),
		zap.String("month", vm.SelectedMonth),
		zap.String("section", string(s.section())))

	if s.JSON {
		return s.printJSON(vm)
	}

	pp := printers.New(s.Width)
	pp.Out = s.out()
	switch s.section() {
	case SectionStats:
		pp.Stats(vm.Stats)
	case SectionMonths:
		pp.Months(vm.Months)
	case SectionTimeline:
		pp.Timeline(vm.Timeline)
	default:
		return pp.View(vm)
	}
	return nil
}

func (s *Show) printJSON(vm *app.ViewModel) error {
	var v any
	switch s.section() {
	case SectionStats:
		v = vm.Stats
	case SectionMonths:
		v = vm.Months
	case SectionTimeline:
		v = vm.Timeline
	default:
		v = vm
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.out(), string(b))
	return err
}

func (s *Show) section() Section {
	if s.Section == "" {
		return SectionAll
	}
	return s.Section
}

func (s *Show) out() io.Writer {
	if s.Out == nil {
		return color.Output
	}
	return s.Out
}

func (s *Show) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
