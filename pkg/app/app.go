// Package app composes the quest log view: it turns a loaded document into
// a ViewModel and re-derives the timeline when another month is selected.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"tableflip.dev/questlog/pkg/datekey"
	"tableflip.dev/questlog/pkg/quest"
	"tableflip.dev/questlog/pkg/viewmodel"
)

// DefaultTargetYear is the calendar year the month selector lists.
const DefaultTargetYear = 2026

// ViewModel is everything the presentation layer draws. It is never
// mutated after it is built; selecting a month produces a new one.
type ViewModel struct {
	Document      *quest.Document         `json:"-"`
	CurrentMonth  string                  `json:"current_month"`
	SelectedMonth string                  `json:"selected_month"`
	Stats         viewmodel.Stats         `json:"stats"`
	Months        []viewmodel.MonthButton `json:"months"`
	Timeline      viewmodel.Timeline      `json:"timeline"`
}

// Renderer derives view models for a fixed selector year.
type Renderer struct {
	TargetYear int
}

func (r Renderer) year() int {
	if r.TargetYear == 0 {
		return DefaultTargetYear
	}
	return r.TargetYear
}

// Load validates doc and builds the initial view for the month of
// current_date.
func (r Renderer) Load(doc *quest.Document) (*ViewModel, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	progress := doc.QuestProgress
	current, err := datekey.Parse(progress.CurrentDate)
	if err != nil {
		return nil, fmt.Errorf("current_date: %w", err)
	}
	month := current.MonthKey()

	buttons, err := viewmodel.BuildButtons(progress.CompletedDays, month, r.year())
	if err != nil {
		return nil, err
	}
	timeline, err := viewmodel.RenderTimeline(progress.CompletedDays, progress.CurrentDate, month)
	if err != nil {
		return nil, err
	}
	return &ViewModel{
		Document:      doc,
		CurrentMonth:  month,
		SelectedMonth: month,
		Stats:         viewmodel.RenderStats(doc.Character, progress),
		Months:        buttons,
		Timeline:      timeline,
	}, nil
}

// SelectMonth returns a copy of vm showing month. Stats and the month
// buttons are reused; only the selection flags and the timeline change.
func (r Renderer) SelectMonth(vm *ViewModel, month string) (*ViewModel, error) {
	if vm == nil || vm.Document == nil {
		return nil, errors.New("app: no quest loaded")
	}
	if _, _, err := datekey.ParseMonthKey(month); err != nil {
		return nil, err
	}
	progress := vm.Document.QuestProgress
	timeline, err := viewmodel.RenderTimeline(progress.CompletedDays, progress.CurrentDate, month)
	if err != nil {
		return nil, err
	}
	next := *vm
	next.SelectedMonth = month
	next.Months = viewmodel.Reselect(vm.Months, month)
	next.Timeline = timeline
	return &next, nil
}

// Loader acquires a quest document.
type Loader interface {
	Load(ctx context.Context, location string) (*quest.Document, error)
}

// Session owns the current view model. A successful load replaces it
// wholesale; a failed one leaves it as it was.
type Session struct {
	Renderer Renderer
	Loader   Loader
	Logger   *zap.Logger

	current *ViewModel
}

func (s *Session) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// Current returns the view model on display, or nil before the first load.
func (s *Session) Current() *ViewModel {
	return s.current
}

// Load derives a view model from doc and makes it current.
func (s *Session) Load(doc *quest.Document) (*ViewModel, error) {
	vm, err := s.Renderer.Load(doc)
	if err != nil {
		s.logger().Warn("quest load rejected", zap.Error(err))
		return nil, err
	}
	s.current = vm
	s.logger().Debug("quest loaded",
		zap.String("month", vm.CurrentMonth),
		zap.Int("days", vm.Stats.DayCount))
	return vm, nil
}

// Open acquires the document at location through Loader and loads it.
func (s *Session) Open(ctx context.Context, location string) (*ViewModel, error) {
	if s.Loader == nil {
		return nil, errors.New("app: no loader configured")
	}
	doc, err := s.Loader.Load(ctx, location)
	if err != nil {
		s.logger().Warn("quest acquisition failed", zap.String("location", location), zap.Error(err))
		return nil, err
	}
	return s.Load(doc)
}

// Select switches the current view model to month.
func (s *Session) Select(month string) (*ViewModel, error) {
	vm, err := s.Renderer.SelectMonth(s.current, month)
	if err != nil {
		return nil, err
	}
	s.current = vm
	return vm, nil
}
