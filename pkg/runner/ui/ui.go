// Package ui starts the interactive quest log.
package ui

import (
	"context"

	"go.uber.org/zap"

	"tableflip.dev/questlog/pkg/app"
	teaui "tableflip.dev/questlog/pkg/tui/app"
)

// UI runs the Bubble Tea program until the user quits.
type UI struct {
	Session  *app.Session
	Location string
	Watch    bool
	Logger   *zap.Logger
}

func (u *UI) Do(_ context.Context) error {
	return teaui.Run(teaui.Options{
		Session:  u.Session,
		Location: u.Location,
		Watch:    u.Watch,
		Logger:   u.Logger,
	})
}
