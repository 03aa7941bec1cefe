// Package logging builds the zap logger shared by commands and the UI.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a development logger when debug is set. Otherwise it returns
// a production logger on stderr that only reports warnings and errors.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Quiet returns a logger that drops everything. The TUI uses it so log
// lines do not tear the alternate screen.
func Quiet() *zap.Logger {
	return zap.NewNop()
}
