// Package logger provides the logging setup shared by the cenum tool.
//
// LogLevel is itself a cenum-generated enum (see loglevel.go): the tool
// dogfoods its own generator, and the config layer exercises the generated
// text and yaml methods.
package logger

import (
	"log/slog"
	"os"
)

// New returns a text logger writing to stderr at the given level. LogLevel
// numbering matches slog's, so unnamed in-between levels work as well.
func New(level LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(level.Raw()),
	}))
}

// NewDefaultLogger returns the logger used when no configuration is given.
func NewDefaultLogger() *slog.Logger {
	return New(LevelInfo)
}
