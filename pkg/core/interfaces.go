package core

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(string, ...interface{}) {}

// SlogLogger adapts a structured logger to the Printf-style Logger.
// Each formatted line becomes one record at Level (Info when zero).
type SlogLogger struct {
	Logger *slog.Logger
	Level  slog.Level
}

func (l SlogLogger) Printf(format string, args ...interface{}) {
	msg := strings.Trim(fmt.Sprintf(format, args...), "\r\n")
	if msg == "" {
		return
	}
	l.Logger.Log(context.Background(), l.Level, msg)
}
