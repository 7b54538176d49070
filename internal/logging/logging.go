// Package logging provides the diagnostic sink used by the navigator core.
// Without a configured log file every call is a no-op.
package logging

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// Sink receives diagnostic messages.
type Sink interface {
	Log(msg string)
}

// Nop discards every message.
type Nop struct{}

// Log implements Sink.
func (Nop) Log(string) {}

// Logger adapts a standard library logger to Sink.
type Logger struct {
	l *log.Logger
}

// New wraps l. A nil logger yields a sink that discards everything.
func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

// Log implements Sink.
func (g *Logger) Log(msg string) {
	if g == nil || g.l == nil {
		return
	}
	g.l.Print(msg)
}

// Printf formats and logs a message.
func (g *Logger) Printf(format string, args ...any) {
	g.Log(fmt.Sprintf(format, args...))
}

// OpenFile appends diagnostics to path using Bubble Tea's log file helper,
// so output never interferes with the terminal UI. The returned closer must
// be closed on exit.
func OpenFile(path string) (*Logger, io.Closer, error) {
	l := log.New(io.Discard, "", log.LstdFlags|log.Lmicroseconds)
	f, err := tea.LogToFileWith(path, "navigator", l)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(l), f, nil
}

// Printf logs through sink when it supports formatting, and is safe to call
// with a nil sink.
func Printf(sink Sink, format string, args ...any) {
	if sink == nil {
		return
	}
	sink.Log(fmt.Sprintf(format, args...))
}
