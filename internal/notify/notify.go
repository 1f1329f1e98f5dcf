// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package notify

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/lff/lff/internal/filter"
)

// Sink is the notification surface every command reports through.
type Sink interface {
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// Term writes severity-colored notifications to a writer (stderr by
// default) and mirrors them to the debug log.
type Term struct {
	w     io.Writer
	color bool
}

var (
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#d7af00"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d70000"))
)

// NewTerm returns a terminal sink writing to w, or stderr when w is nil.
// Severity coloring is applied only when color is true.
func NewTerm(w io.Writer, color bool) *Term {
	if w == nil {
		w = os.Stderr
	}
	return &Term{w: w, color: color}
}

func (t *Term) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Debug("notify info: " + msg)
	fmt.Fprintln(t.w, msg)
}

func (t *Term) Warn(format string, args ...interface{}) {
	msg := "warning: " + fmt.Sprintf(format, args...)
	log.Debug("notify warn: " + msg)
	if t.color {
		msg = warnStyle.Render(msg)
	}
	fmt.Fprintln(t.w, msg)
}

func (t *Term) Error(format string, args ...interface{}) {
	msg := "error: " + fmt.Sprintf(format, args...)
	log.Debug("notify error: " + msg)
	if t.color {
		msg = errorStyle.Render(msg)
	}
	fmt.Fprintln(t.w, msg)
}

// Report surfaces err at the severity its class calls for: user-correctable
// conditions (bad index, full store, bad pattern, malformed file) warn,
// I/O failures error. Returns true if err was non-nil.
func Report(sink Sink, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, filter.ErrNotFound),
		errors.Is(err, filter.ErrCapacityExceeded),
		errors.Is(err, filter.ErrInvalidPattern),
		errors.Is(err, filter.ErrInvalidColor),
		errors.Is(err, filter.ErrParseError):
		sink.Warn("%v", err)
	default:
		sink.Error("%v", err)
	}
	return true
}
