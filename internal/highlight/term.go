// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package highlight

import (
	"github.com/charmbracelet/lipgloss/v2"
)

// TermSurface implements Surface for terminal output. Styles carry the
// filter color as background; marked lines are painted when the caller
// renders via Render.
type TermSurface struct {
	styles map[string]lipgloss.Style
	marked map[string]map[int]bool
}

// NewTermSurface returns an empty terminal surface.
func NewTermSurface() *TermSurface {
	return &TermSurface{
		styles: make(map[string]lipgloss.Style),
		marked: make(map[string]map[int]bool),
	}
}

// DefineStyle registers a style named name with the given background color.
// Redefining a name replaces the style.
func (s *TermSurface) DefineStyle(name, background string) {
	s.styles[name] = lipgloss.NewStyle().Background(lipgloss.Color(background))
}

// MarkLines records that lines should be painted with style and returns a
// handle that unmarks them on Dispose.
func (s *TermSurface) MarkLines(style string, lines []int) Handle {
	set := s.marked[style]
	if set == nil {
		set = make(map[int]bool)
		s.marked[style] = set
	}
	for _, ln := range lines {
		set[ln] = true
	}
	return &termHandle{surface: s, style: style, lines: lines}
}

// Render paints each input line with the first style (in list application
// order markers were pushed) that marked it. Unmarked lines pass through.
func (s *TermSurface) Render(lines []string, marks []Mark) []string {
	out := make([]string, len(lines))
	copy(out, lines)

	for _, m := range marks {
		if m.Line < 0 || m.Line >= len(out) {
			continue
		}
		set := s.marked[m.FilterID]
		if set == nil || !set[m.Line] {
			continue
		}
		if out[m.Line] != lines[m.Line] {
			// Already painted by an earlier filter.
			continue
		}
		if style, ok := s.styles[m.FilterID]; ok {
			out[m.Line] = style.Render(lines[m.Line])
		}
	}

	return out
}

// termHandle unmarks its lines on Dispose.
type termHandle struct {
	surface *TermSurface
	style   string
	lines   []int
}

func (h *termHandle) Dispose() {
	set := h.surface.marked[h.style]
	if set == nil {
		return
	}
	for _, ln := range h.lines {
		delete(set, ln)
	}
	if len(set) == 0 {
		delete(h.surface.marked, h.style)
	}
}
