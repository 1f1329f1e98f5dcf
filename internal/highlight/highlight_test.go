// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package highlight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/match"
)

// fakeSurface records style definitions and live marks so tests can observe
// what the projector pushed and what Clear disposed.
type fakeSurface struct {
	styles map[string]string
	live   map[string][]int
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		styles: make(map[string]string),
		live:   make(map[string][]int),
	}
}

func (s *fakeSurface) DefineStyle(name, background string) {
	s.styles[name] = background
}

func (s *fakeSurface) MarkLines(style string, lines []int) Handle {
	s.live[style] = lines
	return &fakeHandle{surface: s, style: style}
}

type fakeHandle struct {
	surface *fakeSurface
	style   string
}

func (h *fakeHandle) Dispose() {
	delete(h.surface.live, h.style)
}

func testFilters() []filter.Filter {
	return []filter.Filter{
		{ID: "id-err", Pattern: "ERROR", Color: "#ff0000", Highlighted: true, Shown: true},
		{ID: "id-warn", Pattern: "WARN", Color: "#ffff00", Highlighted: false, Shown: true},
		{ID: "id-dbg", Pattern: "DEBUG", Color: "#888888", Highlighted: true, Shown: false},
	}
}

func testLines() []string {
	return []string{
		"1 ERROR one",   // 0
		"2 WARN two",    // 1
		"3 DEBUG three", // 2
		"4 nothing",     // 3
		"5 ERROR five",  // 4
	}
}

func TestApply(t *testing.T) {
	surface := newFakeSurface()
	p := NewProjector(match.NewEngine(), surface)

	marks := p.Apply(testLines(), testFilters())

	// Only highlighted filters mark lines; shown is irrelevant here.
	want := []Mark{
		{FilterIndex: 0, FilterID: "id-err", Line: 0},
		{FilterIndex: 0, FilterID: "id-err", Line: 4},
		{FilterIndex: 2, FilterID: "id-dbg", Line: 2},
	}
	assert.Equal(t, want, marks)

	assert.Equal(t, map[string]string{"id-err": "#ff0000", "id-dbg": "#888888"}, surface.styles)
	assert.Equal(t, []int{0, 4}, surface.live["id-err"])
	assert.Equal(t, []int{2}, surface.live["id-dbg"])
	assert.NotContains(t, surface.live, "id-warn")
}

func TestApplyDeterministic(t *testing.T) {
	p1 := NewProjector(match.NewEngine(), newFakeSurface())
	p2 := NewProjector(match.NewEngine(), newFakeSurface())

	assert.Equal(t, p1.Apply(testLines(), testFilters()), p2.Apply(testLines(), testFilters()))
}

func TestClearDisposesAllMarkers(t *testing.T) {
	surface := newFakeSurface()
	p := NewProjector(match.NewEngine(), surface)

	p.Apply(testLines(), testFilters())
	require.NotEmpty(t, surface.live)

	p.Clear()
	assert.Empty(t, surface.live)

	// Idempotent.
	p.Clear()
	assert.Empty(t, surface.live)
}

func TestOnTextChangedDropsStaleMarkers(t *testing.T) {
	surface := newFakeSurface()
	p := NewProjector(match.NewEngine(), surface)

	list := testFilters()
	p.Apply(testLines(), list)
	require.Contains(t, surface.live, "id-err")

	// The ERROR filter is toggled off; its markers must not linger after
	// the next text change.
	list[0].Highlighted = false
	p.OnTextChanged(testLines(), list)

	assert.NotContains(t, surface.live, "id-err")
	assert.Contains(t, surface.live, "id-dbg")
}

func TestApplySkipsInvalidPatterns(t *testing.T) {
	surface := newFakeSurface()
	p := NewProjector(match.NewEngine(), surface)

	list := []filter.Filter{
		{ID: "id-bad", Pattern: "", Highlighted: true},
		{ID: "id-ok", Pattern: "ERROR", Color: "#ff0000", Highlighted: true},
	}
	marks := p.Apply([]string{"ERROR"}, list)

	// The empty pattern never matches everything; the valid filter still
	// projects.
	assert.Equal(t, []Mark{{FilterIndex: 1, FilterID: "id-ok", Line: 0}}, marks)
	assert.NotContains(t, surface.live, "id-bad")
}

func TestTermSurfaceRender(t *testing.T) {
	surface := NewTermSurface()
	p := NewProjector(match.NewEngine(), surface)

	lines := testLines()
	marks := p.Apply(lines, testFilters())
	rendered := surface.Render(lines, marks)

	require.Len(t, rendered, len(lines))
	// Marked lines keep their text (possibly decorated, depending on the
	// terminal's color profile); unmarked ones pass through untouched.
	assert.Contains(t, rendered[0], lines[0])
	assert.Equal(t, lines[1], rendered[1])
	assert.Contains(t, rendered[2], lines[2])
	assert.Equal(t, lines[3], rendered[3])

	// After dispose, rendering paints nothing.
	p.Clear()
	assert.Equal(t, lines, surface.Render(lines, marks))
}
