// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package viewer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/match"
)

// newTestModel builds a viewer over fixture lines with one shown+highlighted
// ERROR filter and no watcher.
func newTestModel(t *testing.T, lines []string) Model {
	t.Helper()

	store := filter.NewStore(5)
	_, err := store.Add("ERROR", "#ff0000")
	require.NoError(t, err)

	m := New("test.log", store, match.NewEngine(), nil,
		func(string) ([]string, error) { return lines, nil })
	return m
}

// step drives one Update and returns the resulting Model.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestViewerLoadsOnTextChanged(t *testing.T) {
	m := newTestModel(t, []string{"a", "b ERROR", "c"})

	m = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = step(t, m, textChangedMsg{})

	assert.Equal(t, []string{"a", "b ERROR", "c"}, m.lines)
	view := m.View()
	assert.Contains(t, view, "test.log")
	assert.Contains(t, view, "mode:all")
	assert.Contains(t, view, "b ERROR")
}

func TestViewerFocusToggle(t *testing.T) {
	m := newTestModel(t, []string{"a", "b ERROR", "c"})
	m = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = step(t, m, textChangedMsg{})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	view := m.View()
	assert.Contains(t, view, "mode:focus")
	assert.Contains(t, view, "b ERROR")
	assert.NotContains(t, view, "\nc")

	// Toggling back restores the full view.
	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	assert.Contains(t, m.View(), "mode:all")
}

func TestViewerFocusNoMatches(t *testing.T) {
	m := newTestModel(t, []string{"a", "b", "c"})
	m = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = step(t, m, textChangedMsg{})

	m = step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	assert.Contains(t, m.View(), "no lines matched")
}

func TestViewerQuitClearsMarkers(t *testing.T) {
	m := newTestModel(t, []string{"b ERROR"})
	m = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	m = step(t, m, textChangedMsg{})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	model, ok := next.(Model)
	require.True(t, ok)
	// Markers from this session are gone: a fresh render paints nothing.
	lines := []string{"b ERROR"}
	assert.Equal(t, lines, model.surface.Render(lines, nil))
}
