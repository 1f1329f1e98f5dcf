// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filter

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReturnsAppendedIndex(t *testing.T) {
	s := NewStore(5)

	for i := 0; i < 3; i++ {
		index, err := s.Add(fmt.Sprintf("pattern-%d", i), "")
		require.NoError(t, err)
		assert.Equal(t, i, index)
	}

	list := s.List()
	require.Len(t, list, 3)
	for i, f := range list {
		assert.Equal(t, fmt.Sprintf("pattern-%d", i), f.Pattern)
		assert.True(t, f.Highlighted)
		assert.True(t, f.Shown)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, f.Color)
		assert.NotEmpty(t, f.ID)
	}
}

func TestAddCapacity(t *testing.T) {
	s := NewStore(3)

	for i := 0; i < 3; i++ {
		_, err := s.Add("x", "")
		require.NoError(t, err)
	}

	// Once full, every subsequent add fails and the list is unchanged.
	before := s.List()
	for i := 0; i < 4; i++ {
		_, err := s.Add("y", "")
		assert.ErrorIs(t, err, ErrCapacityExceeded)
	}
	assert.Equal(t, before, s.List())
}

func TestAddValidation(t *testing.T) {
	s := NewStore(5)

	_, err := s.Add("", "")
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = s.Add("[unclosed", "")
	assert.ErrorIs(t, err, ErrInvalidPattern)

	_, err = s.Add("ok", "red")
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = s.Add("ok", "#12345")
	assert.ErrorIs(t, err, ErrInvalidColor)

	assert.Zero(t, s.Len())

	index, err := s.Add("ok", "#A1b2C3")
	require.NoError(t, err)
	assert.Equal(t, "#A1b2C3", s.List()[index].Color)
}

func TestEdit(t *testing.T) {
	s := NewStore(5)
	_, err := s.Add("old", "#111111")
	require.NoError(t, err)
	require.NoError(t, s.ToggleShown(0))
	id := s.List()[0].ID

	// Pattern updates unconditionally, color only when supplied.
	require.NoError(t, s.Edit(0, "new", ""))
	f := s.List()[0]
	assert.Equal(t, "new", f.Pattern)
	assert.Equal(t, "#111111", f.Color)

	require.NoError(t, s.Edit(0, "newer", "#222222"))
	f = s.List()[0]
	assert.Equal(t, "newer", f.Pattern)
	assert.Equal(t, "#222222", f.Color)

	// Flags and bookkeeping ID are untouched by edits.
	assert.True(t, f.Highlighted)
	assert.False(t, f.Shown)
	assert.Equal(t, id, f.ID)

	assert.ErrorIs(t, s.Edit(1, "x", ""), ErrNotFound)
	assert.ErrorIs(t, s.Edit(-1, "x", ""), ErrNotFound)
	assert.ErrorIs(t, s.Edit(0, "", ""), ErrInvalidPattern)
	assert.ErrorIs(t, s.Edit(0, "x", "nope"), ErrInvalidColor)
}

func TestRemoveShiftsLaterIndices(t *testing.T) {
	s := NewStore(5)
	for _, p := range []string{"a", "b", "c", "d"} {
		_, err := s.Add(p, "")
		require.NoError(t, err)
	}

	require.NoError(t, s.Remove(1))

	list := s.List()
	require.Len(t, list, 3)
	assert.Equal(t, "a", list[0].Pattern)
	assert.Equal(t, "c", list[1].Pattern)
	assert.Equal(t, "d", list[2].Pattern)

	assert.ErrorIs(t, s.Remove(3), ErrNotFound)
	assert.ErrorIs(t, s.Remove(-1), ErrNotFound)
}

func TestTogglePairsRestore(t *testing.T) {
	s := NewStore(5)
	_, err := s.Add("a", "")
	require.NoError(t, err)

	orig := s.List()[0]

	require.NoError(t, s.ToggleHighlighted(0))
	assert.Equal(t, !orig.Highlighted, s.List()[0].Highlighted)
	require.NoError(t, s.ToggleHighlighted(0))
	assert.Equal(t, orig.Highlighted, s.List()[0].Highlighted)

	require.NoError(t, s.ToggleShown(0))
	assert.Equal(t, !orig.Shown, s.List()[0].Shown)
	require.NoError(t, s.ToggleShown(0))
	assert.Equal(t, orig.Shown, s.List()[0].Shown)

	assert.ErrorIs(t, s.ToggleHighlighted(1), ErrNotFound)
	assert.ErrorIs(t, s.ToggleShown(1), ErrNotFound)
}

func TestListIsSnapshot(t *testing.T) {
	s := NewStore(5)
	_, err := s.Add("a", "")
	require.NoError(t, err)

	snap := s.List()
	snap[0].Pattern = "mutated"
	assert.Equal(t, "a", s.List()[0].Pattern)
}

func TestReplace(t *testing.T) {
	s := NewStore(2)

	list := []Filter{
		{ID: NewID(), Pattern: "a", Color: "#000000", Highlighted: true, Shown: true},
		{ID: NewID(), Pattern: "b", Color: "#ffffff"},
	}
	require.NoError(t, s.Replace(list))
	assert.Equal(t, 2, s.Len())

	over := append(list, Filter{ID: NewID(), Pattern: "c", Color: "#123456"})
	assert.ErrorIs(t, s.Replace(over), ErrCapacityExceeded)
	// Failed replace leaves the previous list in place.
	assert.Equal(t, 2, s.Len())
}

func TestRandomColorShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, `^#[0-9a-f]{6}$`, RandomColor())
	}
}
