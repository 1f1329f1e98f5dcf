// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"
	"sync"

	"github.com/apex/log"
)

// DefaultMaxFilters caps the list when no explicit capacity is configured.
const DefaultMaxFilters = 20

// Store owns the ordered filter list. Filters are addressed by 0-based
// positional index; removal shifts later indices down by one. All mutating
// operations are serialized by an internal mutex since the viewer's watch
// goroutine and the command surface may share a store.
type Store struct {
	mu      sync.Mutex
	list    []Filter
	maxSize int
}

// NewStore returns an empty store capped at maxSize filters. A non-positive
// maxSize falls back to DefaultMaxFilters.
func NewStore(maxSize int) *Store {
	if maxSize <= 0 {
		maxSize = DefaultMaxFilters
	}
	return &Store{maxSize: maxSize}
}

// Add appends a new filter with highlighted and shown both true and returns
// its index. Fails with ErrCapacityExceeded when the store is full and
// ErrInvalidPattern/ErrInvalidColor on bad inputs; the list is unchanged on
// any failure.
func (s *Store) Add(pattern, color string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.list) >= s.maxSize {
		return 0, fmt.Errorf("%w: %d filters", ErrCapacityExceeded, s.maxSize)
	}

	f, err := NewFilter(pattern, color)
	if err != nil {
		return 0, err
	}

	s.list = append(s.list, f)
	log.Debugf("added filter %d pattern=%q color=%s", len(s.list)-1, f.Pattern, f.Color)
	return len(s.list) - 1, nil
}

// Edit replaces the pattern at index and, when color is non-empty, the
// color. The highlighted/shown flags and the internal ID are untouched.
func (s *Store) Edit(index int, pattern, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(index); err != nil {
		return err
	}
	if err := ValidatePattern(pattern); err != nil {
		return err
	}
	if color != "" && !colorRegex.MatchString(color) {
		return fmt.Errorf("%w: color %q is not #RRGGBB", ErrInvalidColor, color)
	}

	s.list[index].Pattern = pattern
	if color != "" {
		s.list[index].Color = color
	}
	return nil
}

// Remove deletes the filter at index, shifting later indices down by one.
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(index); err != nil {
		return err
	}

	s.list = append(s.list[:index], s.list[index+1:]...)
	return nil
}

// ToggleHighlighted flips the highlighted flag at index.
func (s *Store) ToggleHighlighted(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(index); err != nil {
		return err
	}

	s.list[index].Highlighted = !s.list[index].Highlighted
	return nil
}

// ToggleShown flips the shown flag at index.
func (s *Store) ToggleShown(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(index); err != nil {
		return err
	}

	s.list[index].Shown = !s.list[index].Shown
	return nil
}

// List returns a snapshot copy of the filter list in display order.
func (s *Store) List() []Filter {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Filter, len(s.list))
	copy(out, s.list)
	return out
}

// Len returns the current filter count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.list)
}

// Replace swaps the whole list, e.g. after an import. Filters beyond the
// capacity are rejected, matching Add semantics.
func (s *Store) Replace(list []Filter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(list) > s.maxSize {
		return fmt.Errorf("%w: %d filters exceed cap of %d",
			ErrCapacityExceeded, len(list), s.maxSize)
	}

	s.list = make([]Filter, len(list))
	copy(s.list, list)
	return nil
}

// check validates an index under the held lock.
func (s *Store) check(index int) error {
	if index < 0 || index >= len(s.list) {
		return fmt.Errorf("%w: index %d of %d", ErrNotFound, index, len(s.list))
	}
	return nil
}
