// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package match

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/lff/lff/internal/filter"
)

// Engine answers "does this line match this filter" using regex search
// semantics: the pattern may match anywhere in the line, not the full line.
// Compiled patterns are cached by pattern text since the same small filter
// list is applied to every line of a file.
type Engine struct {
	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// NewEngine returns an Engine with an empty pattern cache.
func NewEngine() *Engine {
	return &Engine{cache: make(map[string]*regexp.Regexp)}
}

// Matches reports whether the filter's pattern occurs anywhere in line.
// An empty pattern fails with ErrInvalidPattern rather than matching every
// line: the store tolerates empty patterns arriving via an imported file,
// but matching everything silently is never what the user meant.
func (e *Engine) Matches(line string, f filter.Filter) (bool, error) {
	re, err := e.compile(f.Pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(line), nil
}

// AnyShown reports whether at least one filter with Shown=true matches
// line. Evaluation short-circuits on the first match in list order.
// Filters with invalid patterns fail the whole call, consistent with
// Matches.
func (e *Engine) AnyShown(line string, list []filter.Filter) (bool, error) {
	for _, f := range list {
		if !f.Shown {
			continue
		}
		ok, err := e.Matches(line, f)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// compile returns the cached regex for pattern, compiling on first use.
func (e *Engine) compile(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: empty pattern", filter.ErrInvalidPattern)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if re, ok := e.cache[pattern]; ok {
		return re, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", filter.ErrInvalidPattern, err)
	}
	e.cache[pattern] = re
	return re, nil
}
