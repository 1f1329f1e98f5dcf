// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package focus

import (
	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/match"
)

// Builder derives the focus view: the subset of lines matched by at least
// one filter with Shown=true, in their original relative order.
type Builder struct {
	engine *match.Engine
}

// NewBuilder returns a Builder evaluating with engine.
func NewBuilder(engine *match.Engine) *Builder {
	return &Builder{engine: engine}
}

// Build iterates lines in order, keeping each line iff some shown filter
// matches it. A stable filter: kept lines retain their relative order. An
// empty result is a valid outcome, not an error; callers distinguish it by
// length and present "no matches" instead of an empty document. The
// engine's error is returned when a shown filter's pattern cannot be
// evaluated.
func (b *Builder) Build(lines []string, list []filter.Filter) ([]string, error) {
	kept := []string{}

	for _, line := range lines {
		ok, err := b.engine.AnyShown(line, list)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, line)
		}
	}

	return kept, nil
}
