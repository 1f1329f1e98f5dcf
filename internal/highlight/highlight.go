// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package highlight

import (
	"errors"

	"github.com/apex/log"

	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/match"
)

// Mark is one visual marker decision: the line at Line (0-based) matched
// the highlighted filter at FilterIndex. FilterID carries the stable
// bookkeeping ID so handles survive index shifts.
type Mark struct {
	FilterIndex int
	FilterID    string
	Line        int
}

// Handle is a disposable reference to one applied marker, returned by the
// rendering surface.
type Handle interface {
	Dispose()
}

// Surface is the rendering-surface contract the projector drives: define a
// named style with a background color, mark lines with a named style, and
// dispose the resulting handle. The terminal surface in this package is the
// only in-tree implementation; an editor host would supply its own.
type Surface interface {
	DefineStyle(name, background string)
	MarkLines(style string, lines []int) Handle
}

// Projector decides which visual markers exist. Apply is a pure function of
// its inputs; the only state is the handle bookkeeping needed so Clear can
// dispose markers from filters that were toggled off or removed since the
// last application.
type Projector struct {
	engine  *match.Engine
	surface Surface
	handles map[string]Handle
}

// NewProjector returns a projector driving surface.
func NewProjector(engine *match.Engine, surface Surface) *Projector {
	return &Projector{
		engine:  engine,
		surface: surface,
		handles: make(map[string]Handle),
	}
}

// Apply computes, for every filter with Highlighted=true, the set of line
// numbers in lines that match, pushes the markers to the surface, and
// returns the marks. Filters whose pattern cannot be evaluated are skipped
// with a warning; they never silently match everything.
func (p *Projector) Apply(lines []string, list []filter.Filter) []Mark {
	var marks []Mark

	for idx, f := range list {
		if !f.Highlighted {
			continue
		}

		var matched []int
		skipped := false
		for ln, line := range lines {
			ok, err := p.engine.Matches(line, f)
			if err != nil {
				if errors.Is(err, filter.ErrInvalidPattern) {
					log.Warnf("skipping filter %d: %v", idx, err)
					skipped = true
					break
				}
				continue
			}
			if ok {
				matched = append(matched, ln)
				marks = append(marks, Mark{FilterIndex: idx, FilterID: f.ID, Line: ln})
			}
		}
		if skipped || len(matched) == 0 {
			continue
		}

		p.surface.DefineStyle(f.ID, f.Color)
		p.handles[f.ID] = p.surface.MarkLines(f.ID, matched)
	}

	return marks
}

// Clear disposes every marker applied by the previous Apply. Idempotent.
func (p *Projector) Clear() {
	for id, h := range p.handles {
		h.Dispose()
		delete(p.handles, id)
	}
}

// OnTextChanged is the lifecycle entry point the host invokes on every
// visible-text change: previous markers are cleared, then the current
// filter list is re-applied to the new text.
func (p *Projector) OnTextChanged(lines []string, list []filter.Filter) []Mark {
	p.Clear()
	return p.Apply(lines, list)
}
