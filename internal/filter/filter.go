// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import (
	"fmt"
	"math/rand/v2"
	"regexp"
)

// colorRegex validates the persisted color shape: '#' followed by exactly six
// hex digits, e.g. "#a1b2c3".
var colorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Filter is a single matching rule: a regex pattern, the color used when
// highlighting its matches, and two independent display flags.
type Filter struct {
	// ID is a process-local identifier used by the highlight projector for
	// marker bookkeeping. It survives index shifts when earlier filters are
	// removed. Never persisted; regenerated on load.
	ID string `yaml:"-" json:"-"`

	Pattern     string `yaml:"pattern" json:"pattern"`
	Color       string `yaml:"color" json:"color"`
	Highlighted bool   `yaml:"highlighted" json:"highlighted"`
	Shown       bool   `yaml:"shown" json:"shown"`
}

// NewFilter builds a Filter from a pattern and optional color. An empty or
// non-compiling pattern is rejected with ErrInvalidPattern. An empty color
// gets a pseudo-randomly generated one; a non-empty color must be #RRGGBB.
func NewFilter(pattern, color string) (Filter, error) {
	if err := ValidatePattern(pattern); err != nil {
		return Filter{}, err
	}

	if color == "" {
		color = RandomColor()
	} else if !colorRegex.MatchString(color) {
		return Filter{}, fmt.Errorf("%w: color %q is not #RRGGBB", ErrInvalidColor, color)
	}

	return Filter{
		ID:          NewID(),
		Pattern:     pattern,
		Color:       color,
		Highlighted: true,
		Shown:       true,
	}, nil
}

// ValidatePattern checks that pattern is non-empty and compiles as a regex.
func ValidatePattern(pattern string) error {
	if pattern == "" {
		return fmt.Errorf("%w: empty pattern", ErrInvalidPattern)
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return nil
}

// RandomColor returns a pseudo-random #RRGGBB color code.
func RandomColor() string {
	return fmt.Sprintf("#%06x", rand.Int32N(0x1000000))
}

// NewID returns a process-unique marker bookkeeping ID.
func NewID() string {
	return fmt.Sprintf("f-%08x%08x", rand.Uint32(), rand.Uint32())
}
