// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/match"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		list  []filter.Filter
		want  []string
	}{
		{
			name:  "kept lines retain original order",
			lines: []string{"a", "b ERROR", "c", "d ERROR"},
			list:  []filter.Filter{{Pattern: "ERROR", Shown: true}},
			want:  []string{"b ERROR", "d ERROR"},
		},
		{
			name:  "no shown filters keeps nothing",
			lines: []string{"a", "b ERROR"},
			list:  []filter.Filter{{Pattern: "ERROR", Shown: false}},
			want:  []string{},
		},
		{
			name:  "empty filter list keeps nothing",
			lines: []string{"a", "b"},
			list:  nil,
			want:  []string{},
		},
		{
			name:  "one match per line is enough",
			lines: []string{"ERROR and WARN", "only WARN", "neither"},
			list: []filter.Filter{
				{Pattern: "ERROR", Shown: true},
				{Pattern: "WARN", Shown: true},
			},
			want: []string{"ERROR and WARN", "only WARN"},
		},
		{
			name:  "interleaving is stable, not re-sorted",
			lines: []string{"z WARN", "a ERROR", "m WARN"},
			list: []filter.Filter{
				{Pattern: "ERROR", Shown: true},
				{Pattern: "WARN", Shown: true},
			},
			want: []string{"z WARN", "a ERROR", "m WARN"},
		},
	}

	b := NewBuilder(match.NewEngine())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Build(tt.lines, tt.list)
			// An empty view is a valid outcome, never an error.
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildInvalidShownPattern(t *testing.T) {
	b := NewBuilder(match.NewEngine())

	_, err := b.Build([]string{"a"}, []filter.Filter{{Pattern: "", Shown: true}})
	assert.ErrorIs(t, err, filter.ErrInvalidPattern)
}
