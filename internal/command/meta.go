// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/lff/lff/internal/config"
	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/match"
	"github.com/lff/lff/internal/notify"
	"github.com/lff/lff/internal/persist"
)

// Meta contains the runtime dependencies shared by commands: resolved
// settings, the filter store, the persistence adapter bound to the filters
// file, the match engine, and the notification sink. One Meta is built at
// app init and handed to every command builder; there is no global state.
type Meta struct {
	Args     []string
	Context  context.Context
	Settings *config.Settings
	Store    *filter.Store
	Persist  *persist.Adapter
	Engine   *match.Engine
	Sink     notify.Sink

	// Degraded records that the startup load did not fully populate the
	// store (malformed filters file, or more persisted filters than
	// max_filters allows). While set, mutating commands must not save:
	// writing the partial in-memory list back would destroy the filters
	// the user already has on disk.
	Degraded bool
}
