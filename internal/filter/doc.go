// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filter holds the filter data model, the store that owns the
// ordered filter list, and the error taxonomy shared by the engine.
//
// A Filter pairs a regex pattern with a display color and two independent
// flags: highlighted (matching lines get visually marked) and shown
// (matching lines survive into the focus view). Filters have no stable
// user-facing identity; the positional index in the list is the addressing
// mechanism, and removing a filter shifts every later index down by one.
// Internally each filter also carries a generated ID that the highlight
// projector uses for marker bookkeeping, so removing a filter mid-session
// cannot leave a marker dangling on a shifted index.
//
// The store enforces a capacity cap (default 20). An add against a full
// store fails with ErrCapacityExceeded and leaves the list unchanged; the
// cap is never satisfied by truncation.
package filter
