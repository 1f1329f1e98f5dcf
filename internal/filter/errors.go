// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filter

import "errors"

// The error taxonomy for the whole engine. Everything a store, persistence
// or matching operation can fail with wraps one of these sentinels, so
// callers dispatch with errors.Is and map each class to a notification
// severity.
var (
	// ErrNotFound reports an index outside the current list range.
	ErrNotFound = errors.New("filter not found")

	// ErrCapacityExceeded reports an add against a full store.
	ErrCapacityExceeded = errors.New("filter capacity exceeded")

	// ErrInvalidPattern reports an empty or non-compiling pattern.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrInvalidColor reports a color that is not a #RRGGBB code.
	ErrInvalidColor = errors.New("invalid color")

	// ErrIOError reports that the filters file could not be opened,
	// read or written.
	ErrIOError = errors.New("filters file i/o error")

	// ErrParseError reports malformed persisted filter data. Callers are
	// expected to fall back to an empty list rather than abort.
	ErrParseError = errors.New("filters file parse error")
)
