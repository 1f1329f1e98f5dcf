// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command implements the lff CLI surface. Each subcommand maps 1:1
// onto one engine operation:
//
//   - add    -> store add (pattern, optional color)
//   - edit   -> store edit (index, pattern, optional color)
//   - rm     -> store remove (index)
//   - hl     -> store toggle highlighted (index)
//   - show   -> store toggle shown (index)
//   - ls     -> store list
//   - export -> persistence save
//   - import -> persistence load + store replace
//   - focus  -> focus view build
//   - view   -> live viewer (highlight projection on text change)
//
// Indices are 1-based on the command line, matching the numbering ls
// prints; the store itself is 0-based. Every mutating command persists the
// list after the operation succeeds, and every outcome is surfaced through
// the notification sink: bad indices, a full store, invalid patterns and
// malformed filter files warn; I/O failures error. Nothing here is fatal to
// the process.
package command
