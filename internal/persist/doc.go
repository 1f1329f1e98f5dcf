// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package persist serializes the filter list to and from the filters file.
//
// The on-disk format is a JSON array of objects, each with exactly the
// fields pattern (string), color (string, #RRGGBB), highlighted (bool) and
// shown (bool):
//
//	[
//	  {"pattern": "ERROR", "color": "#ff0000", "highlighted": true, "shown": true}
//	]
//
// Decoding is strict: unknown fields, missing fields and wrong JSON types
// are parse errors, never coerced. A missing file is the first-run case and
// yields an empty list without error; a malformed file yields an empty list
// plus a parse error the caller is expected to warn about and then carry on
// with empty state. Save fully overwrites prior contents, so for any list
// the save/load round trip is value-preserving field for field.
//
// The adapter runs over an afero filesystem; commands bind it to the OS fs
// while tests use an in-memory one.
package persist
