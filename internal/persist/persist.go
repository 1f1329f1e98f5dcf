// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package persist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/spf13/afero"
	"github.com/tidwall/gjson"

	"github.com/lff/lff/internal/filter"
)

// record is the on-disk shape of one filter. Pointer fields let the decoder
// distinguish a missing key from a zero value, so a file that drops a field
// is a parse error rather than a silently-defaulted filter.
type record struct {
	Pattern     *string `json:"pattern"`
	Color       *string `json:"color"`
	Highlighted *bool   `json:"highlighted"`
	Shown       *bool   `json:"shown"`
}

// Adapter reads and writes the filter list at a fixed path on an afero
// filesystem. Commands use the OS fs; tests run against a memory fs.
type Adapter struct {
	fs   afero.Fs
	path string
}

// NewAdapter returns an adapter bound to path on fs.
func NewAdapter(fs afero.Fs, path string) *Adapter {
	return &Adapter{fs: fs, path: path}
}

// Path returns the bound filters file path.
func (a *Adapter) Path() string {
	return a.path
}

// Save serializes list as a JSON array and fully overwrites the filters
// file. Fails with ErrIOError when the file cannot be written.
func (a *Adapter) Save(list []filter.Filter) error {
	recs := make([]record, len(list))
	for i := range list {
		f := list[i]
		recs[i] = record{
			Pattern:     &f.Pattern,
			Color:       &f.Color,
			Highlighted: &f.Highlighted,
			Shown:       &f.Shown,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("%w: %v", filter.ErrIOError, err)
	}

	if dir := filepath.Dir(a.path); dir != "." {
		if err := a.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", filter.ErrIOError, err)
		}
	}

	if err := afero.WriteFile(a.fs, a.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", filter.ErrIOError, err)
	}

	log.Debugf("saved %d filters to %s", len(list), a.path)
	return nil
}

// Load reads the filters file and returns the decoded list. A missing file
// is the first-run case: empty list, no error. Malformed content returns an
// empty list together with ErrParseError so the caller can warn and carry
// on with empty state instead of aborting.
func (a *Adapter) Load() ([]filter.Filter, error) {
	data, err := afero.ReadFile(a.fs, a.path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("no filters file at %s, starting empty", a.path)
			return []filter.Filter{}, nil
		}
		return []filter.Filter{}, fmt.Errorf("%w: %v", filter.ErrIOError, err)
	}

	// Cheap shape check before the strict decode so the error message can
	// say "not a JSON array" instead of surfacing a decoder offset.
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsArray() {
		return []filter.Filter{}, fmt.Errorf("%w: %s is not a JSON array", filter.ErrParseError, a.path)
	}

	var recs []record
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&recs); err != nil {
		// Wrong field types land here. No coercion: a string where a bool
		// belongs fails the whole load.
		return []filter.Filter{}, fmt.Errorf("%w: %v", filter.ErrParseError, err)
	}

	list := make([]filter.Filter, 0, len(recs))
	for i, r := range recs {
		if r.Pattern == nil || r.Color == nil || r.Highlighted == nil || r.Shown == nil {
			return []filter.Filter{}, fmt.Errorf("%w: entry %d is missing a field", filter.ErrParseError, i)
		}
		// Decoded verbatim, no semantic validation: an empty or broken
		// pattern is surfaced later by the match engine, not coerced or
		// dropped here. Only the bookkeeping ID is fresh.
		list = append(list, filter.Filter{
			ID:          filter.NewID(),
			Pattern:     *r.Pattern,
			Color:       *r.Color,
			Highlighted: *r.Highlighted,
			Shown:       *r.Shown,
		})
	}

	log.Debugf("loaded %d filters from %s", len(list), a.path)
	return list, nil
}

// Size returns the byte size of the filters file, or 0 when absent.
func (a *Adapter) Size() int64 {
	info, err := a.fs.Stat(a.path)
	if err != nil {
		return 0
	}
	return info.Size()
}
