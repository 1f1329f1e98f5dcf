// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/notify"
)

// GetMeta returns the Meta stored in the root command's Metadata. If
// missing or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) Meta {
	if cmd == nil {
		return Meta{}
	}
	root := cmd.Root()
	if root == nil || root.Metadata == nil {
		return Meta{}
	}
	if m, ok := root.Metadata["meta"].(Meta); ok {
		return m
	}
	return Meta{}
}

// OutputValidator rejects output formats other than text, json and yaml.
func OutputValidator(value string) error {
	switch value {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("invalid output format: %s", value)
}

// ParseIndex converts a 1-based user-facing index argument (as printed by
// ls) to the store's 0-based index. Non-numeric or non-positive input maps
// to ErrNotFound so the caller surfaces it like any other bad index.
func ParseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: index %q", filter.ErrNotFound, arg)
	}
	return n - 1, nil
}

// ReadLines reads the whole text body from path, or from stdin when path is
// "-", and splits it into lines. A trailing newline does not produce an
// empty final line.
func ReadLines(path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", filter.ErrIOError, err)
		}
		defer f.Close() //nolint:errcheck
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", filter.ErrIOError, err)
	}
	return lines, nil
}

// persistStore saves the store's current list through the adapter and
// reports the outcome. Used by every mutating command. When the startup
// load did not fully populate the store, saving is refused: overwriting the
// filters file with the partial in-memory list would silently destroy the
// filters the user has on disk.
func persistStore(m Meta) error {
	if m.Degraded {
		m.Sink.Error("not saving: %s was not fully loaded; fix or remove it first",
			m.Persist.Path())
		return cli.Exit("", 1)
	}
	if err := m.Persist.Save(m.Store.List()); err != nil {
		notify.Report(m.Sink, err)
		return cli.Exit("", 1)
	}
	return nil
}

// fail reports err through the sink and converts it to a silent nonzero
// exit so the message is not printed twice.
func fail(m Meta, err error) error {
	notify.Report(m.Sink, err)
	return cli.Exit("", 1)
}
