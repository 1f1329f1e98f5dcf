// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/notify"
	"github.com/lff/lff/internal/persist"
)

// importCommandAction replaces the in-memory list with the contents of the
// filters file, or of an explicit source path when one is given. A missing
// source yields an empty list; a malformed one warns and falls back to
// empty rather than aborting. When importing from an explicit source the
// result is persisted to the configured filters file.
func importCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	adapter := m.Persist
	external := cmd.Args().First() != ""
	if external {
		adapter = persist.NewAdapter(afero.NewOsFs(), cmd.Args().First())
	}

	list, err := adapter.Load()
	if err != nil {
		if !errors.Is(err, filter.ErrParseError) {
			return fail(m, err)
		}
		// The empty fallback must not be written over the filters file.
		notify.Report(m.Sink, err)
		m.Degraded = true
	} else if external {
		// A clean external read supersedes whatever startup loaded.
		m.Degraded = false
	}

	if err := m.Store.Replace(list); err != nil {
		return fail(m, err)
	}

	if external {
		if err := persistStore(m); err != nil {
			return err
		}
	}

	m.Sink.Info("imported %d filters from %s (%s)",
		m.Store.Len(), adapter.Path(), humanize.Bytes(uint64(adapter.Size())))
	return nil
}

func importCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "load the filter list from the filters file",
		UsageText: "lff import [SRC]",
		Action:    importCommandAction,
	}
}
