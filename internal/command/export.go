// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/lff/lff/internal/persist"
)

// exportCommandAction writes the current filter list to the filters file,
// or to an explicit destination path when one is given. Prior contents are
// fully overwritten.
func exportCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	adapter := m.Persist
	if dest := cmd.Args().First(); dest != "" {
		adapter = persist.NewAdapter(afero.NewOsFs(), dest)
	}

	if err := adapter.Save(m.Store.List()); err != nil {
		return fail(m, err)
	}

	m.Sink.Info("exported %d filters to %s (%s)",
		m.Store.Len(), adapter.Path(), humanize.Bytes(uint64(adapter.Size())))
	return nil
}

func exportCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "write the filter list to the filters file",
		UsageText: "lff export [DEST]",
		Action:    exportCommandAction,
	}
}
