// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// rmCommandAction removes the filter at the given index. Later filters
// shift down by one, so subsequent indices change.
func rmCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if cmd.Args().Len() < 1 {
		return fmt.Errorf("usage: lff rm INDEX")
	}

	index, err := ParseIndex(cmd.Args().Get(0))
	if err != nil {
		return fail(m, err)
	}

	if err := m.Store.Remove(index); err != nil {
		return fail(m, err)
	}

	if err := persistStore(m); err != nil {
		return err
	}

	m.Sink.Info("removed filter %d (%d remain)", index+1, m.Store.Len())
	return nil
}

func rmCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "remove a filter",
		UsageText: "lff rm INDEX",
		Action:    rmCommandAction,
	}
}
