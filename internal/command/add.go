// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// addCommandAction appends a new filter with the given pattern and optional
// color, persists the list, and reports the new 1-based index.
func addCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	pattern := cmd.Args().First()
	if pattern == "" {
		return fmt.Errorf("usage: lff add PATTERN [--color #RRGGBB]")
	}

	index, err := m.Store.Add(pattern, cmd.String("pattern-color"))
	if err != nil {
		return fail(m, err)
	}

	if err := persistStore(m); err != nil {
		return err
	}

	f := m.Store.List()[index]
	m.Sink.Info("added filter %d: %s (%s)", index+1, f.Pattern, f.Color)
	return nil
}

func addCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "add a filter",
		UsageText: "lff add PATTERN [options]",
		Flags: []cli.Flag{
			patternColorFlag,
		},
		Action: addCommandAction,
	}
}
