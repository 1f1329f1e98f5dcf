// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// editCommandAction replaces the pattern of the filter at the given index
// and, when --pattern-color is supplied, its color. The highlighted/shown
// flags are untouched.
func editCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	if cmd.Args().Len() < 2 {
		return fmt.Errorf("usage: lff edit INDEX PATTERN [options]")
	}

	index, err := ParseIndex(cmd.Args().Get(0))
	if err != nil {
		return fail(m, err)
	}

	if err := m.Store.Edit(index, cmd.Args().Get(1), cmd.String("pattern-color")); err != nil {
		return fail(m, err)
	}

	if err := persistStore(m); err != nil {
		return err
	}

	m.Sink.Info("edited filter %d", index+1)
	return nil
}

func editCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "edit a filter's pattern and color",
		UsageText: "lff edit INDEX PATTERN [options]",
		Flags: []cli.Flag{
			patternColorFlag,
		},
		Action: editCommandAction,
	}
}
