// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
)

// toggleAction builds the shared action for the two flag-flipping commands.
// Toggling twice restores the original value; nothing else on the filter is
// touched.
func toggleAction(name string, flip func(m Meta, index int) error,
	state func(m Meta, index int) bool) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		m := GetMeta(cmd)
		log.Debugf("Executing action for %v", m.Args[1:])

		if cmd.Args().Len() < 1 {
			return fmt.Errorf("usage: lff %s INDEX", name)
		}

		index, err := ParseIndex(cmd.Args().Get(0))
		if err != nil {
			return fail(m, err)
		}

		if err := flip(m, index); err != nil {
			return fail(m, err)
		}

		if err := persistStore(m); err != nil {
			return err
		}

		m.Sink.Info("filter %d %s=%v", index+1, name, state(m, index))
		return nil
	}
}

func hlCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "hl",
		Usage:     "toggle a filter's highlighted flag",
		UsageText: "lff hl INDEX",
		Action: toggleAction("highlighted",
			func(m Meta, index int) error { return m.Store.ToggleHighlighted(index) },
			func(m Meta, index int) bool { return m.Store.List()[index].Highlighted }),
	}
}

func showCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "toggle a filter's shown flag",
		UsageText: "lff show INDEX",
		Action: toggleAction("shown",
			func(m Meta, index int) error { return m.Store.ToggleShown(index) },
			func(m Meta, index int) bool { return m.Store.List()[index].Shown }),
	}
}
