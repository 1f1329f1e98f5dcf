// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/focus"
	"github.com/lff/lff/internal/highlight"
	"github.com/lff/lff/internal/match"
)

// focusCommandAction derives the focus view of a log file: only lines
// matched by at least one shown filter, in original order. With --color on
// a terminal, highlighted filters additionally paint their matches.
func focusCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("usage: lff focus FILE (or - for stdin)")
	}

	lines, err := ReadLines(path)
	if err != nil {
		return fail(m, err)
	}

	list := m.Store.List()
	kept, err := focus.NewBuilder(m.Engine).Build(lines, list)
	if err != nil {
		return fail(m, err)
	}

	// An empty view is a valid outcome, distinct from failure.
	if len(kept) == 0 {
		m.Sink.Info("no lines matched any shown filter")
		return nil
	}

	// Coloring only makes sense on a real terminal; piped output stays
	// clean for further processing.
	colorize := cmd.Bool("color") && term.IsTerminal(int(os.Stdout.Fd()))
	for _, line := range renderFocus(kept, list, m.Engine, colorize) {
		fmt.Println(line)
	}
	return nil
}

// renderFocus paints the kept lines with the highlighted filters' colors
// when colorize is set; otherwise the lines pass through untouched.
func renderFocus(kept []string, list []filter.Filter, engine *match.Engine, colorize bool) []string {
	if !colorize {
		return kept
	}
	surface := highlight.NewTermSurface()
	projector := highlight.NewProjector(engine, surface)
	marks := projector.Apply(kept, list)
	return surface.Render(kept, marks)
}

func focusCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "focus",
		Usage:     "print only the lines matched by shown filters",
		UsageText: "lff focus FILE [options]",
		Action:    focusCommandAction,
	}
}
