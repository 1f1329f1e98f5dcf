// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/apex/log"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"github.com/urfave/cli/v3"

	"github.com/lff/lff/internal/viewer"
)

// viewCommandAction opens the live viewer on a log file: highlights are
// projected onto matching lines and re-applied whenever the file changes
// on disk.
func viewCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("usage: lff view FILE")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fail(m, err)
	}
	defer watcher.Close() //nolint:errcheck

	// Watch the directory, not the file: editors and log rotation replace
	// the file, and a directory watch survives that.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fail(m, err)
	}

	model := viewer.New(path, m.Store, m.Engine, watcher, ReadLines)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fail(m, err)
	}
	return nil
}

func viewCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "open a live, highlighted view of a log file",
		UsageText: "lff view FILE",
		Action:    viewCommandAction,
	}
}
