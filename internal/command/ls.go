// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/lff/lff/internal/filter"
)

// lsCommandAction renders the filter list per the --output flag: a lipgloss
// table by default, or json/yaml documents matching the persisted shape.
func lsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	list := m.Store.List()
	if len(list) == 0 {
		m.Sink.Info("no filters defined")
		return nil
	}

	switch format := cmd.String("output"); format {
	case "json", "yaml":
		if err := emitList(list, format, os.Stdout); err != nil {
			log.Errorf("ls %s marshal: %v", format, err)
			return err
		}
	default:
		TableWriter(list, cmd, os.Stdout)
	}

	return nil
}

// emitList writes the list to w as a json or yaml document matching the
// persisted shape, so the output feeds straight back into import.
func emitList(list []filter.Filter, format string, w io.Writer) error {
	switch format {
	case "json":
		out, err := json.Marshal(list)
		if err != nil {
			return err
		}
		w.Write(out) //nolint:errcheck
		fmt.Fprintln(w)
	case "yaml":
		out, err := yaml.Marshal(list)
		if err != nil {
			return err
		}
		w.Write(out) //nolint:errcheck
	}
	return nil
}

// TableWriter renders the filter list in tabular form honoring color and
// titles options. Output is written to w. If w is nil, os.Stdout is used.
func TableWriter(list []filter.Filter, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	var (
		headerStyle = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Left)
	)

	color := cmd.Bool("color")

	var rows [][]string
	for i, f := range list {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			f.Pattern,
			f.Color,
			strconv.FormatBool(f.Highlighted),
			strconv.FormatBool(f.Shown),
		})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			// Paint the color cell with the filter's own color so the list
			// doubles as a swatch.
			if color && col == 2 && row >= 0 && row < len(list) {
				return cellStyle.Background(lipgloss.Color(list[row].Color))
			}
			return cellStyle
		}).
		Rows(rows...)

	if cmd.Bool("titles") {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("index", "pattern", "color", "highlighted", "shown").BorderHeader(false)
	}

	fmt.Fprintln(w, t)
}

func lsCommandBuilder() *cli.Command {
	return &cli.Command{
		Name:      "ls",
		Usage:     "list filters",
		UsageText: "lff ls [options]",
		Flags: []cli.Flag{
			outputFlag,
			titlesFlag,
		},
		Action: lsCommandAction,
	}
}
