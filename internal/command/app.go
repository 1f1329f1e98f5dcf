// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"os"
	"sort"

	"github.com/apex/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/lff/lff/internal/config"
	"github.com/lff/lff/internal/filter"
	"github.com/lff/lff/internal/match"
	"github.com/lff/lff/internal/notify"
	"github.com/lff/lff/internal/persist"
)

// InitApp wires the engine together and returns the CLI app. Settings come
// from the YAML config overridden by the global flags; the persisted filter
// list is loaded into the store before any command action runs. A malformed
// filters file is a warning, not a startup failure: the store starts empty.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	app := &cli.Command{
		Name:     "lff",
		Usage:    "log filter/focus",
		Metadata: map[string]interface{}{},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "lff version info",
				HideDefault: true,
			},
			filtersFileFlag,
			maxFiltersFlag,
			colorFlag,
		},
	}

	app.Before = func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		settings, err := config.Load(
			config.WithFiltersFile(cmd.String("filters-file")),
			config.WithMaxFilters(int(cmd.Int("max-filters"))),
		)
		if err != nil {
			return ctx, err
		}

		sink := notify.NewTerm(os.Stderr, cmd.Bool("color"))
		store := filter.NewStore(settings.MaxFilters)
		adapter := persist.NewAdapter(afero.NewOsFs(), settings.FiltersFile)

		degraded := false
		list, err := adapter.Load()
		if err != nil {
			if !errors.Is(err, filter.ErrParseError) {
				return ctx, err
			}
			// Malformed file: warn and continue with an empty list, but
			// remember the file holds data this process could not read.
			notify.Report(sink, err)
			degraded = true
		}
		if err := store.Replace(list); err != nil {
			notify.Report(sink, err)
			degraded = true
		}

		cmd.Metadata["meta"] = Meta{
			Args:     args,
			Context:  ctx,
			Settings: settings,
			Store:    store,
			Persist:  adapter,
			Engine:   match.NewEngine(),
			Sink:     sink,
			Degraded: degraded,
		}
		log.Debugf("app initialized: %d filters loaded", store.Len())
		return ctx, nil
	}

	app.Commands = append(app.Commands,
		addCommandBuilder(),
		editCommandBuilder(),
		rmCommandBuilder(),
		hlCommandBuilder(),
		showCommandBuilder(),
		lsCommandBuilder(),
		exportCommandBuilder(),
		importCommandBuilder(),
		focusCommandBuilder(),
		viewCommandBuilder(),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
