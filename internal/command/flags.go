// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"github.com/urfave/cli/v3"
)

var (
	filtersFileFlag *cli.StringFlag = &cli.StringFlag{
		Name:    "filters-file",
		Aliases: []string{"f"},
		Usage:   "path of the persisted filter list. Overrides the config file",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LFF_FILTERS_FILE"),
		),
	}

	maxFiltersFlag *cli.IntFlag = &cli.IntFlag{
		Name:  "max-filters",
		Usage: "maximum number of filters the store accepts. Overrides the config file",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("LFF_MAX_FILTERS"),
		),
	}

	colorFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "color",
		Aliases: []string{"c"},
		Usage:   "enable colored text output",
		Value:   false,
	}

	titlesFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:    "titles",
		Aliases: []string{"t"},
		Usage:   "show titles with text output",
		Value:   false,
	}

	// patternColorFlag is shared by add and edit. Named to avoid shadowing
	// the global --color output toggle.
	patternColorFlag *cli.StringFlag = &cli.StringFlag{
		Name:  "pattern-color",
		Usage: "filter display color as #RRGGBB; generated when omitted",
	}

	outputFlag *cli.StringFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml)",
		Value:   "text",
		Validator: func(value string) error {
			return OutputValidator(value)
		},
	}
)
