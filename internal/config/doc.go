// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading for lff's user configuration. The
// configuration is expected to be a YAML document located in the user's
// configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/lff.yaml or $HOME/.config/lff.yaml
//   - Windows: %APPDATA%/lff/lff.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions. LFF_CFG_FILE overrides the path entirely. Two keys are
// recognized: filters_file (path of the persisted filter list) and
// max_filters (capacity cap for the store). Settings are resolved once at
// startup and immutable afterwards.
package config
