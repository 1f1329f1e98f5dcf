// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"

	"github.com/lff/lff/internal/filter"
)

// Settings holds the process-wide configuration: where the filter list is
// persisted and how many filters the store accepts. Built once at startup
// from the YAML config file plus caller-supplied overrides, then treated as
// immutable; every component receives it by reference.
type Settings struct {
	// Source is the absolute path of the YAML file loaded, empty when
	// defaults were used.
	Source string `yaml:"-"`

	FiltersFile string `yaml:"filters_file"`
	MaxFilters  int    `yaml:"max_filters"`
}

// Option overrides one setting at load time, typically from a CLI flag.
type Option func(*Settings)

// WithFiltersFile overrides the filters file path when path is non-empty.
func WithFiltersFile(path string) Option {
	return func(s *Settings) {
		if path != "" {
			s.FiltersFile = path
		}
	}
}

// WithMaxFilters overrides the capacity cap when n is positive.
func WithMaxFilters(n int) Option {
	return func(s *Settings) {
		if n > 0 {
			s.MaxFilters = n
		}
	}
}

// Load resolves the config file, unmarshals it, and applies opts on top.
// A missing config file is not an error; defaults apply. A config file that
// exists but does not parse, or that carries a non-positive max_filters, is
// a configuration error.
func Load(opts ...Option) (*Settings, error) {
	s := &Settings{
		FiltersFile: defaultFiltersFile(),
		MaxFilters:  filter.DefaultMaxFilters,
	}

	if path, err := configFile(); err == nil {
		bytes, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(bytes, s); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		s.Source = path
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.MaxFilters <= 0 {
		return nil, fmt.Errorf("max_filters must be positive, got %d", s.MaxFilters)
	}
	if s.FiltersFile == "" {
		return nil, fmt.Errorf("filters_file must not be empty")
	}

	log.Debugf("settings: file=%s max=%d source=%s", s.FiltersFile, s.MaxFilters, s.Source)
	return s, nil
}

// configFile returns the absolute path to the YAML config file. If the
// LFF_CFG_FILE environment variable is set, it is treated as the full path
// to the config file and must exist. Otherwise the OS-specific user config
// directory is probed for "lff.yaml".
func configFile() (string, error) {
	if cfgPath := os.Getenv("LFF_CFG_FILE"); cfgPath != "" {
		if fileInfo, err := os.Stat(cfgPath); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file from LFF_CFG_FILE: %s", cfgPath)
				return cfgPath, nil
			}
			return "", fmt.Errorf("LFF_CFG_FILE points to a directory: %s", cfgPath)
		}
		return "", fmt.Errorf("config file not found at LFF_CFG_FILE path: %s", cfgPath)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, "lff.yaml")
	if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}

	return "", fmt.Errorf("no config file found in standard locations")
}

// defaultFiltersFile places the filter store under the user config
// directory, falling back to the working directory when none is available.
func defaultFiltersFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "filters.json"
	}
	return filepath.Join(dir, "lff", "filters.json")
}
