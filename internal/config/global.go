// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// GlobalConfigDir returns the directory for global turbodash configuration.
// It uses $XDG_CONFIG_HOME/turbodash if set, otherwise ~/.config/turbodash.
func GlobalConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "turbodash")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "turbodash")
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	return filepath.Join(GlobalConfigDir(), "config.yaml")
}

// LoadGlobal loads the global config file. Only presentation and server
// fields are meaningful there; see Defaults.
// If the file does not exist, it returns a zero-value Config and nil error.
func LoadGlobal() (*Config, error) {
	path := GlobalConfigPath()
	data, err := os.ReadFile(path) //nolint:gosec // user config path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	return Parse(data, YAML)
}
