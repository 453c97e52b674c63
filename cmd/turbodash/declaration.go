// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/davetashner/turbodash/internal/config"
	"github.com/davetashner/turbodash/internal/dashboard"
	"github.com/davetashner/turbodash/internal/table"
)

// loaded is a declaration file taken all the way to an assembled app.
type loaded struct {
	path   string
	cfg    *config.Config
	tables map[string]*table.Table
	app    *dashboard.App
}

// resolveFile returns the absolute path of a declaration file argument.
func resolveFile(arg string) (string, error) {
	path, err := cmdFS.Abs(arg)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "turbodash: cannot resolve path %q (%v)", arg, err)
	}
	info, err := cmdFS.Stat(path)
	if err != nil {
		return "", exitError(ExitInvalidArgs, "turbodash: declaration %q does not exist", arg)
	}
	if info.IsDir() {
		return "", exitError(ExitInvalidArgs, "turbodash: %q is a directory, not a declaration file", arg)
	}
	return path, nil
}

// readDeclaration parses the file at path and layers the global config
// under it. A non-empty template overrides the declared one.
func readDeclaration(path, template string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	global, err := config.LoadGlobal()
	if err != nil {
		slog.Warn("ignoring global config", "path", config.GlobalConfigPath(), "error", err)
		global = &config.Config{}
	}
	cfg = config.Defaults(cfg, global)
	if template != "" {
		cfg.Template = template
	}
	return cfg, nil
}

// load validates the declaration at arg, loads its datasets and
// assembles the dashboard.
func load(ctx context.Context, arg, template string) (*loaded, error) {
	path, err := resolveFile(arg)
	if err != nil {
		return nil, err
	}
	cfg, err := readDeclaration(path, template)
	if err != nil {
		return nil, exitError(ExitInvalidDeclaration, "turbodash: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, exitError(ExitInvalidDeclaration, "turbodash: %s: %v", arg, err)
	}

	tables, err := config.Tables(ctx, cfg, filepath.Dir(path))
	if err != nil {
		return nil, exitError(ExitRuntimeFailure, "turbodash: loading datasets (%v)", err)
	}
	decl, err := config.Declaration(cfg, tables)
	if err != nil {
		return nil, exitError(ExitInvalidDeclaration, "turbodash: %v", err)
	}
	app, err := dashboard.Assemble(decl)
	if err != nil {
		return nil, exitError(ExitInvalidDeclaration, "turbodash: %s: %v", arg, err)
	}
	slog.Debug("declaration loaded", "path", path, "datasets", len(tables), "pages", len(app.Routes()))
	return &loaded{path: path, cfg: cfg, tables: tables, app: app}, nil
}
