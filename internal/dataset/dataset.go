// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package dataset loads page tables from files and databases.
//
// Loading happens once at startup, outside the request path. Several
// sources can be loaded concurrently with LoadAll.
package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/davetashner/turbodash/internal/table"
)

// Format identifies how a source is read.
type Format string

// Supported formats.
const (
	FormatCSV      Format = "csv"
	FormatXLSX     Format = "xlsx"
	FormatPostgres Format = "postgres"
	FormatSample   Format = "sample"
)

// DefaultConcurrency bounds the number of sources loaded at once.
const DefaultConcurrency = 4

// Source describes where a table comes from.
type Source struct {
	// Name is the key pages use to refer to the table.
	Name string

	// Format selects the loader. If empty it is inferred from Path's
	// extension, or postgres when DSN is set.
	Format Format

	// Path is the file for csv and xlsx sources. Relative paths are
	// resolved against BaseDir.
	Path    string
	BaseDir string

	// Sheet selects an xlsx worksheet; the first sheet when empty.
	Sheet string

	// Delimiter overrides the csv field separator (default ',').
	Delimiter rune

	// DSN and Query configure postgres sources.
	DSN   string
	Query string
}

// ResolvedFormat returns the format that Load will use for s.
func (s Source) ResolvedFormat() Format {
	if s.Format != "" {
		return Format(strings.ToLower(string(s.Format)))
	}
	if s.DSN != "" {
		return FormatPostgres
	}
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".csv", ".tsv", ".txt":
		return FormatCSV
	case ".xlsx", ".xlsm":
		return FormatXLSX
	}
	return ""
}

// path returns Path resolved against BaseDir.
func (s Source) path() string {
	if s.Path == "" || filepath.IsAbs(s.Path) || s.BaseDir == "" {
		return s.Path
	}
	return filepath.Join(s.BaseDir, s.Path)
}

// Load reads a single source.
func Load(ctx context.Context, src Source) (*table.Table, error) {
	var (
		tbl *table.Table
		err error
	)
	switch f := src.ResolvedFormat(); f {
	case FormatCSV:
		tbl, err = LoadCSV(src.path(), src.Delimiter)
	case FormatXLSX:
		tbl, err = LoadXLSX(src.path(), src.Sheet)
	case FormatPostgres:
		tbl, err = LoadPostgres(ctx, src.DSN, src.Query)
	case FormatSample:
		tbl, err = Sample(src.Path)
	case "":
		return nil, fmt.Errorf("dataset %s: cannot infer format from %q", src.Name, src.Path)
	default:
		return nil, fmt.Errorf("dataset %s: unsupported format %q (must be csv, xlsx, postgres, or sample)", src.Name, f)
	}
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", src.Name, err)
	}
	return tbl, nil
}

// LoadAll loads every source concurrently, at most limit at a time
// (DefaultConcurrency when limit <= 0). The first failure cancels the rest.
func LoadAll(ctx context.Context, sources []Source, limit int) (map[string]*table.Table, error) {
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	seen := make(map[string]bool, len(sources))
	for _, s := range sources {
		if seen[s.Name] {
			return nil, fmt.Errorf("dataset %s: declared more than once", s.Name)
		}
		seen[s.Name] = true
	}

	results := make([]*table.Table, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, src := range sources {
		g.Go(func() error {
			tbl, err := Load(gctx, src)
			if err != nil {
				return err
			}
			slog.Debug("dataset loaded",
				slog.String("dataset", src.Name),
				slog.String("format", string(src.ResolvedFormat())),
				slog.Int("rows", tbl.Len()),
				slog.Int("columns", len(tbl.Columns())))
			results[i] = tbl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*table.Table, len(sources))
	for i, src := range sources {
		out[src.Name] = results[i]
	}
	return out, nil
}
