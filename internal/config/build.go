// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/davetashner/turbodash/internal/chart"
	"github.com/davetashner/turbodash/internal/dashboard"
	"github.com/davetashner/turbodash/internal/dataset"
	"github.com/davetashner/turbodash/internal/filter"
	"github.com/davetashner/turbodash/internal/table"
)

// source converts d into a dataset source. The format is fixed from the
// declaration before environment references in the DSN are expanded.
func (d DatasetConfig) source(name, baseDir string) dataset.Source {
	src := d.declared(name, baseDir)
	if src.Format == "" {
		src.Format = src.ResolvedFormat()
	}
	src.DSN = os.ExpandEnv(src.DSN)
	return src
}

// declared converts d into a dataset source as written, without expanding
// the DSN.
func (d DatasetConfig) declared(name, baseDir string) dataset.Source {
	var delim rune
	if d.Delimiter != "" {
		delim, _ = utf8.DecodeRuneInString(d.Delimiter)
	}
	return dataset.Source{
		Name:      name,
		Format:    dataset.Format(d.Format),
		Path:      d.Path,
		BaseDir:   baseDir,
		Sheet:     d.Sheet,
		Delimiter: delim,
		DSN:       d.DSN,
		Query:     d.Query,
	}
}

// Sources returns the dataset sources of cfg, sorted by name. Relative
// paths resolve against baseDir.
func Sources(cfg *Config, baseDir string) []dataset.Source {
	names := make([]string, 0, len(cfg.Datasets))
	for name := range cfg.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]dataset.Source, len(names))
	for i, name := range names {
		out[i] = cfg.Datasets[name].source(name, baseDir)
	}
	return out
}

// Tables loads the datasets used by a page of cfg concurrently, keyed by
// dataset name.
func Tables(ctx context.Context, cfg *Config, baseDir string) (map[string]*table.Table, error) {
	used := map[string]bool{}
	for _, p := range cfg.Pages {
		if p.Dataset != "" {
			used[p.Dataset] = true
		}
	}
	var sources []dataset.Source
	for _, src := range Sources(cfg, baseDir) {
		if !used[src.Name] {
			continue
		}
		if raw := cfg.Datasets[src.Name].DSN; raw != "" && src.DSN == "" {
			return nil, fmt.Errorf("dataset %s: dsn %q expands to empty", src.Name, raw)
		}
		sources = append(sources, src)
	}
	return dataset.LoadAll(ctx, sources, 0)
}

// Build loads the datasets of cfg and returns the dashboard declaration.
func Build(ctx context.Context, cfg *Config, baseDir string) (dashboard.Dashboard, error) {
	tables, err := Tables(ctx, cfg, baseDir)
	if err != nil {
		return dashboard.Dashboard{}, err
	}
	return Declaration(cfg, tables)
}

// Declaration maps cfg onto a dashboard declaration using already loaded
// tables.
func Declaration(cfg *Config, tables map[string]*table.Table) (dashboard.Dashboard, error) {
	d := dashboard.Dashboard{
		Title:         cfg.Title,
		Template:      cfg.Template,
		Logo:          cfg.Logo,
		HomeImage:     cfg.HomeImage,
		NotFoundImage: cfg.NotFoundImage,
		Stylesheets:   cfg.Stylesheets,
	}
	for i, p := range cfg.Pages {
		page := dashboard.Page{
			URL:         p.URL,
			Name:        p.Name,
			Description: p.Description,
			Prebuilt:    p.Prebuilt,
		}
		if p.Dataset != "" {
			tbl, ok := tables[p.Dataset]
			if !ok {
				return dashboard.Dashboard{}, fmt.Errorf("pages[%d].dataset: unknown dataset %q", i, p.Dataset)
			}
			page.Table = tbl
		}
		for _, f := range p.Filters {
			page.Filters = append(page.Filters, filter.Decl{
				Kind:        f.Kind,
				Column:      f.Column,
				LabelColumn: f.LabelColumn,
				Label:       f.Label,
				Default:     f.Default,
			})
		}
		for _, c := range p.Charts {
			page.Charts = append(page.Charts, chart.Decl{
				Kind:  c.Kind,
				Title: c.Title,
				Args: chart.Args{
					X:            c.X,
					Y:            c.Y,
					Z:            c.Z,
					Color:        c.Color,
					Size:         c.Size,
					HoverName:    c.HoverName,
					HoverData:    c.HoverData,
					Locations:    c.Locations,
					LocationMode: c.LocationMode,
					Projection:   c.Projection,
				},
				Inputs: c.Inputs,
			})
		}
		d.Pages = append(d.Pages, page)
	}
	return d, nil
}
