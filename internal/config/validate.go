package config

import (
	"fmt"
	"net"
	"slices"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"github.com/davetashner/turbodash/internal/chart"
	"github.com/davetashner/turbodash/internal/dashboard"
	"github.com/davetashner/turbodash/internal/dataset"
	"github.com/davetashner/turbodash/internal/filter"
	"github.com/davetashner/turbodash/internal/theme"
)

// Validate checks all fields in the config and returns all errors at once.
// Column names are checked later, by Build, once the tables are loaded.
func Validate(cfg *Config) error {
	var errs *multierror.Error
	add := func(format string, args ...any) {
		errs = multierror.Append(errs, fmt.Errorf(format, args...))
	}

	if _, err := theme.Lookup(cfg.Template); err != nil {
		add("template: unknown template %q (must be one of %s)", cfg.Template, strings.Join(theme.Names(), ", "))
	}

	if cfg.Server.Addr != "" {
		if _, _, err := net.SplitHostPort(cfg.Server.Addr); err != nil {
			add("server.addr: %v", err)
		}
	}
	if cfg.Server.ShutdownTimeout != "" {
		if d, err := time.ParseDuration(cfg.Server.ShutdownTimeout); err != nil || d <= 0 {
			add("server.shutdown_timeout: invalid duration %q", cfg.Server.ShutdownTimeout)
		}
	}

	names := make([]string, 0, len(cfg.Datasets))
	for name := range cfg.Datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, err := range validateDataset(cfg.Datasets[name]) {
			add("datasets.%s.%v", name, err)
		}
	}

	if len(cfg.Pages) == 0 {
		add("pages: at least one page is required")
	}
	urls := map[string]int{}
	for i, p := range cfg.Pages {
		key := fmt.Sprintf("pages[%d]", i)
		pre, err := dashboard.ParsePrebuilt(p.Prebuilt)
		if err != nil {
			add("%s.prebuilt: invalid value %q (must be homepage or not-found)", key, p.Prebuilt)
		}

		url := p.URL
		switch {
		case url == "" && pre == dashboard.Homepage:
			url = dashboard.HomeURL
		case url == "" && pre == dashboard.NotFound:
			url = dashboard.NotFoundURL
		case !strings.HasPrefix(url, "/"):
			add("%s.url: must start with /, got %q", key, p.URL)
		}
		if first, dup := urls[url]; dup && url != "" {
			add("%s.url: %q already used by pages[%d]", key, url, first)
		} else {
			urls[url] = i
		}

		if pre != dashboard.NotPrebuilt && (len(p.Filters) > 0 || len(p.Charts) > 0) {
			add("%s: prebuilt pages take no filters or charts", key)
		}
		if len(p.Filters) > 0 || len(p.Charts) > 0 {
			if p.Dataset == "" {
				add("%s.dataset: required for pages with filters or charts", key)
			} else if _, ok := cfg.Datasets[p.Dataset]; !ok {
				add("%s.dataset: unknown dataset %q", key, p.Dataset)
			}
		}

		for j, f := range p.Filters {
			if _, err := filter.ParseKind(f.Kind); err != nil {
				add("%s.filters[%d].kind: %v", key, j, err)
			}
			if f.Column == "" {
				add("%s.filters[%d].column: required", key, j)
			}
		}
		for j, c := range p.Charts {
			if _, err := chart.ParseKind(c.Kind); err != nil {
				add("%s.charts[%d].kind: %v", key, j, err)
			}
			for _, in := range c.Inputs {
				if _, err := chart.ParseArgument(in); err != nil {
					add("%s.charts[%d].inputs: %v", key, j, err)
				}
			}
			if c.LocationMode != "" && !slices.Contains(chart.LocationModes, c.LocationMode) {
				add("%s.charts[%d].location_mode: invalid value %q (must be one of %s)",
					key, j, c.LocationMode, strings.Join(chart.LocationModes, ", "))
			}
			if c.Projection != "" && !slices.Contains(chart.Projections, c.Projection) {
				add("%s.charts[%d].projection: unknown projection %q", key, j, c.Projection)
			}
		}
	}

	if errs != nil {
		errs.ErrorFormat = format
	}
	return errs.ErrorOrNil()
}

func validateDataset(d DatasetConfig) []error {
	var errs []error
	src := d.declared("", "")
	switch src.ResolvedFormat() {
	case dataset.FormatCSV, dataset.FormatXLSX:
		if d.Path == "" {
			errs = append(errs, fmt.Errorf("path: required for %s datasets", src.ResolvedFormat()))
		}
	case dataset.FormatPostgres:
		if d.DSN == "" {
			errs = append(errs, fmt.Errorf("dsn: required for postgres datasets"))
		}
		if d.Query == "" {
			errs = append(errs, fmt.Errorf("query: required for postgres datasets"))
		}
	case dataset.FormatSample:
		if !slices.Contains(dataset.SampleNames(), d.Path) {
			errs = append(errs, fmt.Errorf("path: unknown sample %q (must be one of %s)", d.Path, strings.Join(dataset.SampleNames(), ", ")))
		}
	case "":
		errs = append(errs, fmt.Errorf("format: cannot infer format from %q", d.Path))
	default:
		errs = append(errs, fmt.Errorf("format: invalid value %q (must be csv, xlsx, postgres, or sample)", d.Format))
	}
	if d.Delimiter != "" && utf8.RuneCountInString(d.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("delimiter: must be a single character, got %q", d.Delimiter))
	}
	return errs
}

// format renders validation errors the way they are printed by the CLI.
func format(errs []error) string {
	lines := make([]string, len(errs))
	for i, err := range errs {
		lines[i] = err.Error()
	}
	return "config validation failed:\n  " + strings.Join(lines, "\n  ")
}
