// Package config handles dashboard declaration files.
//
// A declaration is YAML (.yaml, .yml) or TOML (.toml). It names the
// datasets the dashboard reads and the pages built on them; Build loads
// the datasets and turns the declaration into a dashboard.Dashboard.
package config

// Config represents the contents of a declaration file.
type Config struct {
	Title         string   `yaml:"title,omitempty" toml:"title,omitempty"`
	Template      string   `yaml:"template,omitempty" toml:"template,omitempty"`
	Logo          string   `yaml:"logo,omitempty" toml:"logo,omitempty"`
	HomeImage     string   `yaml:"home_image,omitempty" toml:"home_image,omitempty"`
	NotFoundImage string   `yaml:"not_found_image,omitempty" toml:"not_found_image,omitempty"`
	Stylesheets   []string `yaml:"stylesheets,omitempty" toml:"stylesheets,omitempty"`

	Server   ServerConfig             `yaml:"server,omitempty" toml:"server,omitempty"`
	Datasets map[string]DatasetConfig `yaml:"datasets,omitempty" toml:"datasets,omitempty"`
	Pages    []PageConfig             `yaml:"pages,omitempty" toml:"pages,omitempty"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr            string   `yaml:"addr,omitempty" toml:"addr,omitempty"`
	AllowedOrigins  []string `yaml:"allowed_origins,omitempty" toml:"allowed_origins,omitempty"`
	ShutdownTimeout string   `yaml:"shutdown_timeout,omitempty" toml:"shutdown_timeout,omitempty"`
}

// DatasetConfig describes one table source.
type DatasetConfig struct {
	// Format is csv, xlsx, postgres or sample. Inferred when empty.
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`

	// Path is the csv or xlsx file, relative to the declaration file, or
	// the sample name.
	Path      string `yaml:"path,omitempty" toml:"path,omitempty"`
	Sheet     string `yaml:"sheet,omitempty" toml:"sheet,omitempty"`
	Delimiter string `yaml:"delimiter,omitempty" toml:"delimiter,omitempty"`

	// DSN may reference environment variables, e.g. ${DATABASE_URL}.
	DSN   string `yaml:"dsn,omitempty" toml:"dsn,omitempty"`
	Query string `yaml:"query,omitempty" toml:"query,omitempty"`
}

// PageConfig is one page of the dashboard.
type PageConfig struct {
	URL         string         `yaml:"url,omitempty" toml:"url,omitempty"`
	Name        string         `yaml:"name,omitempty" toml:"name,omitempty"`
	Dataset     string         `yaml:"dataset,omitempty" toml:"dataset,omitempty"`
	Description string         `yaml:"description,omitempty" toml:"description,omitempty"`
	Prebuilt    string         `yaml:"prebuilt,omitempty" toml:"prebuilt,omitempty"`
	Filters     []FilterConfig `yaml:"filters,omitempty" toml:"filters,omitempty"`
	Charts      []ChartConfig  `yaml:"charts,omitempty" toml:"charts,omitempty"`
}

// FilterConfig declares a menu filter.
type FilterConfig struct {
	Kind        string `yaml:"kind" toml:"kind"`
	Column      string `yaml:"column" toml:"column"`
	LabelColumn string `yaml:"label_column,omitempty" toml:"label_column,omitempty"`
	Label       string `yaml:"label,omitempty" toml:"label,omitempty"`
	Default     any    `yaml:"default,omitempty" toml:"default,omitempty"`
}

// ChartConfig declares a chart, its static bindings and the arguments
// users may rebind at runtime.
type ChartConfig struct {
	Kind         string   `yaml:"kind" toml:"kind"`
	Title        string   `yaml:"title,omitempty" toml:"title,omitempty"`
	X            string   `yaml:"x,omitempty" toml:"x,omitempty"`
	Y            string   `yaml:"y,omitempty" toml:"y,omitempty"`
	Z            string   `yaml:"z,omitempty" toml:"z,omitempty"`
	Color        string   `yaml:"color,omitempty" toml:"color,omitempty"`
	Size         string   `yaml:"size,omitempty" toml:"size,omitempty"`
	HoverName    string   `yaml:"hover_name,omitempty" toml:"hover_name,omitempty"`
	HoverData    []string `yaml:"hover_data,omitempty" toml:"hover_data,omitempty"`
	Locations    string   `yaml:"locations,omitempty" toml:"locations,omitempty"`
	LocationMode string   `yaml:"location_mode,omitempty" toml:"location_mode,omitempty"`
	Projection   string   `yaml:"projection,omitempty" toml:"projection,omitempty"`
	Inputs       []string `yaml:"inputs,omitempty" toml:"inputs,omitempty"`
}
