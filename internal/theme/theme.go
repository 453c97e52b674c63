// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package theme holds the layout templates a dashboard can be rendered with.
//
// A theme is plain data: CSS class names for each region of the page and a
// chart style applied to every figure. Lookup returns copies, so callers
// cannot alter the built-in definitions.
package theme

import (
	"slices"

	"github.com/davetashner/turbodash/internal/dasherr"
)

// Built-in theme names.
const (
	Default   = "default"
	Turbo     = "turbo"
	TurboDark = "turbo-dark"
)

// Classes are the CSS class names used for each page region. Empty strings
// render no class attribute.
type Classes struct {
	Header            string
	Logo              string
	HeaderLinks       string
	HeaderLink        string
	HeaderLinkCurrent string

	MenuAndContent    string
	Menu              string
	MenuFilterWrapper string
	MenuFilterLabel   string
	MenuFilter        string

	Content                string
	OutputAndFilterWrapper string
	ContentFilterWrapper   string
	ContentFilterLabel     string
	ContentFilter          string
	OutputWrapper          string
	OutputLabel            string
	Output                 string

	Home     string
	NotFound string
}

// ChartStyle is the figure-level styling applied to every chart.
type ChartStyle struct {
	// Template is the plotly template name the style mirrors.
	Template   string
	Paper      string
	Plot       string
	Font       string
	Grid       string
	Colorway   []string
	ColorScale string
}

// Theme is one layout template.
type Theme struct {
	Name    string
	Classes Classes
	Chart   ChartStyle

	// Builtin themes get a generated header, homepage and not-found page.
	Builtin bool
}

var seaborn = []string{
	"#4c72b0", "#dd8452", "#55a868", "#c44e52", "#8172b3",
	"#937860", "#da8bc3", "#8c8c8c", "#ccb974", "#64b5cd",
}

var plotly = []string{
	"#636efa", "#EF553B", "#00cc96", "#ab63fa", "#FFA15A",
	"#19d3f3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

func classes(suffix string) Classes {
	c := func(name string) string { return name + suffix }
	return Classes{
		Header:            c("header"),
		Logo:              c("logo"),
		HeaderLinks:       c("header-links"),
		HeaderLink:        c("header-link"),
		HeaderLinkCurrent: c("header-link-current"),

		MenuAndContent:    c("menu-and-content"),
		Menu:              c("menu"),
		MenuFilterWrapper: c("menu-filter-wrapper"),
		MenuFilterLabel:   c("menu-filter-label"),
		MenuFilter:        c("menu-filter"),

		Content:                c("content"),
		OutputAndFilterWrapper: c("content-output-and-filter-wrapper"),
		ContentFilterWrapper:   c("content-filter-wrapper"),
		ContentFilterLabel:     c("content-filter-label"),
		ContentFilter:          c("content-filter"),
		OutputWrapper:          c("content-output-wrapper"),
		OutputLabel:            c("content-output-label"),
		Output:                 c("content-output"),

		Home:     c("home"),
		NotFound: c("not-found"),
	}
}

var builtins = map[string]Theme{
	Default: {
		Name: Default,
		Chart: ChartStyle{
			Template:   "plotly",
			Paper:      "#ffffff",
			Plot:       "#e5ecf6",
			Font:       "#2a3f5f",
			Grid:       "#ffffff",
			Colorway:   plotly,
			ColorScale: "Plasma",
		},
	},
	Turbo: {
		Name:    Turbo,
		Builtin: true,
		Classes: classes(""),
		Chart: ChartStyle{
			Template:   "seaborn",
			Paper:      "#ffffff",
			Plot:       "#eaeaf2",
			Font:       "#36454f",
			Grid:       "#ffffff",
			Colorway:   seaborn,
			ColorScale: "Viridis",
		},
	},
	TurboDark: {
		Name:    TurboDark,
		Builtin: true,
		Classes: classes("-dark"),
		Chart: ChartStyle{
			Template:   "plotly_dark",
			Paper:      "#111111",
			Plot:       "#111111",
			Font:       "#f2f5fa",
			Grid:       "#283442",
			Colorway:   plotly,
			ColorScale: "Plasma",
		},
	},
}

// Lookup returns the theme registered under name. An empty name selects
// the default theme. Unknown names are configuration errors.
func Lookup(name string) (Theme, error) {
	if name == "" {
		name = Default
	}
	t, ok := builtins[name]
	if !ok {
		return Theme{}, dasherr.Configf("dashboard", "template", name, "unknown template (must be one of %v)", Names())
	}
	t.Chart.Colorway = slices.Clone(t.Chart.Colorway)
	return t, nil
}

// Names lists the available themes in a stable order.
func Names() []string {
	return []string{Default, Turbo, TurboDark}
}
