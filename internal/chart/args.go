// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"slices"
	"strings"

	"github.com/davetashner/turbodash/internal/dasherr"
	"github.com/davetashner/turbodash/internal/filter"
	"github.com/davetashner/turbodash/internal/table"
)

// Argument is a chart binding that a runtime input may change.
type Argument int

// Arguments.
const (
	KindArg Argument = iota + 1
	X
	Y
	Z
	Color
	Size
	HoverName
	HoverData
	Locations
	LocationMode
	Projection
)

var argNames = map[Argument]string{
	KindArg:      "kind",
	X:            "x",
	Y:            "y",
	Z:            "z",
	Color:        "color",
	Size:         "size",
	HoverName:    "hover_name",
	HoverData:    "hover_data",
	Locations:    "locations",
	LocationMode: "location_mode",
	Projection:   "projection",
}

var argAliases = map[string]Argument{
	"output_type":  KindArg,
	"locationmode": LocationMode,
}

func (a Argument) String() string {
	if n, ok := argNames[a]; ok {
		return n
	}
	return "unknown"
}

// ParseArgument resolves an argument name; dashes and underscores are
// interchangeable.
func ParseArgument(s string) (Argument, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for a, n := range argNames {
		if n == name {
			return a, nil
		}
	}
	if a, ok := argAliases[name]; ok {
		return a, nil
	}
	return 0, dasherr.Configf("chart", "inputs", s, "unknown chart argument")
}

// columnar reports whether a's value names a table column.
func (a Argument) columnar() bool {
	switch a {
	case X, Y, Z, Color, Size, HoverName, HoverData, Locations:
		return true
	}
	return false
}

// Projections are the map projections geo charts accept.
var Projections = []string{
	"equirectangular", "mercator", "orthographic", "natural earth",
	"kavrayskiy7", "miller", "robinson", "eckert4",
	"azimuthal equal area", "azimuthal equidistant", "conic equal area",
	"conic conformal", "conic equidistant", "gnomonic", "stereographic",
	"mollweide", "hammer", "transverse mercator", "albers usa",
	"winkel tripel", "aitoff", "sinusoidal",
}

// LocationModes are the ways geo charts match locations to map features.
var LocationModes = []string{"ISO-3", "USA-states", "country names"}

// Args are the bindings a chart is built from. Empty means unused.
type Args struct {
	X            string
	Y            string
	Z            string
	Color        string
	Size         string
	HoverName    string
	HoverData    []string
	Locations    string
	LocationMode string
	Projection   string
}

// Get returns the value bound to a.
func (a Args) Get(arg Argument) any {
	switch arg {
	case X:
		return a.X
	case Y:
		return a.Y
	case Z:
		return a.Z
	case Color:
		return a.Color
	case Size:
		return a.Size
	case HoverName:
		return a.HoverName
	case HoverData:
		return slices.Clone(a.HoverData)
	case Locations:
		return a.Locations
	case LocationMode:
		return a.LocationMode
	case Projection:
		return a.Projection
	}
	return nil
}

// Set binds a to v, which must be a string or, for hover_data, a list of
// strings.
func (a *Args) Set(arg Argument, v any) error {
	if arg == HoverData {
		var cols []string
		for _, item := range listOf(v) {
			s, ok := text(item)
			if !ok {
				return fmt.Errorf("hover_data: expected column names, got %v", v)
			}
			cols = append(cols, s)
		}
		a.HoverData = cols
		return nil
	}
	s, ok := text(v)
	if !ok {
		return fmt.Errorf("%s: expected a string, got %T", arg, v)
	}
	switch arg {
	case X:
		a.X = s
	case Y:
		a.Y = s
	case Z:
		a.Z = s
	case Color:
		a.Color = s
	case Size:
		a.Size = s
	case HoverName:
		a.HoverName = s
	case Locations:
		a.Locations = s
	case LocationMode:
		a.LocationMode = s
	case Projection:
		a.Projection = s
	default:
		return fmt.Errorf("%s: not a chart binding", arg)
	}
	return nil
}

// Strip returns a copy keeping only the arguments kind k is built from.
func (a Args) Strip(k Kind) Args {
	var out Args
	for _, arg := range k.Allowed() {
		switch arg {
		case X:
			out.X = a.X
		case Y:
			out.Y = a.Y
		case Z:
			out.Z = a.Z
		case Color:
			out.Color = a.Color
		case Size:
			out.Size = a.Size
		case HoverName:
			out.HoverName = a.HoverName
		case HoverData:
			out.HoverData = slices.Clone(a.HoverData)
		case Locations:
			out.Locations = a.Locations
		case LocationMode:
			out.LocationMode = a.LocationMode
		case Projection:
			out.Projection = a.Projection
		}
	}
	return out
}

// columns returns every column a refers to.
func (a Args) columns() map[Argument][]string {
	out := map[Argument][]string{}
	for _, arg := range []Argument{X, Y, Z, Color, Size, HoverName, Locations} {
		if s, _ := a.Get(arg).(string); s != "" {
			out[arg] = []string{s}
		}
	}
	if len(a.HoverData) > 0 {
		out[HoverData] = slices.Clone(a.HoverData)
	}
	return out
}

// check verifies that a refers to existing columns and known enumerations.
func (a Args) check(tbl *table.Table) error {
	for arg, cols := range a.columns() {
		for _, c := range cols {
			if !tbl.HasColumn(c) {
				return dasherr.Configf("chart", arg.String(), c, "no such column in table (have %v)", tbl.Columns())
			}
		}
	}
	if a.Size != "" && tbl.Kind(a.Size) != table.KindNumber {
		return dasherr.Configf("chart", "size", a.Size, "size needs a numeric column, got %s", tbl.Kind(a.Size))
	}
	if a.LocationMode != "" && !slices.Contains(LocationModes, a.LocationMode) {
		return dasherr.Configf("chart", "location_mode", a.LocationMode, "must be one of %v", LocationModes)
	}
	if a.Projection != "" && !slices.Contains(Projections, a.Projection) {
		return dasherr.Configf("chart", "projection", a.Projection, "unknown projection")
	}
	return nil
}

// require reports the first argument kind k cannot be drawn without.
func (a Args) require(k Kind) error {
	missing := func(arg Argument) error {
		return dasherr.Configf("chart", arg.String(), nil, "%s chart requires %s", k, arg)
	}
	switch k {
	case Scatter, Line, Area, Bar:
		if a.X == "" && a.Y == "" {
			return missing(Y)
		}
	case Violin:
		if a.Y == "" {
			return missing(Y)
		}
	case Scatter3D:
		for _, arg := range []Argument{X, Y, Z} {
			if a.Get(arg) == "" {
				return missing(arg)
			}
		}
	case ScatterGeo, Choropleth:
		if a.Locations == "" {
			return missing(Locations)
		}
	}
	return nil
}

func text(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case table.Value:
		if t.IsNull() {
			return "", true
		}
		return t.String(), t.Kind() == table.KindString
	}
	return "", false
}

func listOf(v any) []any {
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out
	case []any:
		return t
	}
	return []any{v}
}

// emptyList reports whether v is a list with no elements, which is what a
// cleared multi-select sends.
func emptyList(v any) bool {
	switch t := v.(type) {
	case []any:
		return t != nil && len(t) == 0
	case []string:
		return t != nil && len(t) == 0
	}
	return false
}

// unset mirrors the passthrough rule of menu filters.
func unset(v any) bool { return filter.Unset(v) }
