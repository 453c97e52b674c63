// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"strings"

	"github.com/davetashner/turbodash/internal/dasherr"
)

// Kind is the closed set of chart kinds.
type Kind int

// Chart kinds.
const (
	Scatter Kind = iota + 1
	Line
	Area
	Bar
	Violin
	Scatter3D
	ScatterGeo
	Choropleth
)

var kindNames = map[Kind]string{
	Scatter:    "scatter",
	Line:       "line",
	Area:       "area",
	Bar:        "bar",
	Violin:     "violin",
	Scatter3D:  "scatter_3d",
	ScatterGeo: "scatter_geo",
	Choropleth: "choropleth",
}

// Kinds lists every chart kind in declaration order.
func Kinds() []Kind {
	return []Kind{Scatter, Line, Area, Bar, Violin, Scatter3D, ScatterGeo, Choropleth}
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind resolves a chart kind name. Dashes are accepted in place of
// underscores.
func ParseKind(s string) (Kind, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, dasherr.Configf("chart", "kind", s, "unknown chart kind (must be one of %s)", strings.Join(KindNames(), ", "))
}

// KindNames lists the chart kind names in declaration order.
func KindNames() []string {
	out := make([]string, 0, len(kindNames))
	for _, k := range Kinds() {
		out = append(out, k.String())
	}
	return out
}

// Allowed returns the arguments kind k is built from. Anything else is
// stripped before the figure is constructed.
func (k Kind) Allowed() []Argument {
	switch k {
	case Scatter:
		return []Argument{X, Y, Color, Size, HoverData}
	case Line, Area, Bar, Violin:
		return []Argument{X, Y, Color, HoverData}
	case Scatter3D:
		return []Argument{X, Y, Z, Color, Size, HoverData}
	case ScatterGeo:
		return []Argument{Locations, LocationMode, Projection, Color, Size, HoverData}
	case Choropleth:
		return []Argument{Locations, LocationMode, Projection, Color, HoverData}
	}
	return nil
}

// allows reports whether a belongs to k's bindings.
func (k Kind) allows(a Argument) bool {
	for _, x := range k.Allowed() {
		if x == a {
			return true
		}
	}
	return false
}

// geo reports whether k draws on a map.
func (k Kind) geo() bool {
	return k == ScatterGeo || k == Choropleth
}
