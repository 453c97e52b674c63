// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"github.com/davetashner/turbodash/internal/table"
)

// Figure is a plotly.js figure: traces plus layout. It marshals to the JSON
// Plotly.react expects.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one plotly.js trace. Only the attributes the supported chart
// kinds use are modelled.
type Trace struct {
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	Mode        string `json:"mode,omitempty"`
	ShowLegend  *bool  `json:"showlegend,omitempty"`
	LegendGroup string `json:"legendgroup,omitempty"`

	X []table.Value `json:"x,omitempty"`
	Y []table.Value `json:"y,omitempty"`
	Z []table.Value `json:"z,omitempty"`

	Locations    []table.Value `json:"locations,omitempty"`
	LocationMode string        `json:"locationmode,omitempty"`

	Marker      *Marker `json:"marker,omitempty"`
	StackGroup  string  `json:"stackgroup,omitempty"`
	OffsetGroup string  `json:"offsetgroup,omitempty"`

	Points    string `json:"points,omitempty"`
	Box       *Box   `json:"box,omitempty"`
	ScaleMode string `json:"scalemode,omitempty"`

	ColorScale any       `json:"colorscale,omitempty"`
	ShowScale  *bool     `json:"showscale,omitempty"`
	ColorBar   *ColorBar `json:"colorbar,omitempty"`

	CustomData    [][]table.Value `json:"customdata,omitempty"`
	HoverTemplate string          `json:"hovertemplate,omitempty"`
}

// Marker styles trace points.
type Marker struct {
	Color      any       `json:"color,omitempty"`
	ColorScale any       `json:"colorscale,omitempty"`
	ShowScale  *bool     `json:"showscale,omitempty"`
	ColorBar   *ColorBar `json:"colorbar,omitempty"`
	Size       any       `json:"size,omitempty"`
	SizeMode   string    `json:"sizemode,omitempty"`
	SizeRef    float64   `json:"sizeref,omitempty"`
}

// ColorBar titles a continuous color scale.
type ColorBar struct {
	Title Title `json:"title"`
}

// Box configures the box drawn inside a violin.
type Box struct {
	Visible bool `json:"visible"`
}

// Title is a plotly title object.
type Title struct {
	Text string `json:"text,omitempty"`
}

// Layout is the plotly.js layout.
type Layout struct {
	Title        *Title   `json:"title,omitempty"`
	PaperBGColor string   `json:"paper_bgcolor,omitempty"`
	PlotBGColor  string   `json:"plot_bgcolor,omitempty"`
	Font         *Font    `json:"font,omitempty"`
	Colorway     []string `json:"colorway,omitempty"`
	Legend       *Legend  `json:"legend,omitempty"`
	Margin       *Margin  `json:"margin,omitempty"`

	XAxis *Axis  `json:"xaxis,omitempty"`
	YAxis *Axis  `json:"yaxis,omitempty"`
	Scene *Scene `json:"scene,omitempty"`
	Geo   *Geo   `json:"geo,omitempty"`

	BarMode    string `json:"barmode,omitempty"`
	ViolinMode string `json:"violinmode,omitempty"`
}

// Font is a plotly font.
type Font struct {
	Color string `json:"color,omitempty"`
}

// Legend titles the legend with the color column.
type Legend struct {
	Title Title `json:"title"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	T int `json:"t"`
	R int `json:"r"`
	B int `json:"b"`
	L int `json:"l"`
}

// Axis is a 2D or 3D axis.
type Axis struct {
	Title     Title  `json:"title"`
	GridColor string `json:"gridcolor,omitempty"`
}

// Scene holds the axes of 3D charts.
type Scene struct {
	XAxis Axis `json:"xaxis"`
	YAxis Axis `json:"yaxis"`
	ZAxis Axis `json:"zaxis"`
}

// Geo configures the map of geo charts.
type Geo struct {
	Projection    GeoProjection `json:"projection"`
	BGColor       string        `json:"bgcolor,omitempty"`
	ShowFrame     bool          `json:"showframe"`
	ShowCoastline bool          `json:"showcoastlines"`
	Scope         string        `json:"scope,omitempty"`
}

// GeoProjection is a map projection.
type GeoProjection struct {
	Type string `json:"type"`
}
