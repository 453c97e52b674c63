// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/davetashner/turbodash/internal/dasherr"
	"github.com/davetashner/turbodash/internal/table"
	"github.com/davetashner/turbodash/internal/theme"
)

// sizeMax is the diameter in pixels of the largest sized marker.
const sizeMax = 20

// Build constructs the figure for kind k from tbl. Arguments k is not built
// from are ignored. Missing required arguments and unknown columns are
// configuration errors.
func Build(k Kind, tbl *table.Table, a Args, title string, style theme.ChartStyle) (*Figure, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, dasherr.Configf("chart", "kind", int(k), "unknown chart kind")
	}
	a = a.Strip(k)
	if err := a.check(tbl); err != nil {
		return nil, err
	}
	if err := a.require(k); err != nil {
		return nil, err
	}

	b := &builder{kind: k, tbl: tbl, args: a, style: style}
	b.prepare()

	fig := &Figure{Layout: b.layout(title)}
	for i, g := range b.groups {
		fig.Data = append(fig.Data, b.trace(i, g))
	}
	return fig, nil
}

// Figure resolves runtime input values and builds the chart from tbl.
// Values naming columns the table does not have, or a runtime kind the
// bindings cannot draw, mean the inputs and the markup disagree, so they
// are reported as contract mismatches.
func (s *Spec) Figure(tbl *table.Table, values []any, style theme.ChartStyle) (*Figure, error) {
	kind, args, err := s.Resolve(values)
	if err != nil {
		return nil, err
	}
	if err := args.check(tbl); err != nil {
		return nil, s.mismatch(err)
	}
	if err := args.require(kind); err != nil {
		return nil, s.mismatch(err)
	}
	return Build(kind, tbl, args, s.Title, style)
}

// mismatch reports a configuration error found at update time as a
// contract mismatch. Declarations were checked when the chart was built.
func (s *Spec) mismatch(err error) error {
	var ce *dasherr.ConfigError
	if errors.As(err, &ce) {
		return &dasherr.ContractMismatchError{Output: s.ID, Detail: ce.Error()}
	}
	return err
}

type group struct {
	name string
	rows []int
}

type builder struct {
	kind  Kind
	tbl   *table.Table
	args  Args
	style theme.ChartStyle

	groups     []group
	continuous bool // color column drawn as a color scale
	sizeRef    float64
}

// continuousKinds can map a numeric color column onto a color scale.
// Lines, areas and violins split numeric colors into groups instead.
var continuousKinds = map[Kind]bool{Scatter: true, Bar: true, Scatter3D: true, ScatterGeo: true, Choropleth: true}

func (b *builder) prepare() {
	all := make([]int, b.tbl.Len())
	for i := range all {
		all[i] = i
	}

	if c := b.args.Color; c != "" {
		if b.tbl.Kind(c) == table.KindNumber && continuousKinds[b.kind] {
			b.continuous = true
		} else {
			groups, _ := b.tbl.GroupBy(c)
			for _, g := range groups {
				b.groups = append(b.groups, group{name: g.Key.String(), rows: g.Rows})
			}
		}
	}
	if len(b.groups) == 0 {
		b.groups = []group{{rows: all}}
	}

	if s := b.args.Size; s != "" {
		if _, hi, ok, _ := b.tbl.MinMax(s); ok && hi.Float() > 0 {
			b.sizeRef = 2 * hi.Float() / (sizeMax * sizeMax)
		}
	}
}

func (b *builder) col(name string, rows []int) []table.Value {
	if name == "" {
		return nil
	}
	vals, _ := b.tbl.Select(name, rows)
	return vals
}

func (b *builder) trace(i int, g group) Trace {
	a := b.args
	t := Trace{Name: g.name, LegendGroup: g.name}
	if g.name != "" {
		show := true
		t.ShowLegend = &show
	}

	switch b.kind {
	case Scatter:
		t.Type, t.Mode = "scatter", "markers"
	case Line:
		t.Type, t.Mode = "scatter", "lines"
	case Area:
		t.Type, t.Mode, t.StackGroup = "scatter", "lines", "1"
	case Bar:
		t.Type = "bar"
	case Violin:
		t.Type, t.Points, t.ScaleMode = "violin", "all", "count"
		t.Box = &Box{Visible: false}
		t.OffsetGroup = g.name
	case Scatter3D:
		t.Type, t.Mode = "scatter3d", "markers"
		t.Z = b.col(a.Z, g.rows)
	case ScatterGeo:
		t.Type, t.Mode = "scattergeo", "markers"
	case Choropleth:
		t.Type = "choropleth"
	}

	if b.kind.geo() {
		t.Locations = b.col(a.Locations, g.rows)
		t.LocationMode = a.LocationMode
		if t.LocationMode == "" {
			t.LocationMode = LocationModes[0]
		}
	} else {
		t.X = b.col(a.X, g.rows)
		t.Y = b.col(a.Y, g.rows)
	}

	b.color(&t, i, g)
	if a.Size != "" && b.kind != Choropleth {
		if t.Marker == nil {
			t.Marker = &Marker{}
		}
		t.Marker.Size = b.col(a.Size, g.rows)
		t.Marker.SizeMode = "area"
		t.Marker.SizeRef = b.sizeRef
	}

	if len(a.HoverData) > 0 {
		custom := make([][]table.Value, len(g.rows))
		for ri, row := range g.rows {
			rec := make([]table.Value, len(a.HoverData))
			for ci, c := range a.HoverData {
				rec[ci] = b.tbl.Value(row, c)
			}
			custom[ri] = rec
		}
		t.CustomData = custom
	}
	t.HoverTemplate = b.hoverTemplate(g)
	return t
}

// color applies the color binding to t: a continuous scale, or for
// choropleths a flat per-group color.
func (b *builder) color(t *Trace, i int, g group) {
	c := b.args.Color
	if b.kind == Choropleth {
		switch {
		case b.continuous:
			t.Z = b.col(c, g.rows)
			t.ColorScale = b.style.ColorScale
			show := true
			t.ShowScale = &show
			t.ColorBar = &ColorBar{Title: Title{Text: c}}
		default:
			// Discrete choropleths draw each group in one flat color.
			color := b.pick(i)
			t.Z = make([]table.Value, len(g.rows))
			for j := range t.Z {
				t.Z[j] = table.Number(1)
			}
			t.ColorScale = [][2]any{{0, color}, {1, color}}
			hide := false
			t.ShowScale = &hide
		}
		return
	}
	if !b.continuous {
		return
	}
	show := true
	t.Marker = &Marker{
		Color:      b.col(c, g.rows),
		ColorScale: b.style.ColorScale,
		ShowScale:  &show,
		ColorBar:   &ColorBar{Title: Title{Text: c}},
	}
}

func (b *builder) pick(i int) string {
	if len(b.style.Colorway) == 0 {
		return "#636efa"
	}
	return b.style.Colorway[i%len(b.style.Colorway)]
}

func (b *builder) hoverTemplate(g group) string {
	a := b.args
	var parts []string
	add := func(label, ref string) {
		if label != "" {
			parts = append(parts, fmt.Sprintf("%s=%s", label, ref))
		}
	}
	if g.name != "" {
		add(a.Color, g.name)
	}
	if b.kind.geo() {
		add(a.Locations, "%{location}")
	} else {
		add(a.X, "%{x}")
		add(a.Y, "%{y}")
	}
	add(a.Z, "%{z}")
	if b.continuous {
		if b.kind == Choropleth {
			add(a.Color, "%{z}")
		} else {
			add(a.Color, "%{marker.color}")
		}
	}
	if b.kind != Choropleth {
		add(a.Size, "%{marker.size}")
	}
	for i, c := range a.HoverData {
		add(c, fmt.Sprintf("%%{customdata[%d]}", i))
	}
	return strings.Join(parts, "<br>") + "<extra></extra>"
}

func (b *builder) layout(title string) Layout {
	a := b.args
	st := b.style
	l := Layout{
		PaperBGColor: st.Paper,
		PlotBGColor:  st.Plot,
		Font:         &Font{Color: st.Font},
		Colorway:     st.Colorway,
		Margin:       &Margin{T: 30, R: 20, B: 40, L: 50},
	}
	if title != "" {
		l.Title = &Title{Text: title}
		l.Margin.T = 60
	}
	if a.Color != "" && !b.continuous {
		l.Legend = &Legend{Title: Title{Text: a.Color}}
	}

	switch b.kind {
	case Scatter3D:
		l.Scene = &Scene{
			XAxis: Axis{Title: Title{Text: a.X}, GridColor: st.Grid},
			YAxis: Axis{Title: Title{Text: a.Y}, GridColor: st.Grid},
			ZAxis: Axis{Title: Title{Text: a.Z}, GridColor: st.Grid},
		}
	case ScatterGeo, Choropleth:
		proj := a.Projection
		if proj == "" {
			proj = Projections[0]
		}
		l.Geo = &Geo{Projection: GeoProjection{Type: proj}, BGColor: st.Paper, ShowCoastline: true}
		if a.LocationMode == "USA-states" {
			l.Geo.Scope = "usa"
		}
	default:
		l.XAxis = &Axis{Title: Title{Text: a.X}, GridColor: st.Grid}
		l.YAxis = &Axis{Title: Title{Text: a.Y}, GridColor: st.Grid}
	}

	switch b.kind {
	case Bar:
		l.BarMode = "relative"
	case Violin:
		l.ViolinMode = "group"
	}
	return l
}
