// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package chart declares the charts of a dashboard page: their kind, their
// static bindings, and the chart inputs that let users rebind arguments at
// runtime.
//
// Resolution follows a fixed precedence. Static bindings are the base; each
// chart input with a value overrides its argument; arguments the final kind
// is not built from are dropped.
package chart

import (
	"fmt"

	"github.com/davetashner/turbodash/internal/dasherr"
	"github.com/davetashner/turbodash/internal/filter"
	"github.com/davetashner/turbodash/internal/ident"
	"github.com/davetashner/turbodash/internal/table"
	"github.com/davetashner/turbodash/internal/ui"
)

// Decl is a chart as written in a dashboard declaration.
type Decl struct {
	Kind   string
	Title  string
	Args   Args
	Inputs []string
}

// Input is a control bound to a chart argument instead of a column.
type Input struct {
	Argument Argument
	Control  *filter.Spec
}

// Spec is a constructed, immutable chart.
type Spec struct {
	ID     string
	Kind   Kind
	Title  string
	Args   Args
	Inputs []Input
}

// New builds a chart over tbl. The order of d.Inputs is kept: it is the
// order runtime values for the inputs are received in.
func New(id string, d Decl, tbl *table.Table) (*Spec, error) {
	kind, err := ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	if err := d.Args.check(tbl); err != nil {
		return nil, err
	}
	if err := d.Args.Strip(kind).require(kind); err != nil {
		return nil, err
	}

	s := &Spec{ID: id, Kind: kind, Title: d.Title, Args: d.Args}
	seen := map[Argument]bool{}
	for _, name := range d.Inputs {
		arg, err := ParseArgument(name)
		if err != nil {
			return nil, err
		}
		if seen[arg] {
			return nil, dasherr.Configf("chart", "inputs", name, "argument listed more than once")
		}
		seen[arg] = true

		ctl, err := s.control(arg, tbl)
		if err != nil {
			return nil, err
		}
		s.Inputs = append(s.Inputs, Input{Argument: arg, Control: ctl})
	}
	return s, nil
}

// control synthesizes the selection control for a chart input. Its options
// are the table's columns, or a fixed list for enumerated arguments, and its
// default is the chart's static value.
func (s *Spec) control(arg Argument, tbl *table.Table) (*filter.Spec, error) {
	var (
		opts []ui.Option
		def  any
	)
	switch arg {
	case KindArg:
		opts = strings2options(s.drawable())
		def = s.Kind.String()
	case LocationMode:
		opts = strings2options(LocationModes)
		def = s.Args.LocationMode
	case Projection:
		opts = strings2options(Projections)
		def = s.Args.Projection
	case Size, Z:
		var numeric []string
		for _, c := range tbl.Columns() {
			if tbl.Kind(c) == table.KindNumber {
				numeric = append(numeric, c)
			}
		}
		opts = strings2options(numeric)
		def = s.Args.Get(arg)
	default:
		opts = strings2options(tbl.Columns())
		def = s.Args.Get(arg)
	}

	kind := filter.SingleSelect
	if arg == HoverData {
		kind = filter.MultiSelect
	}
	id := ident.New(s.ID, "input", arg.String())
	return filter.NewControl(id, kind, arg.String(), opts, def)
}

// drawable lists the kinds the static bindings are enough to draw. The
// chart's own kind is always among them.
func (s *Spec) drawable() []string {
	var names []string
	for _, k := range Kinds() {
		if s.Args.Strip(k).require(k) == nil {
			names = append(names, k.String())
		}
	}
	return names
}

func strings2options(vals []string) []ui.Option {
	out := make([]ui.Option, len(vals))
	for i, v := range vals {
		out[i] = ui.Option{Label: v, Value: v}
	}
	return out
}

// Resolve overlays runtime input values, one per input in order, onto the
// static bindings and strips what the resolved kind does not use. An unset
// value keeps the static binding, except that an empty hover_data list
// clears the hover columns.
func (s *Spec) Resolve(values []any) (Kind, Args, error) {
	if len(values) != len(s.Inputs) {
		return 0, Args{}, &dasherr.ContractMismatchError{Output: s.ID, Want: len(s.Inputs), Got: len(values)}
	}
	kind := s.Kind
	args := s.Args
	args.HoverData = append([]string(nil), s.Args.HoverData...)

	for i, in := range s.Inputs {
		v := values[i]
		if in.Argument == HoverData && emptyList(v) {
			args.HoverData = nil
			continue
		}
		if unset(v) {
			continue
		}
		if in.Argument == KindArg {
			name, ok := text(v)
			k, err := ParseKind(name)
			if !ok || err != nil {
				return 0, Args{}, &dasherr.ContractMismatchError{
					Output: s.ID,
					Detail: fmt.Sprintf("input %s: unknown chart kind %v", in.Argument, v),
				}
			}
			kind = k
			continue
		}
		if err := args.Set(in.Argument, v); err != nil {
			return 0, Args{}, &dasherr.ContractMismatchError{Output: s.ID, Detail: "input " + err.Error()}
		}
	}
	return kind, args.Strip(kind), nil
}

// Style holds the class names a chart is wrapped with.
type Style struct {
	Wrapper       string
	Label         string
	OutputWrapper string
	Output        string
	Input         filter.Style
}

// Markup returns the chart's input controls, in input order, followed by
// the plot placeholder.
func (s *Spec) Markup(st Style) ui.Node {
	children := make([]ui.Node, 0, len(s.Inputs)+2)
	if s.Title != "" {
		children = append(children, ui.Heading(3, st.Label, s.Title))
	}
	for _, in := range s.Inputs {
		children = append(children, in.Control.Markup(st.Input))
	}
	children = append(children, ui.Div(st.OutputWrapper, &ui.Graph{ID: s.ID, Class: st.Output}))
	return ui.Div(st.Wrapper, children...)
}
