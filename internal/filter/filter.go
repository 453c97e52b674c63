// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package filter declares the interactive controls of a dashboard page and
// the row predicates they contribute.
//
// A Spec is built once from a declaration and the page table. Its Slots
// list one (property, predicate) pair per positional runtime value the
// control produces; date ranges produce two, every other kind one.
package filter

import (
	"fmt"

	"github.com/davetashner/turbodash/internal/dasherr"
	"github.com/davetashner/turbodash/internal/table"
	"github.com/davetashner/turbodash/internal/ui"
)

// Decl is a filter as written in a dashboard declaration.
type Decl struct {
	Kind        string
	Column      string
	LabelColumn string
	Label       string
	Default     any
}

// Slot is one positional input of a filter.
type Slot struct {
	Property  string
	Predicate Predicate // nil for chart-input controls
}

// Spec is a constructed, immutable filter.
type Spec struct {
	ID          string
	Kind        Kind
	Column      string
	LabelColumn string
	Label       string

	// Default is normalized at construction: list kinds hold a []any,
	// range sliders a [2]float64, everything else a scalar or nil.
	Default any

	options []ui.Option
	min     table.Value
	max     table.Value
	marks   []float64
	slots   []Slot
}

// maxMarks bounds how many distinct values a slider shows as tick marks.
const maxMarks = 25

// New builds a menu filter over tbl. Unknown kinds and columns missing
// from tbl are configuration errors.
func New(id string, d Decl, tbl *table.Table) (*Spec, error) {
	kind, err := ParseKind(d.Kind)
	if err != nil {
		return nil, err
	}
	if d.Column == "" {
		return nil, dasherr.Configf("filter", "column", nil, "column is required for %s filter", kind)
	}
	if !tbl.HasColumn(d.Column) {
		return nil, dasherr.Configf("filter", "column", d.Column, "no such column in table (have %v)", tbl.Columns())
	}
	labelCol := d.LabelColumn
	if labelCol == "" {
		labelCol = d.Column
	}
	if !tbl.HasColumn(labelCol) {
		return nil, dasherr.Configf("filter", "label_column", labelCol, "no such column in table (have %v)", tbl.Columns())
	}
	label := d.Label
	if label == "" {
		label = labelCol
	}

	s := &Spec{
		ID:          id,
		Kind:        kind,
		Column:      d.Column,
		LabelColumn: labelCol,
		Label:       label,
	}
	for i, p := range predicates(kind) {
		s.slots = append(s.slots, Slot{Property: kind.Properties()[i], Predicate: p})
	}

	if err := s.describe(tbl); err != nil {
		return nil, err
	}
	s.Default, err = s.normalize(d.Default)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// NewControl builds a control whose options are a fixed list rather than
// table values. Controls have no predicates; chart inputs use them to
// choose a chart argument.
func NewControl(id string, kind Kind, label string, options []ui.Option, def any) (*Spec, error) {
	switch kind {
	case SingleSelect, MultiSelect, Radio, Checklist:
	default:
		return nil, dasherr.Configf("control", "kind", kind.String(), "controls must be a selection kind")
	}
	s := &Spec{ID: id, Kind: kind, Label: label, options: options}
	s.slots = []Slot{{Property: "value"}}
	var err error
	if s.Default, err = s.normalize(def); err != nil {
		return nil, err
	}
	return s, nil
}

// Slots returns the filter's positional inputs in order. The returned slice
// must not be modified.
func (s *Spec) Slots() []Slot { return s.slots }

// Options returns the choices of a selection filter.
func (s *Spec) Options() []ui.Option { return s.options }

// describe derives options or bounds from the table.
func (s *Spec) describe(tbl *table.Table) error {
	switch s.Kind {
	case SingleSelect, MultiSelect, Radio, Checklist:
		groups, err := tbl.Distinct(s.LabelColumn, s.Column)
		if err != nil {
			return err
		}
		for _, g := range groups {
			if g[1].IsNull() {
				continue
			}
			s.options = append(s.options, ui.Option{Label: g[0].String(), Value: g[1]})
		}
	case RangeSlider, SingleSlider:
		if k := tbl.Kind(s.Column); k != table.KindNumber {
			return dasherr.Configf("filter", "column", s.Column, "%s needs a numeric column, got %s", s.Kind, k)
		}
		lo, hi, _, err := tbl.MinMax(s.Column)
		if err != nil {
			return err
		}
		s.min, s.max = lo, hi
		uniq, err := tbl.Unique(s.Column)
		if err != nil {
			return err
		}
		if len(uniq) <= maxMarks {
			for _, v := range uniq {
				s.marks = append(s.marks, v.Float())
			}
		}
	case DateSingle, DateRange:
		if k := tbl.Kind(s.Column); k != table.KindTime {
			return dasherr.Configf("filter", "column", s.Column, "%s needs a date column, got %s", s.Kind, k)
		}
		lo, hi, _, err := tbl.MinMax(s.Column)
		if err != nil {
			return err
		}
		s.min, s.max = lo, hi
	}
	return nil
}

// normalize turns a declared default into the shape the control reports.
func (s *Spec) normalize(def any) (any, error) {
	switch {
	case s.Kind.multi():
		if Unset(def) {
			return []any{}, nil
		}
		return list(def), nil
	case s.Kind == RangeSlider:
		if def == nil {
			return [2]float64{s.min.Float(), s.max.Float()}, nil
		}
		pair := list(def)
		if len(pair) != 2 {
			return nil, dasherr.Configf("filter", "default", def, "range-slider default must be a [min, max] pair")
		}
		var out [2]float64
		for i, p := range pair {
			v, ok := table.FromAny(p).As(table.KindNumber)
			if !ok || v.IsNull() {
				return nil, dasherr.Configf("filter", "default", def, "range-slider default must be numeric")
			}
			out[i] = v.Float()
		}
		if out[0] > out[1] {
			out[0], out[1] = out[1], out[0]
		}
		return out, nil
	case s.Kind == SingleSlider:
		if def == nil {
			return nil, nil
		}
		v, ok := table.FromAny(def).As(table.KindNumber)
		if !ok {
			return nil, dasherr.Configf("filter", "default", def, "slider default must be numeric")
		}
		return v.Float(), nil
	case s.Kind == DateRange:
		if def == nil {
			return [2]any{nil, nil}, nil
		}
		pair := list(def)
		if len(pair) != 2 {
			return nil, dasherr.Configf("filter", "default", def, "date-range default must be a [start, end] pair")
		}
		return [2]any{pair[0], pair[1]}, nil
	}
	if Unset(def) {
		return nil, nil
	}
	return def, nil
}

// dateText renders a date default or bound for an <input type="date">.
func dateText(v any) string {
	if Unset(v) {
		return ""
	}
	val, ok := table.FromAny(v).As(table.KindTime)
	if !ok {
		return fmt.Sprint(v)
	}
	return val.Time().Format(table.DateLayout)
}
