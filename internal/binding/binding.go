// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package binding wires filters and chart inputs to chart outputs.
//
// A Binding holds one ordered slot list per chart: the menu filter slots of
// the page followed by the chart's input slots, each expanded to one entry
// per positional value. The same list declares the chart's dependencies and
// drives its update function, so the two can never disagree.
package binding

import (
	"errors"
	"fmt"

	"github.com/davetashner/turbodash/internal/chart"
	"github.com/davetashner/turbodash/internal/dasherr"
	"github.com/davetashner/turbodash/internal/filter"
	"github.com/davetashner/turbodash/internal/table"
	"github.com/davetashner/turbodash/internal/theme"
)

// Dependency names one property of one component.
type Dependency struct {
	ID       string `json:"id"`
	Property string `json:"property"`
}

func (d Dependency) String() string { return d.ID + "." + d.Property }

// Slot is one positional input of a chart binding. Menu slots carry a
// column and predicate; chart-input slots carry the argument they rebind.
type Slot struct {
	Dependency
	Column    string
	Predicate filter.Predicate
	Argument  chart.Argument
}

// Menu reports whether s narrows the table rather than rebinding the chart.
func (s Slot) Menu() bool { return s.Predicate != nil }

// Binding is the update function of one chart. It is immutable and safe for
// concurrent use.
type Binding struct {
	chart *chart.Spec
	table *table.Table
	style theme.ChartStyle
	slots []Slot
	menu  int
}

// New builds the binding for c on a page whose table is tbl and whose menu
// filters are menu.
func New(tbl *table.Table, menu []*filter.Spec, c *chart.Spec, style theme.ChartStyle) *Binding {
	b := &Binding{chart: c, table: tbl, style: style}
	for _, f := range menu {
		for _, s := range f.Slots() {
			b.slots = append(b.slots, Slot{
				Dependency: Dependency{ID: f.ID, Property: s.Property},
				Column:     f.Column,
				Predicate:  s.Predicate,
			})
		}
	}
	b.menu = len(b.slots)
	for _, in := range c.Inputs {
		for _, s := range in.Control.Slots() {
			b.slots = append(b.slots, Slot{
				Dependency: Dependency{ID: in.Control.ID, Property: s.Property},
				Argument:   in.Argument,
			})
		}
	}
	return b
}

// Output is the chart's figure property.
func (b *Binding) Output() Dependency {
	return Dependency{ID: b.chart.ID, Property: "figure"}
}

// Chart returns the chart the binding updates.
func (b *Binding) Chart() *chart.Spec { return b.chart }

// Slots returns a copy of the ordered slot list.
func (b *Binding) Slots() []Slot {
	return append([]Slot(nil), b.slots...)
}

// Inputs returns the dependencies the chart listens to, in positional order.
func (b *Binding) Inputs() []Dependency {
	out := make([]Dependency, len(b.slots))
	for i, s := range b.slots {
		out[i] = s.Dependency
	}
	return out
}

// Filter applies the menu values to the page table in slot order, each
// predicate narrowing the previous result. The page table is never
// modified.
func (b *Binding) Filter(menuValues []any) (*table.Table, error) {
	if len(menuValues) != b.menu {
		return nil, b.mismatch(len(menuValues), b.menu)
	}
	t := b.table
	for i, s := range b.slots[:b.menu] {
		var err error
		t, err = s.Predicate(t, s.Column, menuValues[i])
		if err != nil {
			return nil, b.wrap(err, s)
		}
	}
	return t, nil
}

// Update derives the figure from one value per slot: it filters the table
// with the menu values, resolves the chart arguments with the rest, and
// builds the figure for the resolved kind.
func (b *Binding) Update(values []any) (*chart.Figure, error) {
	if len(values) != len(b.slots) {
		return nil, b.mismatch(len(values), len(b.slots))
	}
	filtered, err := b.Filter(values[:b.menu])
	if err != nil {
		return nil, err
	}
	return b.chart.Figure(filtered, values[b.menu:], b.style)
}

func (b *Binding) mismatch(got, want int) error {
	return &dasherr.ContractMismatchError{Output: b.Output().String(), Want: want, Got: got}
}

// wrap attributes a predicate contract error to this binding's output.
func (b *Binding) wrap(err error, s Slot) error {
	var cm *dasherr.ContractMismatchError
	if errors.As(err, &cm) && cm.Output == "" {
		return &dasherr.ContractMismatchError{
			Output: b.Output().String(),
			Detail: fmt.Sprintf("input %s: %s", s.Dependency, cm.Detail),
		}
	}
	return fmt.Errorf("input %s: %w", s.Dependency, err)
}
