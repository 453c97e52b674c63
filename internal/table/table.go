// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package table provides the in-memory, row-oriented dataset that backs a
// dashboard page.
//
// A Table is immutable once built. Filtering returns a new Table that shares
// row storage with its parent, so a page table can be read concurrently by
// any number of update calls without locking.
package table

import (
	"fmt"
	"sort"
	"strings"
)

// Row is one record, aligned with the table's columns.
type Row []Value

// Table is an ordered set of named, typed columns and their rows.
type Table struct {
	columns []string
	index   map[string]int
	kinds   []Kind
	rows    []Row
}

// New builds a Table. Every row must have exactly len(columns) cells and
// column names must be unique and non-empty. Column kinds are inferred from
// the first non-null cell of each column.
func New(columns []string, rows []Row) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if strings.TrimSpace(c) == "" {
			return nil, fmt.Errorf("column %d: empty name", i)
		}
		if _, dup := index[c]; dup {
			return nil, fmt.Errorf("column %q: duplicate name", c)
		}
		index[c] = i
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, fmt.Errorf("row %d: has %d cells, want %d", i, len(r), len(columns))
		}
	}

	kinds := make([]Kind, len(columns))
	for ci := range columns {
		for _, r := range rows {
			if !r[ci].IsNull() {
				kinds[ci] = r[ci].Kind()
				break
			}
		}
	}

	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{columns: cols, index: index, kinds: kinds, rows: rows}, nil
}

// MustNew is New that panics on error. Intended for fixtures and tests.
func MustNew(columns []string, rows []Row) *Table {
	t, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether the table has a column named col.
func (t *Table) HasColumn(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Kind returns the inferred kind of col, or KindNull if the column is
// unknown or entirely null.
func (t *Table) Kind(col string) Kind {
	i, ok := t.index[col]
	if !ok {
		return KindNull
	}
	return t.kinds[i]
}

// Row returns row i. The returned slice must not be modified.
func (t *Table) Row(i int) Row { return t.rows[i] }

// Value returns the cell at row i, column col. Unknown columns yield null.
func (t *Table) Value(i int, col string) Value {
	ci, ok := t.index[col]
	if !ok {
		return Null()
	}
	return t.rows[i][ci]
}

// Column returns a copy of all values in col.
func (t *Table) Column(col string) ([]Value, error) {
	ci, ok := t.index[col]
	if !ok {
		return nil, unknownColumn(col)
	}
	out := make([]Value, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[ci]
	}
	return out, nil
}

// Filter returns a new Table holding the rows for which keep returns true.
// The receiver is not modified.
func (t *Table) Filter(keep func(Row) bool) *Table {
	rows := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		if keep(r) {
			rows = append(rows, r)
		}
	}
	return t.derive(rows)
}

// FilterColumn returns a new Table holding the rows whose value in col
// satisfies keep.
func (t *Table) FilterColumn(col string, keep func(Value) bool) (*Table, error) {
	ci, ok := t.index[col]
	if !ok {
		return nil, unknownColumn(col)
	}
	return t.Filter(func(r Row) bool { return keep(r[ci]) }), nil
}

// Distinct returns one tuple per distinct combination of values across cols,
// in order of first occurrence.
func (t *Table) Distinct(cols ...string) ([][]Value, error) {
	idx := make([]int, len(cols))
	for i, c := range cols {
		ci, ok := t.index[c]
		if !ok {
			return nil, unknownColumn(c)
		}
		idx[i] = ci
	}

	seen := make(map[string]bool)
	var out [][]Value
	for _, r := range t.rows {
		tuple := make([]Value, len(idx))
		var key strings.Builder
		for i, ci := range idx {
			tuple[i] = r[ci]
			fmt.Fprintf(&key, "%d:%s\x1f", r[ci].Kind(), r[ci].String())
		}
		if seen[key.String()] {
			continue
		}
		seen[key.String()] = true
		out = append(out, tuple)
	}
	return out, nil
}

// Unique returns the distinct non-null values of col in ascending order.
func (t *Table) Unique(col string) ([]Value, error) {
	groups, err := t.Distinct(col)
	if err != nil {
		return nil, err
	}
	out := make([]Value, 0, len(groups))
	for _, g := range groups {
		if !g[0].IsNull() {
			out = append(out, g[0])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Compare(out[j]) < 0 })
	return out, nil
}

// MinMax returns the smallest and largest non-null values of col. ok is
// false when the column has no non-null values.
func (t *Table) MinMax(col string) (lo, hi Value, ok bool, err error) {
	ci, found := t.index[col]
	if !found {
		return Value{}, Value{}, false, unknownColumn(col)
	}
	for _, r := range t.rows {
		v := r[ci]
		if v.IsNull() {
			continue
		}
		if !ok {
			lo, hi, ok = v, v, true
			continue
		}
		if v.Compare(lo) < 0 {
			lo = v
		}
		if v.Compare(hi) > 0 {
			hi = v
		}
	}
	return lo, hi, ok, nil
}

// GroupBy partitions row indices by the value of col, in order of first
// occurrence.
func (t *Table) GroupBy(col string) ([]Group, error) {
	ci, ok := t.index[col]
	if !ok {
		return nil, unknownColumn(col)
	}
	pos := make(map[string]int)
	var groups []Group
	for i, r := range t.rows {
		key := fmt.Sprintf("%d:%s", r[ci].Kind(), r[ci].String())
		gi, seen := pos[key]
		if !seen {
			gi = len(groups)
			pos[key] = gi
			groups = append(groups, Group{Key: r[ci]})
		}
		groups[gi].Rows = append(groups[gi].Rows, i)
	}
	return groups, nil
}

// Group is a set of row indices sharing a key value.
type Group struct {
	Key  Value
	Rows []int
}

// Select returns the values of col at the given row indices.
func (t *Table) Select(col string, rows []int) ([]Value, error) {
	ci, ok := t.index[col]
	if !ok {
		return nil, unknownColumn(col)
	}
	out := make([]Value, len(rows))
	for i, ri := range rows {
		out[i] = t.rows[ri][ci]
	}
	return out, nil
}

// derive builds a child table over rows, reusing column metadata.
func (t *Table) derive(rows []Row) *Table {
	return &Table{columns: t.columns, index: t.index, kinds: t.kinds, rows: rows}
}

func unknownColumn(col string) error {
	return fmt.Errorf("unknown column %q", col)
}
