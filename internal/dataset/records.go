// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"strings"

	"github.com/davetashner/turbodash/internal/table"
)

// FromRecords builds a table from a header and text records, inferring one
// kind per column: number if every non-empty cell is numeric, then bool,
// then time, otherwise string. Short records are padded with nulls.
func FromRecords(header []string, records [][]string) (*table.Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("no header row")
	}
	cols := make([]string, len(header))
	for i, h := range header {
		cols[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	kinds := make([]table.Kind, len(cols))
	for ci := range cols {
		kinds[ci] = inferColumn(records, ci)
	}

	rows := make([]table.Row, 0, len(records))
	for ri, rec := range records {
		if len(rec) > len(cols) {
			return nil, fmt.Errorf("record %d: has %d fields, header has %d", ri+1, len(rec), len(cols))
		}
		row := make(table.Row, len(cols))
		for ci := range cols {
			if ci >= len(rec) {
				continue
			}
			row[ci] = cell(rec[ci], kinds[ci])
		}
		rows = append(rows, row)
	}
	return table.New(cols, rows)
}

// inferColumn returns the kind every non-empty cell of column ci agrees on,
// or KindString when they disagree.
func inferColumn(records [][]string, ci int) table.Kind {
	kind := table.KindNull
	for _, rec := range records {
		if ci >= len(rec) {
			continue
		}
		v := table.Parse(rec[ci])
		if v.IsNull() {
			continue
		}
		switch {
		case kind == table.KindNull:
			kind = v.Kind()
		case kind != v.Kind():
			return table.KindString
		}
	}
	return kind
}

// cell converts raw into a value of kind k.
func cell(raw string, k table.Kind) table.Value {
	if strings.TrimSpace(raw) == "" {
		return table.Null()
	}
	if k == table.KindString {
		return table.String(raw)
	}
	v, ok := table.Parse(raw).As(k)
	if !ok {
		return table.String(raw)
	}
	return v
}
