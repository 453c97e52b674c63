// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/davetashner/turbodash/internal/table"
)

// LoadXLSX reads one worksheet of a workbook. The first non-empty row is the
// header. An empty sheet name selects the first sheet.
func LoadXLSX(path, sheet string) (*table.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only workbook

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	if sheet == "" {
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, fmt.Errorf("sheet %q not found (have %v)", sheet, sheets)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	for len(rows) > 0 && isBlank(rows[0]) {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheet)
	}

	// GetRows trims trailing empty cells, so later rows may be wider than
	// the header when the header itself has trailing blanks.
	header := rows[0]
	body := rows[1:]
	for i, rec := range body {
		if len(rec) > len(header) {
			body[i] = rec[:len(header)]
		}
	}
	return FromRecords(header, body)
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if c != "" {
			return false
		}
	}
	return true
}
