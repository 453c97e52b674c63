// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/davetashner/turbodash/internal/table"
)

// LoadCSV reads a delimited text file whose first record is the header.
// A zero delimiter means ',' (or '\t' for .tsv files).
func LoadCSV(path string, delimiter rune) (*table.Table, error) {
	f, err := os.Open(path) //nolint:gosec // user-declared dataset path
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck // read-only file

	if delimiter == 0 && strings.EqualFold(filepath.Ext(path), ".tsv") {
		delimiter = '\t'
	}
	return ReadCSV(f, delimiter)
}

// ReadCSV parses CSV from r. See LoadCSV.
func ReadCSV(r io.Reader, delimiter rune) (*table.Table, error) {
	cr := csv.NewReader(r)
	if delimiter != 0 {
		cr.Comma = delimiter
	}
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse csv: empty file")
	}
	return FromRecords(records[0], records[1:])
}
