package summary

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// Alignment controls how a column's content is justified.
type Alignment int

const (
	// AlignLeft pads on the right (default).
	AlignLeft Alignment = iota
	// AlignRight pads on the left.
	AlignRight
)

// ColorFunc maps a cell value to a colored string. If nil, no color is applied.
type ColorFunc func(value string) string

// Column describes a single table column.
type Column struct {
	Header string
	Align  Alignment
	Color  ColorFunc
}

// Table renders aligned text tables to an io.Writer.
type Table struct {
	columns []Column
	rows    [][]string
}

// NewTable creates a table with the given column definitions.
func NewTable(columns ...Column) *Table {
	return &Table{columns: columns}
}

// AddRow appends a row. Extra values are dropped; missing ones are empty.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.columns))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Render writes the table to w. Widths count runes, so page names outside
// ASCII still line up.
func (t *Table) Render(w io.Writer) error {
	if len(t.columns) == 0 {
		return nil
	}

	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = utf8.RuneCountInString(col.Header)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	bold := color.New(color.Bold)
	header := make([]string, len(t.columns))
	rule := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = bold.Sprint(pad(col.Header, col.Header, widths[i], col.Align))
		rule[i] = strings.Repeat("-", widths[i])
	}
	if err := line(w, header); err != nil {
		return err
	}
	if err := line(w, rule); err != nil {
		return err
	}

	for _, row := range t.rows {
		parts := make([]string, len(t.columns))
		for i, col := range t.columns {
			display := row[i]
			if col.Color != nil {
				display = col.Color(row[i])
			}
			parts[i] = pad(display, row[i], widths[i], col.Align)
		}
		if err := line(w, parts); err != nil {
			return err
		}
	}
	return nil
}

// pad justifies display to width, measuring the uncolored raw value.
func pad(display, raw string, width int, align Alignment) string {
	n := max(width-utf8.RuneCountInString(raw), 0)
	if align == AlignRight {
		return strings.Repeat(" ", n) + display
	}
	return display + strings.Repeat(" ", n)
}

func line(w io.Writer, parts []string) error {
	if _, err := fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(parts, "  "), " ")); err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	return nil
}
