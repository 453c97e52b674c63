// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davetashner/turbodash/internal/table"
)

// LoadPostgres runs query against the database at dsn and returns the
// result set as a table. The pool is closed before returning.
func LoadPostgres(ctx context.Context, dsn, query string) (*table.Table, error) {
	if dsn == "" {
		return nil, errors.New("postgres: dsn is required")
	}
	if query == "" {
		return nil, errors.New("postgres: query is required")
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}
	defer pool.Close()

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: query: %w", err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	cols := make([]string, len(fields))
	for i, fd := range fields {
		cols[i] = fd.Name
	}

	var out []table.Row
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("postgres: scan: %w", err)
		}
		row := make(table.Row, len(vals))
		for i, v := range vals {
			row[i] = fromPG(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: %w", err)
	}
	return table.New(cols, out)
}

// fromPG converts the values pgx decodes for common column types.
func fromPG(v any) table.Value {
	switch t := v.(type) {
	case pgtype.Numeric:
		if !t.Valid {
			return table.Null()
		}
		f, err := t.Float64Value()
		if err != nil || !f.Valid {
			return table.Null()
		}
		return table.Number(f.Float64)
	case [16]byte:
		return table.String(uuid.UUID(t).String())
	}
	return table.FromAny(v)
}
