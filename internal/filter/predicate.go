// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"fmt"
	"reflect"

	"github.com/davetashner/turbodash/internal/dasherr"
	"github.com/davetashner/turbodash/internal/table"
)

// Predicate narrows t by the runtime value of one input slot. It never
// modifies t; it returns t itself when the value leaves the slot unset.
type Predicate func(t *table.Table, column string, value any) (*table.Table, error)

// Unset reports whether a runtime value leaves a passthrough slot unset.
// Any falsy value does: nil, the empty string, an empty list, numeric zero
// or false.
func Unset(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case table.Value:
		switch t.Kind() {
		case table.KindNull:
			return true
		case table.KindString:
			return t.Str() == ""
		case table.KindNumber:
			return t.Float() == 0
		case table.KindBool:
			return !t.Bool()
		}
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	}
	return false
}

// openBound reports whether a range bound is missing. Zero is a real bound.
func openBound(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case table.Value:
		return t.IsNull()
	}
	return false
}

// list flattens a runtime list value. A scalar becomes a one-element list.
func list(v any) []any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Type().Elem().Kind() == reflect.Uint8 {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// coerce converts a runtime value to the kind of column, so the string
// "1957" sent by a browser matches the number 1957 in the table.
func coerce(t *table.Table, column string, v any) (table.Value, bool) {
	val := table.FromAny(v)
	k := t.Kind(column)
	if k == table.KindNull {
		return val, true
	}
	return val.As(k)
}

// Equal keeps rows whose column equals the value.
func Equal(t *table.Table, column string, value any) (*table.Table, error) {
	if Unset(value) {
		return t, nil
	}
	target, ok := coerce(t, column, value)
	if !ok {
		return t.Filter(func(table.Row) bool { return false }), nil
	}
	return t.FilterColumn(column, func(v table.Value) bool { return v.Equal(target) })
}

// In keeps rows whose column is one of the listed values.
func In(t *table.Table, column string, value any) (*table.Table, error) {
	if Unset(value) {
		return t, nil
	}
	var targets []table.Value
	for _, item := range list(value) {
		if v, ok := coerce(t, column, item); ok {
			targets = append(targets, v)
		}
	}
	return t.FilterColumn(column, func(v table.Value) bool {
		for _, target := range targets {
			if v.Equal(target) {
				return true
			}
		}
		return false
	})
}

// AtLeast keeps rows whose column is greater than or equal to the value.
func AtLeast(t *table.Table, column string, value any) (*table.Table, error) {
	return bound(t, column, value, func(c int) bool { return c >= 0 })
}

// AtMost keeps rows whose column is less than or equal to the value.
func AtMost(t *table.Table, column string, value any) (*table.Table, error) {
	return bound(t, column, value, func(c int) bool { return c <= 0 })
}

func bound(t *table.Table, column string, value any, keep func(int) bool) (*table.Table, error) {
	if Unset(value) {
		return t, nil
	}
	return limit(t, column, value, keep)
}

func limit(t *table.Table, column string, value any, keep func(int) bool) (*table.Table, error) {
	target, ok := coerce(t, column, value)
	if !ok {
		return nil, &dasherr.ContractMismatchError{
			Detail: fmt.Sprintf("column %q: cannot compare %v with %s values", column, value, t.Kind(column)),
		}
	}
	return t.FilterColumn(column, func(v table.Value) bool {
		return !v.IsNull() && keep(v.Compare(target))
	})
}

// Between keeps rows whose column lies within an inclusive [min, max] pair.
// It has no passthrough: the value must be a pair. A null bound leaves that
// side open.
func Between(t *table.Table, column string, value any) (*table.Table, error) {
	pair := list(value)
	if len(pair) != 2 || value == nil {
		return nil, &dasherr.ContractMismatchError{
			Detail: fmt.Sprintf("column %q: range value must be a [min, max] pair, got %v", column, value),
		}
	}
	if !openBound(pair[0]) {
		var err error
		if t, err = limit(t, column, pair[0], func(c int) bool { return c >= 0 }); err != nil {
			return nil, err
		}
	}
	if !openBound(pair[1]) {
		return limit(t, column, pair[1], func(c int) bool { return c <= 0 })
	}
	return t, nil
}

// predicates returns one predicate per slot of k, in Properties order.
func predicates(k Kind) []Predicate {
	switch k {
	case SingleSelect, SingleSlider, Radio, DateSingle:
		return []Predicate{Equal}
	case MultiSelect, Checklist:
		return []Predicate{In}
	case RangeSlider:
		return []Predicate{Between}
	case DateRange:
		return []Predicate{AtLeast, AtMost}
	}
	return nil
}
