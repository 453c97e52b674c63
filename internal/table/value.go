// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package table

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Kind identifies the variant held by a Value.
type Kind int

// Value kinds. KindNull sorts first.
const (
	KindNull Kind = iota
	KindNumber
	KindString
	KindTime
	KindBool
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindTime:
		return "time"
	case KindBool:
		return "bool"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DateLayout is the layout used for dates without a time component.
const DateLayout = "2006-01-02"

// timeLayouts are tried in order when parsing strings as times.
var timeLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Value is a single cell. The zero Value is null.
type Value struct {
	kind Kind
	num  float64
	str  string
	t    time.Time
	b    bool
}

// Null returns the null value.
func Null() Value { return Value{} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Time returns a time value.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Kind returns the variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float returns the numeric payload; zero for non-numbers.
func (v Value) Float() float64 { return v.num }

// Str returns the string payload; empty for non-strings.
func (v Value) Str() string { return v.str }

// Time returns the time payload; zero for non-times.
func (v Value) Time() time.Time { return v.t }

// Bool returns the boolean payload.
func (v Value) Bool() bool { return v.b }

// String renders v for display.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindString:
		return v.str
	case KindTime:
		if v.t.Hour() == 0 && v.t.Minute() == 0 && v.t.Second() == 0 && v.t.Nanosecond() == 0 {
			return v.t.Format(DateLayout)
		}
		return v.t.Format(time.RFC3339)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return ""
}

// Interface returns v as a plain Go value (nil, float64, string, time.Time, bool).
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindTime:
		return v.t
	case KindBool:
		return v.b
	}
	return nil
}

// MarshalJSON encodes numbers and bools natively, times as date or RFC 3339
// strings, and null as JSON null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return []byte("null"), nil
		}
		return json.Marshal(v.num)
	case KindString, KindTime:
		return json.Marshal(v.String())
	case KindBool:
		return json.Marshal(v.b)
	}
	return []byte("null"), nil
}

// UnmarshalJSON decodes any JSON scalar into a Value.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}

// Equal reports whether v and o hold the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindTime:
		return v.t.Equal(o.t)
	case KindBool:
		return v.b == o.b
	}
	return true
}

// Compare orders v against o. Values of different kinds order by kind.
// The result is -1, 0 or +1.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		return cmpInt(int(v.kind), int(o.kind))
	}
	switch v.kind {
	case KindNumber:
		switch {
		case v.num < o.num:
			return -1
		case v.num > o.num:
			return 1
		}
		return 0
	case KindString:
		return strings.Compare(v.str, o.str)
	case KindTime:
		return v.t.Compare(o.t)
	case KindBool:
		if v.b == o.b {
			return 0
		}
		if !v.b {
			return -1
		}
		return 1
	}
	return 0
}

// As converts v to kind k, parsing strings where needed. The boolean result
// is false when the conversion is not possible. Null converts to null.
func (v Value) As(k Kind) (Value, bool) {
	if v.kind == k || v.kind == KindNull {
		return v, true
	}
	switch k {
	case KindString:
		return String(v.String()), true
	case KindNumber:
		switch v.kind {
		case KindString:
			f, err := strconv.ParseFloat(strings.TrimSpace(v.str), 64)
			if err != nil {
				return Value{}, false
			}
			return Number(f), true
		case KindBool:
			if v.b {
				return Number(1), true
			}
			return Number(0), true
		}
	case KindTime:
		if v.kind == KindString {
			t, ok := parseTime(v.str)
			if !ok {
				return Value{}, false
			}
			return Time(t), true
		}
	case KindBool:
		if v.kind == KindString {
			b, err := strconv.ParseBool(strings.TrimSpace(v.str))
			if err != nil {
				return Value{}, false
			}
			return Bool(b), true
		}
	}
	return Value{}, false
}

// FromAny converts decoded JSON values and database driver values into a
// Value. Unknown types fall back to their fmt representation.
func FromAny(x any) Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case float64:
		return Number(t)
	case float32:
		return Number(float64(t))
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return String(t.String())
		}
		return Number(f)
	case string:
		return String(t)
	case []byte:
		return String(string(t))
	case bool:
		return Bool(t)
	case time.Time:
		return Time(t)
	case fmt.Stringer:
		return String(t.String())
	}
	return String(fmt.Sprint(x))
}

// Parse infers a Value from a raw text cell: empty is null, then number,
// bool, date/time, and finally string.
func Parse(s string) Value {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Null()
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(f)
	}
	switch strings.ToLower(trimmed) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	if t, ok := parseTime(trimmed); ok {
		return Time(t)
	}
	return String(s)
}

func parseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
