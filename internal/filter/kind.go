// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"strings"

	"github.com/davetashner/turbodash/internal/dasherr"
)

// Kind is the closed set of filter controls.
type Kind int

// Filter kinds.
const (
	SingleSelect Kind = iota + 1
	MultiSelect
	RangeSlider
	SingleSlider
	DateSingle
	DateRange
	Radio
	Checklist
)

var kindNames = map[Kind]string{
	SingleSelect: "single-select",
	MultiSelect:  "multi-select",
	RangeSlider:  "range-slider",
	SingleSlider: "single-slider",
	DateSingle:   "date-single",
	DateRange:    "date-range",
	Radio:        "radio",
	Checklist:    "checklist",
}

// aliases accepts the control names dashboards were historically declared
// with, matched case-insensitively.
var aliases = map[string]Kind{
	"dropdown":         SingleSelect,
	"dropdown-multi":   MultiSelect,
	"rangeslider":      RangeSlider,
	"slider":           SingleSlider,
	"datepickersingle": DateSingle,
	"datepickerrange":  DateRange,
	"radioitems":       Radio,
}

// Kinds lists every filter kind in declaration order.
func Kinds() []Kind {
	return []Kind{SingleSelect, MultiSelect, RangeSlider, SingleSlider, DateSingle, DateRange, Radio, Checklist}
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind resolves a canonical kind name or an alias.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	if k, ok := aliases[name]; ok {
		return k, nil
	}
	return 0, dasherr.Configf("filter", "kind", s, "unknown filter kind (must be one of %s)", strings.Join(names(), ", "))
}

func names() []string {
	out := make([]string, 0, len(kindNames))
	for _, k := range Kinds() {
		out = append(out, k.String())
	}
	return out
}

// Properties returns the input properties a kind exposes, one per slot.
func (k Kind) Properties() []string {
	switch k {
	case DateSingle:
		return []string{"date"}
	case DateRange:
		return []string{"start_date", "end_date"}
	case SingleSelect, MultiSelect, RangeSlider, SingleSlider, Radio, Checklist:
		return []string{"value"}
	}
	return nil
}

// multi reports whether the kind holds a list of values.
func (k Kind) multi() bool {
	return k == MultiSelect || k == Checklist
}
