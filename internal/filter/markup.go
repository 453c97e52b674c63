// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package filter

import (
	"math"

	"github.com/davetashner/turbodash/internal/ui"
)

// Style holds the class names a filter is wrapped with.
type Style struct {
	Wrapper string
	Label   string
	Control string
}

// Markup returns the labelled control for s.
func (s *Spec) Markup(st Style) ui.Node {
	return ui.Div(st.Wrapper,
		ui.Label(st.Label, s.ID, s.Label),
		s.control(st.Control),
	)
}

func (s *Spec) control(class string) ui.Node {
	switch s.Kind {
	case SingleSelect:
		return &ui.Dropdown{ID: s.ID, Class: class, Options: s.options, Value: s.Default, Placeholder: "Select..."}
	case MultiSelect:
		return &ui.Dropdown{ID: s.ID, Class: class, Options: s.options, Value: s.Default, Multi: true}
	case Radio:
		return &ui.RadioItems{ID: s.ID, Class: class, Options: s.options, Value: s.Default}
	case Checklist:
		return &ui.Checklist{ID: s.ID, Class: class, Options: s.options, Value: s.Default}
	case RangeSlider, SingleSlider:
		return &ui.Slider{
			ID:    s.ID,
			Class: class,
			Min:   s.min.Float(),
			Max:   s.max.Float(),
			Step:  step(s.marks),
			Range: s.Kind == RangeSlider,
			Marks: s.marks,
			Value: s.Default,
		}
	case DateSingle:
		return &ui.DatePicker{ID: s.ID, Class: class, Min: dateText(s.min), Max: dateText(s.max), Date: dateText(s.Default)}
	case DateRange:
		pair, _ := s.Default.([2]any)
		return &ui.DateRange{
			ID:    s.ID,
			Class: class,
			Min:   dateText(s.min),
			Max:   dateText(s.max),
			Start: dateText(pair[0]),
			End:   dateText(pair[1]),
		}
	}
	return nil
}

// step picks a slider step that lands on every mark: the greatest common
// divisor of the gaps for whole-number marks, else the smallest gap.
func step(marks []float64) float64 {
	if len(marks) < 2 {
		return 1
	}
	whole := true
	for _, m := range marks {
		if m != math.Trunc(m) {
			whole = false
			break
		}
	}
	var g float64
	for i := 1; i < len(marks); i++ {
		d := marks[i] - marks[i-1]
		if d <= 0 {
			continue
		}
		switch {
		case g == 0:
			g = d
		case whole:
			g = gcd(g, d)
		case d < g:
			g = d
		}
	}
	if g <= 0 {
		return 1
	}
	return g
}

func gcd(a, b float64) float64 {
	for b != 0 {
		a, b = b, math.Mod(a, b)
	}
	return a
}
