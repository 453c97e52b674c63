// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"reflect"
	"strconv"
	"sync"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

var (
	tmplOnce sync.Once
	tmpl     *template.Template
)

func templates() *template.Template {
	tmplOnce.Do(func() {
		tmpl = template.Must(template.New("ui").Funcs(template.FuncMap{
			"render": func(n Node) (template.HTML, error) { return Render(n) },
		}).ParseFS(templateFS, "templates/*.gohtml"))
	})
	return tmpl
}

func execute(w io.Writer, name string, data any) error {
	if err := templates().ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// Option is one choice of a selection control. Value is sent back to the
// server JSON-encoded, so it keeps its type (number, string, date).
type Option struct {
	Label string
	Value any
}

type optionView struct {
	Label    string
	JSON     string
	Selected bool
}

// encode returns the JSON form of v used in value attributes.
func encode(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// views marks the options whose value equals current, or is a member of
// current when it is a list.
func views(opts []Option, current any) []optionView {
	selected := map[string]bool{}
	for _, v := range members(current) {
		selected[encode(v)] = true
	}
	out := make([]optionView, len(opts))
	for i, o := range opts {
		j := encode(o.Value)
		out[i] = optionView{Label: o.Label, JSON: j, Selected: selected[j]}
	}
	return out
}

func members(v any) []any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return []any{v}
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// Dropdown is a single- or multi-select control.
type Dropdown struct {
	ID          string
	Class       string
	Options     []Option
	Value       any
	Multi       bool
	Placeholder string
}

// Render writes a <select> bound to the "value" property.
func (d *Dropdown) Render(w io.Writer) error {
	opts := views(d.Options, d.Value)
	none := true
	for _, o := range opts {
		if o.Selected {
			none = false
		}
	}
	return execute(w, "dropdown", struct {
		*Dropdown
		Opts         []optionView
		NoneSelected bool
	}{d, opts, none})
}

// Slider is a numeric slider. With Range set it reports a [low, high] pair.
type Slider struct {
	ID    string
	Class string
	Min   float64
	Max   float64
	Step  float64
	Range bool
	Marks []float64

	// Value is a float64, or a [2]float64 for range sliders. Nil leaves a
	// single slider unset until the user moves it.
	Value any
}

// Render writes the slider inputs bound to the "value" property.
func (s *Slider) Render(w io.Writer) error {
	step := s.Step
	if step <= 0 {
		step = 1
	}
	view := struct {
		*Slider
		StepText string
		MinText  string
		MaxText  string
		Lo, Hi   string
		Unset    bool
		MarkText []string
	}{Slider: s, StepText: num(step), MinText: num(s.Min), MaxText: num(s.Max)}

	for _, m := range s.Marks {
		view.MarkText = append(view.MarkText, num(m))
	}
	switch v := s.Value.(type) {
	case [2]float64:
		view.Lo, view.Hi = num(v[0]), num(v[1])
	case float64:
		view.Lo = num(v)
	case nil:
		view.Unset = true
		view.Lo = num(s.Min)
	default:
		return fmt.Errorf("slider %s: unsupported value %T", s.ID, s.Value)
	}
	if s.Range {
		if view.Hi == "" {
			view.Lo, view.Hi = num(s.Min), num(s.Max)
		}
		return execute(w, "range-slider", view)
	}
	return execute(w, "slider", view)
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// DatePicker selects one date, bound to the "date" property.
type DatePicker struct {
	ID    string
	Class string
	Min   string
	Max   string
	Date  string
}

// Render writes an <input type="date">.
func (d *DatePicker) Render(w io.Writer) error {
	return execute(w, "date", d)
}

// DateRange selects a start and an end date, bound to the "start_date" and
// "end_date" properties.
type DateRange struct {
	ID    string
	Class string
	Min   string
	Max   string
	Start string
	End   string
}

// Render writes two date inputs.
func (d *DateRange) Render(w io.Writer) error {
	return execute(w, "date-range", d)
}

// RadioItems selects one option from a visible list.
type RadioItems struct {
	ID      string
	Class   string
	Options []Option
	Value   any
}

// Render writes one radio button per option.
func (r *RadioItems) Render(w io.Writer) error {
	return execute(w, "radio", struct {
		*RadioItems
		Opts []optionView
	}{r, views(r.Options, r.Value)})
}

// Checklist selects any number of options from a visible list.
type Checklist struct {
	ID      string
	Class   string
	Options []Option
	Value   any
}

// Render writes one checkbox per option.
func (c *Checklist) Render(w io.Writer) error {
	return execute(w, "checklist", struct {
		*Checklist
		Opts []optionView
	}{c, views(c.Options, c.Value)})
}

// Graph is the display target a chart figure is drawn into.
type Graph struct {
	ID    string
	Class string
}

// Render writes the plot placeholder.
func (g *Graph) Render(w io.Writer) error {
	return execute(w, "graph", g)
}
