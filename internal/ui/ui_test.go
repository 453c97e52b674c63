package ui

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRender(t *testing.T, n Node) string {
	t.Helper()
	out, err := Render(n)
	require.NoError(t, err)
	return string(out)
}

func TestElement_Render(t *testing.T) {
	n := Div("wrap",
		Heading(2, "", "Life <expectancy>"),
		Link("header-link", "/gdp?x=1&y=2", "GDP"),
		Image("logo", "/logo.png", ""),
	)
	got := mustRender(t, n)
	assert.Equal(t,
		`<div class="wrap"><h2>Life &lt;expectancy&gt;</h2><a class="header-link" href="/gdp?x=1&amp;y=2">GDP</a><img class="logo" src="/logo.png"></div>`,
		got)
}

func TestRender_Nil(t *testing.T) {
	got, err := Render(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGroupAndRaw(t *testing.T) {
	got := mustRender(t, Group{Text("a&b"), nil, Raw("<em>x</em>")})
	assert.Equal(t, "a&amp;b<em>x</em>", got)
}

func TestDropdown_Single(t *testing.T) {
	d := &Dropdown{
		ID:          "country",
		Class:       "menu-filter",
		Options:     []Option{{Label: "Brazil", Value: "Brazil"}, {Label: "Chile", Value: "Chile"}},
		Value:       "Chile",
		Placeholder: "Select...",
	}
	got := mustRender(t, d)
	assert.Contains(t, got, `data-td-id="country"`)
	assert.Contains(t, got, `data-td-prop="value"`)
	assert.NotContains(t, got, "multiple")
	assert.Contains(t, got, `<option value="">Select...</option>`, "placeholder not selected when a value is")
	assert.Contains(t, got, `<option value="&#34;Chile&#34;" selected>Chile</option>`)
}

func TestDropdown_MultiSelectsMembers(t *testing.T) {
	d := &Dropdown{
		ID:      "years",
		Multi:   true,
		Options: []Option{{Label: "1952", Value: 1952.0}, {Label: "1957", Value: 1957.0}, {Label: "1962", Value: 1962.0}},
		Value:   []any{1952.0, 1962.0},
	}
	got := mustRender(t, d)
	assert.Contains(t, got, " multiple")
	assert.Contains(t, got, `<option value="1952" selected>`)
	assert.Contains(t, got, `<option value="1957">`)
	assert.Contains(t, got, `<option value="1962" selected>`)
}

func TestSlider(t *testing.T) {
	t.Run("range", func(t *testing.T) {
		got := mustRender(t, &Slider{ID: "yr", Min: 1952, Max: 2007, Step: 5, Range: true, Value: [2]float64{1957, 1982}, Marks: []float64{1952, 2007}})
		assert.Contains(t, got, `data-td-control="range"`)
		assert.Contains(t, got, `value="1957"`)
		assert.Contains(t, got, `value="1982"`)
		assert.Contains(t, got, `<datalist id="yr-marks">`)
	})
	t.Run("range defaults to bounds", func(t *testing.T) {
		got := mustRender(t, &Slider{ID: "yr", Min: 1, Max: 9, Range: true})
		assert.Contains(t, got, `class="td-range-hi" aria-label="maximum" min="1" max="9" step="1" value="9"`)
	})
	t.Run("single unset", func(t *testing.T) {
		got := mustRender(t, &Slider{ID: "s", Min: 0, Max: 10})
		assert.Contains(t, got, `data-unset="true"`)
	})
	t.Run("single set", func(t *testing.T) {
		got := mustRender(t, &Slider{ID: "s", Min: 0, Max: 10, Value: 0.0})
		assert.NotContains(t, got, "data-unset")
	})
	t.Run("bad value", func(t *testing.T) {
		_, err := Render(&Slider{ID: "s", Value: "x"})
		require.Error(t, err)
	})
}

func TestDateRange_TwoSlots(t *testing.T) {
	got := mustRender(t, &DateRange{ID: "when", Start: "2020-01-01"})
	assert.Contains(t, got, `data-td-prop="start_date"`)
	assert.Contains(t, got, `data-td-prop="end_date"`)
	assert.Contains(t, got, `value="2020-01-01"`)
	assert.Equal(t, 2, strings.Count(got, `data-td-id="when"`))
}

func TestRadioAndChecklist(t *testing.T) {
	opts := []Option{{Label: "Asia", Value: "Asia"}, {Label: "Europe", Value: "Europe"}}

	radio := mustRender(t, &RadioItems{ID: "c", Options: opts, Value: "Europe"})
	assert.Contains(t, radio, `name="c"`)
	assert.Equal(t, 1, strings.Count(radio, "checked"))

	check := mustRender(t, &Checklist{ID: "c", Options: opts, Value: []string{"Asia", "Europe"}})
	assert.Equal(t, 2, strings.Count(check, "checked"))
}

func TestDocument(t *testing.T) {
	got := mustRender(t, &Document{
		Title:       "Gapminder",
		Path:        "/life",
		Stylesheets: []string{"https://example.com/a.css"},
		BodyClass:   "turbo-dark",
		Content:     "<p>hi</p>",
	})
	assert.Contains(t, got, "<title>Gapminder</title>")
	assert.Contains(t, got, `href="/static/turbodash.css"`)
	assert.Contains(t, got, `href="https://example.com/a.css"`)
	assert.Contains(t, got, DefaultPlotlyURL)
	assert.Contains(t, got, `data-pathname="/life"`)
	assert.Contains(t, got, `<div id="page-content"><p>hi</p></div>`)
	assert.Contains(t, got, `<body class="turbo-dark">`)
}

func TestStatic(t *testing.T) {
	for _, name := range []string{"turbodash.js", "turbodash.css"} {
		b, err := fs.ReadFile(Static(), name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, b)
	}
}
