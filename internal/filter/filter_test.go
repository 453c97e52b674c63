package filter

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/turbodash/internal/dasherr"
	"github.com/davetashner/turbodash/internal/table"
	"github.com/davetashner/turbodash/internal/ui"
)

// countries is five rows with country in {A,B} and year in {1952,1957}.
func countries(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.New([]string{"country", "year", "pop"}, []table.Row{
		{table.String("A"), table.Number(1952), table.Number(10)},
		{table.String("A"), table.Number(1957), table.Number(12)},
		{table.String("B"), table.Number(1952), table.Number(20)},
		{table.String("B"), table.Number(1957), table.Number(22)},
		{table.String("A"), table.Number(1952), table.Number(11)},
	})
	require.NoError(t, err)
	return tbl
}

func dates(t *testing.T) *table.Table {
	t.Helper()
	day := func(d int) table.Value { return table.Time(time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC)) }
	tbl, err := table.New([]string{"date", "n"}, []table.Row{
		{day(1), table.Number(1)},
		{day(5), table.Number(2)},
		{day(10), table.Number(3)},
		{day(20), table.Number(4)},
	})
	require.NoError(t, err)
	return tbl
}

func column(t *testing.T, tbl *table.Table, col string) []string {
	t.Helper()
	vals, err := tbl.Column(col)
	require.NoError(t, err)
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}
	return out
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"single-select", SingleSelect},
		{"Dropdown", SingleSelect},
		{"Dropdown-multi", MultiSelect},
		{"multi-select", MultiSelect},
		{"RangeSlider", RangeSlider},
		{"Slider", SingleSlider},
		{"DatePickerSingle", DateSingle},
		{"DatePickerRange", DateRange},
		{"RadioItems", Radio},
		{"Checklist", Checklist},
		{" checklist ", Checklist},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKind_Unknown(t *testing.T) {
	_, err := ParseKind("Knob")
	require.Error(t, err)
	assert.True(t, errors.Is(err, dasherr.ErrConfiguration))
	assert.Contains(t, err.Error(), `filter.kind "Knob"`)
}

func TestKind_SlotCounts(t *testing.T) {
	for _, k := range Kinds() {
		want := 1
		if k == DateRange {
			want = 2
		}
		assert.Len(t, k.Properties(), want, k.String())
		assert.Len(t, predicates(k), want, k.String())
	}
}

func TestEqual_SingleSelect(t *testing.T) {
	f, err := New("f", Decl{Kind: "single-select", Column: "country"}, countries(t))
	require.NoError(t, err)
	require.Len(t, f.Slots(), 1)

	out, err := f.Slots()[0].Predicate(countries(t), f.Column, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A", "A"}, column(t, out, "country"))
}

func TestBetween_SingleYearRange(t *testing.T) {
	tbl := countries(t)
	f, err := New("f", Decl{Kind: "range-slider", Column: "year"}, tbl)
	require.NoError(t, err)

	out, err := f.Slots()[0].Predicate(tbl, "year", []any{1952.0, 1952.0})
	require.NoError(t, err)
	assert.Equal(t, []string{"1952", "1952", "1952"}, column(t, out, "year"))
}

func TestDateRange_OpenEnd(t *testing.T) {
	tbl := dates(t)
	f, err := New("f", Decl{Kind: "date-range", Column: "date"}, tbl)
	require.NoError(t, err)
	slots := f.Slots()
	require.Len(t, slots, 2)
	assert.Equal(t, "start_date", slots[0].Property)
	assert.Equal(t, "end_date", slots[1].Property)

	out, err := slots[0].Predicate(tbl, "date", "2020-01-05")
	require.NoError(t, err)
	out, err = slots[1].Predicate(out, "date", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2020-01-05", "2020-01-10", "2020-01-20"}, column(t, out, "date"))
}

func TestPassthrough(t *testing.T) {
	tbl := countries(t)
	for _, value := range []any{nil, "", []any{}, []string{}} {
		for _, k := range []Kind{SingleSelect, MultiSelect, Checklist, Radio, SingleSlider} {
			out, err := predicates(k)[0](tbl, "country", value)
			require.NoError(t, err)
			assert.Same(t, tbl, out, "%s with %#v", k, value)
		}
	}

	dt := dates(t)
	for _, p := range append(predicates(DateSingle), predicates(DateRange)...) {
		out, err := p(dt, "date", nil)
		require.NoError(t, err)
		assert.Same(t, dt, out)
	}
}

func TestIdempotence(t *testing.T) {
	tbl := countries(t)
	cases := []struct {
		p     Predicate
		col   string
		value any
	}{
		{Equal, "country", "B"},
		{Equal, "year", 1957.0},
		{In, "country", []any{"A"}},
		{In, "year", []any{"1952", 1957.0}},
	}
	for _, c := range cases {
		once, err := c.p(tbl, c.col, c.value)
		require.NoError(t, err)
		twice, err := c.p(once, c.col, c.value)
		require.NoError(t, err)
		assert.Equal(t, column(t, once, "pop"), column(t, twice, "pop"))
	}
}

func TestPassthrough_Falsy(t *testing.T) {
	tbl := table.MustNew([]string{"pop", "flag"}, []table.Row{
		{table.Number(0), table.Bool(false)},
		{table.Number(1), table.Bool(true)},
		{table.Number(2), table.Bool(true)},
	})
	tests := []struct {
		name   string
		p      Predicate
		column string
		value  any
	}{
		{"equal float zero", Equal, "pop", 0.0},
		{"equal int zero", Equal, "pop", 0},
		{"equal false", Equal, "flag", false},
		{"equal null value", Equal, "pop", table.Null()},
		{"equal zero value", Equal, "pop", table.Number(0)},
		{"equal false value", Equal, "flag", table.Bool(false)},
		{"at least zero", AtLeast, "pop", 0},
		{"at most zero", AtMost, "pop", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.p(tbl, tt.column, tt.value)
			require.NoError(t, err)
			assert.Same(t, tbl, out)
			assert.Equal(t, 3, out.Len())
		})
	}
}

func TestBetween_ZeroBound(t *testing.T) {
	tbl := table.MustNew([]string{"n"}, []table.Row{
		{table.Number(-1)}, {table.Number(0)}, {table.Number(1)}, {table.Number(2)},
	})
	out, err := Between(tbl, "n", []any{0.0, 1.0})
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1"}, column(t, out, "n"))

	out, err = Between(tbl, "n", []any{-1.0, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"-1", "0"}, column(t, out, "n"))
}

func TestEqual_CoercesStrings(t *testing.T) {
	out, err := Equal(countries(t), "year", "1957")
	require.NoError(t, err)
	assert.Equal(t, 2, out.Len())

	out, err = Equal(countries(t), "year", "not a year")
	require.NoError(t, err)
	assert.Equal(t, 0, out.Len())
}

func TestBetween_RequiresPair(t *testing.T) {
	for _, v := range []any{nil, 1952.0, []any{1952.0}} {
		_, err := Between(countries(t), "year", v)
		require.Error(t, err, "%#v", v)
		assert.True(t, errors.Is(err, dasherr.ErrContractMismatch))
	}
}

func TestBetween_OpenBound(t *testing.T) {
	out, err := Between(countries(t), "pop", []any{nil, 12.0})
	require.NoError(t, err)
	assert.Equal(t, []string{"10", "12", "11"}, column(t, out, "pop"))
}

func TestNew_Errors(t *testing.T) {
	tbl := countries(t)
	tests := []struct {
		name string
		decl Decl
		want string
	}{
		{"unknown kind", Decl{Kind: "Knob", Column: "country"}, "unknown filter kind"},
		{"missing column", Decl{Kind: "Dropdown", Column: "continent"}, `filter.column "continent"`},
		{"missing label column", Decl{Kind: "Dropdown", Column: "country", LabelColumn: "name"}, `filter.label_column "name"`},
		{"slider on strings", Decl{Kind: "Slider", Column: "country"}, "needs a numeric column"},
		{"date on numbers", Decl{Kind: "DatePickerSingle", Column: "year"}, "needs a date column"},
		{"bad range default", Decl{Kind: "RangeSlider", Column: "year", Default: []any{1}}, "pair"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("f", tt.decl, tbl)
			require.Error(t, err)
			assert.True(t, errors.Is(err, dasherr.ErrConfiguration))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_NormalizesDefaults(t *testing.T) {
	tbl := countries(t)

	multi, err := New("m", Decl{Kind: "multi-select", Column: "country"}, tbl)
	require.NoError(t, err)
	assert.Equal(t, []any{}, multi.Default)

	scalar, err := New("c", Decl{Kind: "checklist", Column: "country", Default: "A"}, tbl)
	require.NoError(t, err)
	assert.Equal(t, []any{"A"}, scalar.Default)

	rng, err := New("r", Decl{Kind: "range-slider", Column: "year"}, tbl)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{1952, 1957}, rng.Default)

	swapped, err := New("r", Decl{Kind: "range-slider", Column: "year", Default: []any{1957, 1952}}, tbl)
	require.NoError(t, err)
	assert.Equal(t, [2]float64{1952, 1957}, swapped.Default)

	single, err := New("s", Decl{Kind: "single-select", Column: "country", Default: ""}, tbl)
	require.NoError(t, err)
	assert.Nil(t, single.Default)
}

func TestOptions_FirstOccurrence(t *testing.T) {
	tbl := table.MustNew([]string{"code", "name"}, []table.Row{
		{table.String("BR"), table.String("Brazil")},
		{table.String("AR"), table.String("Argentina")},
		{table.String("BR"), table.String("Brazil")},
		{table.Null(), table.String("Unknown")},
	})
	f, err := New("f", Decl{Kind: "Dropdown", Column: "code", LabelColumn: "name"}, tbl)
	require.NoError(t, err)

	opts := f.Options()
	require.Len(t, opts, 2)
	assert.Equal(t, "Brazil", opts[0].Label)
	assert.Equal(t, table.String("BR"), opts[0].Value)
	assert.Equal(t, "Argentina", opts[1].Label)
	assert.Equal(t, "name", f.Label)
}

func TestMarkup(t *testing.T) {
	f, err := New("country-filter", Decl{Kind: "Dropdown", Column: "country", Label: "Country", Default: "B"}, countries(t))
	require.NoError(t, err)

	got, err := ui.Render(f.Markup(Style{Wrapper: "menu-filter-wrapper", Label: "menu-filter-label", Control: "menu-filter"}))
	require.NoError(t, err)
	html := string(got)
	assert.Contains(t, html, `<div class="menu-filter-wrapper"><label class="menu-filter-label" for="country-filter">Country</label>`)
	assert.Contains(t, html, `data-td-id="country-filter"`)
	assert.Contains(t, html, `<option value="&#34;B&#34;" selected>B</option>`)
}

func TestMarkup_SliderStepLandsOnMarks(t *testing.T) {
	assert.Equal(t, 5.0, step([]float64{1952, 1967, 1982, 1997, 2007}))
	assert.Equal(t, 0.5, step([]float64{0, 0.5, 1.5}))
	assert.Equal(t, 1.0, step(nil))
}

func TestNewControl(t *testing.T) {
	opts := []ui.Option{{Label: "lifeExp", Value: "lifeExp"}, {Label: "pop", Value: "pop"}}
	c, err := NewControl("y-input", SingleSelect, "y", opts, "pop")
	require.NoError(t, err)
	require.Len(t, c.Slots(), 1)
	assert.Equal(t, "value", c.Slots()[0].Property)
	assert.Nil(t, c.Slots()[0].Predicate)
	assert.Equal(t, "pop", c.Default)

	multi, err := NewControl("h", MultiSelect, "hover_data", opts, nil)
	require.NoError(t, err)
	assert.Equal(t, []any{}, multi.Default)

	_, err = NewControl("bad", RangeSlider, "x", nil, nil)
	require.Error(t, err)
}
