package binding

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/turbodash/internal/chart"
	"github.com/davetashner/turbodash/internal/dasherr"
	"github.com/davetashner/turbodash/internal/filter"
	"github.com/davetashner/turbodash/internal/table"
	"github.com/davetashner/turbodash/internal/theme"
)

func pageTable(t *testing.T) *table.Table {
	t.Helper()
	s, n := table.String, table.Number
	tbl, err := table.New([]string{"country", "continent", "year", "pop", "lifeExp"}, []table.Row{
		{s("Brazil"), s("Americas"), n(1952), n(56), n(50.9)},
		{s("Brazil"), s("Americas"), n(2007), n(190), n(72.4)},
		{s("Chile"), s("Americas"), n(1952), n(6), n(54.7)},
		{s("France"), s("Europe"), n(1952), n(42), n(67.4)},
		{s("France"), s("Europe"), n(2007), n(61), n(80.7)},
	})
	require.NoError(t, err)
	return tbl
}

func turbo(t *testing.T) theme.ChartStyle {
	t.Helper()
	th, err := theme.Lookup(theme.Turbo)
	require.NoError(t, err)
	return th.Chart
}

type fixture struct {
	tbl     *table.Table
	menu    []*filter.Spec
	chart   *chart.Spec
	binding *Binding
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	tbl := pageTable(t)
	continent, err := filter.New("continent", filter.Decl{Kind: "Dropdown", Column: "continent"}, tbl)
	require.NoError(t, err)
	years, err := filter.New("years", filter.Decl{Kind: "RangeSlider", Column: "year"}, tbl)
	require.NoError(t, err)
	countries, err := filter.New("countries", filter.Decl{Kind: "Checklist", Column: "country"}, tbl)
	require.NoError(t, err)

	c, err := chart.New("pop-chart", chart.Decl{
		Kind:   "bar",
		Args:   chart.Args{X: "country", Y: "pop"},
		Inputs: []string{"y", "color"},
	}, tbl)
	require.NoError(t, err)

	menu := []*filter.Spec{continent, years, countries}
	return fixture{tbl: tbl, menu: menu, chart: c, binding: New(tbl, menu, c, turbo(t))}
}

func TestBinding_InputOrder(t *testing.T) {
	f := newFixture(t)
	want := []Dependency{
		{ID: "continent", Property: "value"},
		{ID: "years", Property: "value"},
		{ID: "countries", Property: "value"},
		{ID: f.chart.Inputs[0].Control.ID, Property: "value"},
		{ID: f.chart.Inputs[1].Control.ID, Property: "value"},
	}
	if diff := cmp.Diff(want, f.binding.Inputs()); diff != "" {
		t.Errorf("Inputs mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Dependency{ID: "pop-chart", Property: "figure"}, f.binding.Output())

	slots := f.binding.Slots()
	assert.True(t, slots[0].Menu())
	assert.Equal(t, "continent", slots[0].Column)
	assert.False(t, slots[3].Menu())
	assert.Equal(t, chart.Y, slots[3].Argument)
	assert.Equal(t, chart.Color, slots[4].Argument)
}

func TestBinding_DateRangeExpandsToTwoSlots(t *testing.T) {
	tbl := table.MustNew([]string{"when", "n"}, []table.Row{
		{table.Parse("2020-01-01"), table.Number(1)},
	})
	dr, err := filter.New("dr", filter.Decl{Kind: "DatePickerRange", Column: "when"}, tbl)
	require.NoError(t, err)
	c, err := chart.New("c", chart.Decl{Kind: "line", Args: chart.Args{X: "when", Y: "n"}, Inputs: []string{"y"}}, tbl)
	require.NoError(t, err)

	b := New(tbl, []*filter.Spec{dr}, c, turbo(t))
	got := b.Inputs()
	require.Len(t, got, 3)
	assert.Equal(t, "start_date", got[0].Property)
	assert.Equal(t, "end_date", got[1].Property)
	assert.Equal(t, "dr", got[1].ID)
}

func TestBinding_Update(t *testing.T) {
	f := newFixture(t)
	fig, err := f.binding.Update([]any{"Americas", []any{1952.0, 1952.0}, nil, "lifeExp", nil})
	require.NoError(t, err)
	require.Len(t, fig.Data, 1)

	var countries []string
	for _, v := range fig.Data[0].X {
		countries = append(countries, v.Str())
	}
	assert.Equal(t, []string{"Brazil", "Chile"}, countries)
	assert.Equal(t, 54.7, fig.Data[0].Y[1].Float(), "runtime y overrides static pop")
	assert.Equal(t, 5, f.tbl.Len(), "page table is never modified")
}

func TestBinding_SequentialAnd(t *testing.T) {
	f := newFixture(t)
	values := []any{"Europe", []any{2000.0, 2010.0}, []any{"France", "Brazil"}}

	got, err := f.binding.Filter(values)
	require.NoError(t, err)

	want := f.tbl
	for i, spec := range f.menu {
		want, err = spec.Slots()[0].Predicate(want, spec.Column, values[i])
		require.NoError(t, err)
	}
	assert.Equal(t, want.Len(), got.Len())
	assert.Equal(t, 1, got.Len())
	assert.Equal(t, "France", got.Value(0, "country").Str())
}

func TestBinding_ThreadsFilteredTable(t *testing.T) {
	tbl := pageTable(t)
	var seen []int
	spy := func(keep string) filter.Predicate {
		return func(t *table.Table, column string, value any) (*table.Table, error) {
			seen = append(seen, t.Len())
			return t.FilterColumn(column, func(v table.Value) bool { return v.Str() == keep })
		}
	}
	c, err := chart.New("c", chart.Decl{Kind: "bar", Args: chart.Args{X: "country", Y: "pop"}}, tbl)
	require.NoError(t, err)
	b := &Binding{chart: c, table: tbl, style: turbo(t), menu: 2, slots: []Slot{
		{Dependency: Dependency{ID: "a", Property: "value"}, Column: "continent", Predicate: spy("Americas")},
		{Dependency: Dependency{ID: "b", Property: "value"}, Column: "country", Predicate: spy("Brazil")},
	}}

	out, err := b.Filter([]any{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3}, seen, "second predicate sees the first one's result")
	assert.Equal(t, 2, out.Len())
}

func TestBinding_ContractMismatch(t *testing.T) {
	f := newFixture(t)

	_, err := f.binding.Update([]any{"Americas"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dasherr.ErrContractMismatch))
	assert.Contains(t, err.Error(), "pop-chart.figure: expected 5 input values, got 1")

	_, err = f.binding.Update([]any{nil, nil, nil, nil, nil, nil})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dasherr.ErrContractMismatch))
}

func TestBinding_RangeNotAPair(t *testing.T) {
	f := newFixture(t)
	_, err := f.binding.Update([]any{nil, 1952.0, nil, nil, nil})
	require.Error(t, err)
	var cm *dasherr.ContractMismatchError
	require.True(t, errors.As(err, &cm))
	assert.Equal(t, "pop-chart.figure", cm.Output)
	assert.Contains(t, cm.Detail, "input years.value")
}

func TestBinding_ConcurrentUpdates(t *testing.T) {
	f := newFixture(t)
	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		continent := "Americas"
		if i%2 == 0 {
			continent = "Europe"
		}
		go func() {
			_, err := f.binding.Update([]any{continent, []any{1952.0, 2007.0}, nil, nil, "continent"})
			done <- err
		}()
	}
	for i := 0; i < 20; i++ {
		require.NoError(t, <-done)
	}
	assert.Equal(t, 5, f.tbl.Len())
}

func TestRegistry(t *testing.T) {
	f := newFixture(t)
	r := NewRegistry()
	require.NoError(t, r.RegisterBinding(f.binding))

	err := r.RegisterBinding(f.binding)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate))

	route := Callback{
		Output: Dependency{ID: "page-content", Property: "children"},
		Inputs: []Dependency{{ID: "url", Property: "pathname"}},
		Fn: func(_ context.Context, values []any) (any, error) {
			return "page " + values[0].(string), nil
		},
	}
	require.NoError(t, r.Register(route))
	r.Freeze()
	assert.True(t, r.Frozen())

	err = r.Register(Callback{Output: Dependency{ID: "late", Property: "figure"}, Fn: route.Fn})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFrozen))

	cbs := r.Callbacks()
	require.Len(t, cbs, 2)
	assert.Equal(t, "pop-chart", cbs[0].Output.ID)
	assert.Equal(t, "page-content", cbs[1].Output.ID)

	got, err := r.Dispatch(context.Background(), route.Output, []any{"/life"})
	require.NoError(t, err)
	assert.Equal(t, "page /life", got)

	_, err = r.Dispatch(context.Background(), Dependency{ID: "nope", Property: "figure"}, nil)
	assert.True(t, errors.Is(err, ErrUnknownOutput))

	_, err = r.Dispatch(context.Background(), route.Output, nil)
	assert.True(t, errors.Is(err, dasherr.ErrContractMismatch))
}

func TestRegistry_DispatchNamed(t *testing.T) {
	f := newFixture(t)
	r := NewRegistry()
	require.NoError(t, r.RegisterBinding(f.binding))

	inputs := make([]Value, 0, 5)
	for _, d := range f.binding.Inputs() {
		inputs = append(inputs, Value{Dependency: d})
	}
	inputs[1].Value = []any{1952.0, 2007.0}

	out, err := r.DispatchNamed(context.Background(), f.binding.Output(), inputs)
	require.NoError(t, err)
	fig, ok := out.(*chart.Figure)
	require.True(t, ok)
	assert.Len(t, fig.Data[0].X, 5)

	inputs[0], inputs[2] = inputs[2], inputs[0]
	_, err = r.DispatchNamed(context.Background(), f.binding.Output(), inputs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dasherr.ErrContractMismatch))
	assert.Contains(t, err.Error(), "input 0 is countries.value, declared continent.value")
}

func TestRegistry_CanceledContext(t *testing.T) {
	f := newFixture(t)
	r := NewRegistry()
	require.NoError(t, r.RegisterBinding(f.binding))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Dispatch(ctx, f.binding.Output(), make([]any, 5))
	assert.ErrorIs(t, err, context.Canceled)
}
