package summary

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/turbodash/internal/chart"
	"github.com/davetashner/turbodash/internal/dashboard"
	"github.com/davetashner/turbodash/internal/filter"
	"github.com/davetashner/turbodash/internal/table"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func TestTable_Render(t *testing.T) {
	noColor(t)
	tbl := NewTable(
		Column{Header: "Name"},
		Column{Header: "Count", Align: AlignRight},
	)
	tbl.AddRow("alpha", "10")
	tbl.AddRow("bravo-long", "5", "dropped")
	tbl.AddRow("only-name")
	assert.Equal(t, 3, tbl.Len())

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	assert.Equal(t, []string{
		"  Name        Count",
		"  ----------  -----",
		"  alpha          10",
		"  bravo-long      5",
		"  only-name",
	}, splitLines(buf.String()))
}

func TestTable_RuneWidths(t *testing.T) {
	noColor(t)
	tbl := NewTable(Column{Header: "Page"}, Column{Header: "N", Align: AlignRight})
	tbl.AddRow("Économie", "1")
	tbl.AddRow("abc", "22")

	var buf bytes.Buffer
	require.NoError(t, tbl.Render(&buf))
	lines := splitLines(buf.String())
	assert.Equal(t, "  Économie   1", lines[2])
	assert.Equal(t, "  abc       22", lines[3])
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTable().Render(&buf))
	assert.Empty(t, buf.String())
}

func TestColorFuncs_NoColor(t *testing.T) {
	noColor(t)
	assert.Equal(t, "generated", ColorPageKind("generated"))
	assert.Equal(t, "page", ColorPageKind("page"))
	assert.Equal(t, "error", ColorStatus("error"))
	assert.Equal(t, "Routes", SectionTitle("Routes"))
}

func TestRoutes(t *testing.T) {
	noColor(t)
	tbl := table.MustNew([]string{"continent", "year", "lifeExp"}, []table.Row{
		{table.String("Europe"), table.Number(1952), table.Number(67.4)},
	})
	app, err := dashboard.Assemble(dashboard.Dashboard{
		Template: "turbo",
		Pages: []dashboard.Page{{
			URL:     "/life",
			Name:    "Life",
			Table:   tbl,
			Filters: []filter.Decl{{Kind: "Dropdown", Column: "continent"}},
			Charts:  []chart.Decl{{Kind: "line", Args: chart.Args{X: "year", Y: "lifeExp"}, Inputs: []string{"y", "color"}}},
		}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Routes(&buf, app))
	out := buf.String()
	assert.Contains(t, out, "Routes")
	assert.Regexp(t, `/life\s+Life\s+page\s+1\s+1\s+3`, out)
	assert.Regexp(t, `/\s+Home\s+generated`, out)
	assert.Regexp(t, `/404\s+Not found\s+generated`, out)
	assert.Contains(t, out, "template: turbo, callbacks: 2")
	assert.Less(t, strings.Index(out, "/life"), strings.Index(out, "/404"))
}

func TestDatasets(t *testing.T) {
	noColor(t)
	tables := map[string]*table.Table{
		"b": table.MustNew([]string{"x"}, []table.Row{{table.Number(1)}, {table.Number(2)}}),
		"a": table.MustNew([]string{"name", "when"}, []table.Row{{table.String("n"), table.Parse("2024-01-01")}}),
	}
	var buf bytes.Buffer
	require.NoError(t, Datasets(&buf, tables))
	lines := splitLines(buf.String())
	require.Len(t, lines, 6)
	assert.Equal(t, "  a        1  name:string when:time", lines[4])
	assert.Equal(t, "  b        2  x:number", lines[5])
}

func TestValidation(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	require.NoError(t, Validation(&buf, "dash.yaml", nil))
	assert.Regexp(t, `dash\.yaml\s+ok`, buf.String())

	buf.Reset()
	var errs *multierror.Error
	errs = multierror.Append(errs, errors.New("template: unknown"), errors.New("pages: none"))
	require.NoError(t, Validation(&buf, "dash.yaml", errs))
	out := buf.String()
	assert.Regexp(t, `dash\.yaml\s+error\s+template: unknown`, out)
	assert.Regexp(t, `dash\.yaml\s+error\s+pages: none`, out)
}
