// Package summary renders dashboard summaries for the terminal: the routing
// table, loaded datasets and validation results.
package summary

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/davetashner/turbodash/internal/dashboard"
	"github.com/davetashner/turbodash/internal/table"
)

const (
	kindHomepage  = "homepage"
	kindNotFound  = "not-found"
	kindGenerated = "generated"

	statusOK    = "ok"
	statusError = "error"
)

// Routes writes the routing table of app in routing order.
func Routes(w io.Writer, app *dashboard.App) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", SectionTitle("Routes")); err != nil {
		return err
	}
	tbl := NewTable(
		Column{Header: "URL"},
		Column{Header: "Name"},
		Column{Header: "Kind", Color: ColorPageKind},
		Column{Header: "Filters", Align: AlignRight},
		Column{Header: "Charts", Align: AlignRight},
		Column{Header: "Inputs", Align: AlignRight},
	)
	for _, r := range app.Routes() {
		inputs := 0
		for _, b := range r.Bindings {
			inputs += len(b.Inputs())
		}
		tbl.AddRow(r.URL, r.Name, r.Kind(),
			strconv.Itoa(len(r.Filters)), strconv.Itoa(len(r.Charts)), strconv.Itoa(inputs))
	}
	if err := tbl.Render(w); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\n  template: %s, callbacks: %d\n", app.Theme().Name, len(app.Registry().Callbacks()))
	return err
}

// Datasets writes one row per loaded table, sorted by name.
func Datasets(w io.Writer, tables map[string]*table.Table) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", SectionTitle("Datasets")); err != nil {
		return err
	}
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	tbl := NewTable(
		Column{Header: "Name"},
		Column{Header: "Rows", Align: AlignRight},
		Column{Header: "Columns"},
	)
	for _, name := range names {
		t := tables[name]
		cols := make([]string, 0, len(t.Columns()))
		for _, c := range t.Columns() {
			cols = append(cols, c+":"+t.Kind(c).String())
		}
		tbl.AddRow(name, strconv.Itoa(t.Len()), strings.Join(cols, " "))
	}
	return tbl.Render(w)
}

// Validation writes the result of checking one declaration file. err may
// aggregate several problems; each is listed on its own row.
func Validation(w io.Writer, path string, err error) error {
	if _, werr := fmt.Fprintf(w, "%s\n\n", SectionTitle("Validation")); werr != nil {
		return werr
	}
	tbl := NewTable(
		Column{Header: "File"},
		Column{Header: "Status", Color: ColorStatus},
		Column{Header: "Problem"},
	)
	problems := flatten(err)
	if len(problems) == 0 {
		tbl.AddRow(path, statusOK)
	}
	for _, p := range problems {
		tbl.AddRow(path, statusError, p)
	}
	return tbl.Render(w)
}

// flatten lists the messages of err, one per aggregated error.
func flatten(err error) []string {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		out := make([]string, 0, len(merr.Errors))
		for _, e := range merr.Errors {
			out = append(out, flatten(e)...)
		}
		return out
	}
	return []string{err.Error()}
}
