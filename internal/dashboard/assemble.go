// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package dashboard

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"strconv"

	"github.com/hashicorp/go-multierror"

	"github.com/davetashner/turbodash/internal/binding"
	"github.com/davetashner/turbodash/internal/chart"
	"github.com/davetashner/turbodash/internal/dasherr"
	"github.com/davetashner/turbodash/internal/filter"
	"github.com/davetashner/turbodash/internal/ident"
	"github.com/davetashner/turbodash/internal/theme"
	"github.com/davetashner/turbodash/internal/ui"
)

// The page-routing callback listens to the current path and replaces the
// page content.
var (
	RoutingInput  = binding.Dependency{ID: "url", Property: "pathname"}
	RoutingOutput = binding.Dependency{ID: "page-content", Property: "children"}
)

// Route is one entry of the routing table.
type Route struct {
	URL       string
	Name      string
	Prebuilt  Prebuilt
	Generated bool

	Filters  []*filter.Spec
	Charts   []*chart.Spec
	Bindings []*binding.Binding

	description string
	markup      template.HTML
}

// Markup returns the rendered page content.
func (r *Route) Markup() template.HTML { return r.markup }

// Kind describes the route for listings: "page", "generated", or the
// prebuilt kind.
func (r *Route) Kind() string {
	switch {
	case r.Generated:
		return "generated"
	case r.Prebuilt != NotPrebuilt:
		return r.Prebuilt.String()
	}
	return "page"
}

// linked reports whether the route appears in header links. The homepage
// and the not-found page never do.
func (r *Route) linked() bool {
	return r.Prebuilt == NotPrebuilt && r.URL != HomeURL && r.URL != NotFoundURL
}

// App is an assembled dashboard. It is immutable and safe for concurrent
// use.
type App struct {
	title       string
	theme       theme.Theme
	stylesheets []string
	routes      []*Route
	index       map[string]*Route
	notFound    *Route
	registry    *binding.Registry
}

// Assemble builds the dashboard declared by d. Every page is checked;
// all problems are reported together.
func Assemble(d Dashboard) (*App, error) {
	th, err := theme.Lookup(d.Template)
	if err != nil {
		return nil, err
	}
	app := &App{
		title:       d.Title,
		theme:       th,
		stylesheets: append([]string(nil), d.Stylesheets...),
		index:       make(map[string]*Route),
		registry:    binding.NewRegistry(),
	}

	var errs *multierror.Error
	for i, p := range d.Pages {
		r, err := app.build(p)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("page %d (%s): %w", i, p.URL, err))
			continue
		}
		if _, dup := app.index[r.URL]; dup {
			errs = multierror.Append(errs, dasherr.Configf("page", "url", r.URL, "declared more than once"))
			continue
		}
		app.add(r)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	if th.Builtin {
		app.generate()
	}

	for _, r := range app.routes {
		if r.markup, err = app.render(d, r); err != nil {
			return nil, fmt.Errorf("render %s: %w", r.URL, err)
		}
		for _, b := range r.Bindings {
			if err := app.registry.RegisterBinding(b); err != nil {
				return nil, err
			}
		}
	}
	if err := app.registry.Register(binding.Callback{
		Output: RoutingOutput,
		Inputs: []binding.Dependency{RoutingInput},
		Fn:     app.routing,
	}); err != nil {
		return nil, err
	}
	app.registry.Freeze()

	slog.Debug("dashboard assembled",
		"template", th.Name,
		"pages", len(app.routes),
		"callbacks", len(app.registry.Callbacks()))
	return app, nil
}

// build constructs the filters, charts and bindings of one page.
func (a *App) build(p Page) (*Route, error) {
	pre, err := ParsePrebuilt(p.Prebuilt)
	if err != nil {
		return nil, err
	}
	url := p.URL
	switch {
	case url == "" && pre == Homepage:
		url = HomeURL
	case url == "" && pre == NotFound:
		url = NotFoundURL
	case url == "" || url[0] != '/':
		return nil, dasherr.Configf("page", "url", p.URL, "must start with /")
	}
	if pre == Homepage && url != HomeURL {
		return nil, dasherr.Configf("page", "url", url, "the homepage is served at %s", HomeURL)
	}

	r := &Route{URL: url, Name: p.Name, Prebuilt: pre, description: p.Description}
	if r.Name == "" {
		r.Name = url
	}
	if pre != NotPrebuilt {
		if len(p.Filters) > 0 || len(p.Charts) > 0 {
			return nil, dasherr.Configf("page", "prebuilt", pre, "prebuilt pages take no filters or charts")
		}
		return r, nil
	}
	if p.Table == nil && (len(p.Filters) > 0 || len(p.Charts) > 0) {
		return nil, dasherr.Configf("page", "table", nil, "filters and charts need a table")
	}

	for i, fd := range p.Filters {
		f, err := filter.New(ident.New(url, "filter", strconv.Itoa(i), fd.Column), fd, p.Table)
		if err != nil {
			return nil, fmt.Errorf("filter %d: %w", i, err)
		}
		r.Filters = append(r.Filters, f)
	}
	for i, cd := range p.Charts {
		c, err := chart.New(ident.New(url, "chart", strconv.Itoa(i), cd.Kind), cd, p.Table)
		if err != nil {
			return nil, fmt.Errorf("chart %d: %w", i, err)
		}
		r.Charts = append(r.Charts, c)
		r.Bindings = append(r.Bindings, binding.New(p.Table, r.Filters, c, a.theme.Chart))
	}
	return r, nil
}

func (a *App) add(r *Route) {
	a.routes = append(a.routes, r)
	a.index[r.URL] = r
	if (r.Prebuilt == NotFound || r.URL == NotFoundURL) && a.notFound == nil {
		a.notFound = r
	}
}

// generate appends the homepage and not-found page when none was declared.
// They go after the declared pages so header links keep declaration order.
func (a *App) generate() {
	var home, missing bool
	for _, r := range a.routes {
		home = home || r.Prebuilt == Homepage
		missing = missing || r.Prebuilt == NotFound
	}
	if _, taken := a.index[HomeURL]; !home && !taken {
		a.add(&Route{URL: HomeURL, Name: "Home", Prebuilt: Homepage, Generated: true})
	}
	if _, taken := a.index[NotFoundURL]; !missing && !taken {
		a.add(&Route{URL: NotFoundURL, Name: "Not found", Prebuilt: NotFound, Generated: true})
	}
}

// routing is the page-routing callback.
func (a *App) routing(_ context.Context, values []any) (any, error) {
	path, _ := values[0].(string)
	html, _ := a.Route(path)
	return html, nil
}

// Route returns the markup served at path. Paths match exactly. On a miss
// it returns the not-found page, or a plain message when there is none,
// and found is false.
func (a *App) Route(path string) (html template.HTML, found bool) {
	if r, ok := a.index[path]; ok {
		return r.markup, true
	}
	if a.notFound != nil {
		return a.notFound.markup, false
	}
	return fallback(path), false
}

// Lookup returns the route registered at path.
func (a *App) Lookup(path string) (*Route, bool) {
	r, ok := a.index[path]
	return r, ok
}

// Routes returns the routing table in order: declared pages first, then
// generated ones.
func (a *App) Routes() []*Route {
	return append([]*Route(nil), a.routes...)
}

// Registry returns the frozen callback registry.
func (a *App) Registry() *binding.Registry { return a.registry }

// Theme returns the dashboard's theme.
func (a *App) Theme() theme.Theme { return a.theme }

// Title returns the dashboard title.
func (a *App) Title() string { return a.title }

// Document returns the page shell for path with the routed content in
// place. found is false when the path is not in the routing table.
func (a *App) Document(path string) (doc *ui.Document, found bool) {
	html, found := a.Route(path)
	return &ui.Document{
		Title:       a.title,
		Path:        path,
		Stylesheets: a.stylesheets,
		Content:     html,
	}, found
}

func fallback(path string) template.HTML {
	html, err := ui.Render(ui.Div("", ui.Heading(1, "", "404"), ui.Paragraph("", "No page at "+path+".")))
	if err != nil {
		return template.HTML(template.HTMLEscapeString("404: no page at " + path))
	}
	return html
}
