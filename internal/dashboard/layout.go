package dashboard

import (
	"html/template"

	"github.com/davetashner/turbodash/internal/chart"
	"github.com/davetashner/turbodash/internal/filter"
	"github.com/davetashner/turbodash/internal/richtext"
	"github.com/davetashner/turbodash/internal/ui"
)

// render builds the markup of one route. Built-in themes put a header with
// the page links above every page.
func (a *App) render(d Dashboard, r *Route) (template.HTML, error) {
	var body ui.Node
	var err error
	switch r.Prebuilt {
	case Homepage:
		body, err = a.home(d, r)
	case NotFound:
		body, err = a.missing(d, r)
	default:
		body, err = a.page(r)
	}
	if err != nil {
		return "", err
	}
	if !a.theme.Builtin {
		return ui.Render(body)
	}
	return ui.Render(ui.Group{a.header(d, r), body})
}

func (a *App) header(d Dashboard, current *Route) ui.Node {
	c := a.theme.Classes
	links := ui.Div(c.HeaderLinks)
	for _, r := range a.routes {
		if !r.linked() {
			continue
		}
		link := ui.Link(c.HeaderLink, r.URL, r.Name)
		if r == current {
			link.Class = c.HeaderLinkCurrent
			link.With("aria-current", "page")
		}
		links.Children = append(links.Children, link)
	}

	logo := (&ui.Element{Tag: "a", Class: c.Logo}).With("href", HomeURL)
	if d.Logo != "" {
		logo.Children = append(logo.Children, ui.Image("", d.Logo, d.Title))
	} else if d.Title != "" {
		logo.Children = append(logo.Children, ui.Text(d.Title))
	}
	return ui.Div(c.Header, logo, links)
}

// page lays out the menu filters beside the charts.
func (a *App) page(r *Route) (ui.Node, error) {
	c := a.theme.Classes
	menu := ui.Div(c.Menu)
	fs := filter.Style{Wrapper: c.MenuFilterWrapper, Label: c.MenuFilterLabel, Control: c.MenuFilter}
	for _, f := range r.Filters {
		menu.Children = append(menu.Children, f.Markup(fs))
	}

	content := ui.Div(c.Content)
	if r.description != "" {
		intro, err := richtext.Markdown(r.description)
		if err != nil {
			return nil, err
		}
		content.Children = append(content.Children, ui.Raw(intro))
	}
	cs := chart.Style{
		Wrapper:       c.OutputAndFilterWrapper,
		Label:         c.OutputLabel,
		OutputWrapper: c.OutputWrapper,
		Output:        c.Output,
		Input:         filter.Style{Wrapper: c.ContentFilterWrapper, Label: c.ContentFilterLabel, Control: c.ContentFilter},
	}
	for _, ch := range r.Charts {
		content.Children = append(content.Children, ch.Markup(cs))
	}

	if !a.theme.Builtin {
		menu.ID, content.ID = "input_div", "output_div"
		main := ui.Div("", menu, content)
		main.ID = "main_div"
		return main, nil
	}
	return ui.Div(c.MenuAndContent, menu, content), nil
}

// home shows the home image, the page description and a link to every page.
func (a *App) home(d Dashboard, r *Route) (ui.Node, error) {
	c := a.theme.Classes
	home := ui.Div(c.Home)
	if d.Title != "" {
		home.Children = append(home.Children, ui.Heading(1, "", d.Title))
	}
	if d.HomeImage != "" {
		home.Children = append(home.Children, ui.Image("", d.HomeImage, d.Title))
	}
	if r.description != "" {
		intro, err := richtext.Markdown(r.description)
		if err != nil {
			return nil, err
		}
		home.Children = append(home.Children, ui.Raw(intro))
	}
	links := ui.Div("home-links")
	for _, p := range a.routes {
		if p.linked() {
			links.Children = append(links.Children, ui.Link(c.HeaderLink, p.URL, p.Name))
		}
	}
	home.Children = append(home.Children, links)
	return home, nil
}

func (a *App) missing(d Dashboard, r *Route) (ui.Node, error) {
	nf := ui.Div(a.theme.Classes.NotFound)
	if d.NotFoundImage != "" {
		nf.Children = append(nf.Children, ui.Image("", d.NotFoundImage, "Page not found"))
	}
	nf.Children = append(nf.Children, ui.Heading(1, "", "Page not found"))
	if r.description != "" {
		msg, err := richtext.Markdown(r.description)
		if err != nil {
			return nil, err
		}
		nf.Children = append(nf.Children, ui.Raw(msg))
	} else {
		nf.Children = append(nf.Children, ui.Paragraph("", "The page you asked for does not exist."))
	}
	nf.Children = append(nf.Children, ui.Link("", HomeURL, "Back to the homepage"))
	return nf, nil
}
