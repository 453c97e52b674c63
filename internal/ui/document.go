package ui

import (
	"html/template"
	"io"
)

// DefaultPlotlyURL is the plotly.js bundle charts are drawn with.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Document is the page shell served for every route. Content is the
// markup of the routed page; it is replaced in place as the user navigates.
type Document struct {
	Title        string
	Path         string
	Stylesheets  []string
	StaticPrefix string
	PlotlyURL    string
	BodyClass    string
	Content      template.HTML
}

// Render writes the full HTML document.
func (d *Document) Render(w io.Writer) error {
	view := *d
	if view.StaticPrefix == "" {
		view.StaticPrefix = "/static"
	}
	if view.PlotlyURL == "" {
		view.PlotlyURL = DefaultPlotlyURL
	}
	return execute(w, "document", &view)
}
