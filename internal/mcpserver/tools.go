package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/turbodash/internal/binding"
	"github.com/davetashner/turbodash/internal/dashboard"
)

// ListPagesInput is the input schema for the list_pages tool.
type ListPagesInput struct{}

// RouteInput is the input schema for the route tool.
type RouteInput struct {
	Path string `json:"path" jsonschema:"URL path to route, e.g. /app1 (defaults to /)"`
}

// RenderChartInput is the input schema for the render_chart tool.
type RenderChartInput struct {
	Output string       `json:"output" jsonschema:"Output to recompute as <id>.<property>, e.g. chart-line-1a2b3c.figure"`
	Inputs []InputValue `json:"inputs,omitempty" jsonschema:"Current value of every input of the callback, in the order list_pages reports them"`
}

// InputValue is one input value passed to the render_chart tool.
type InputValue struct {
	ID       string `json:"id" jsonschema:"Component id"`
	Property string `json:"property" jsonschema:"Component property, e.g. value"`
	Value    any    `json:"value,omitempty" jsonschema:"Current value; omit for an empty selection"`
}

// pageInfo describes one route for list_pages.
type pageInfo struct {
	URL     string       `json:"url"`
	Name    string       `json:"name"`
	Kind    string       `json:"kind"`
	Filters []filterInfo `json:"filters,omitempty"`
	Charts  []chartInfo  `json:"charts,omitempty"`
}

type filterInfo struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Column string `json:"column"`
	Label  string `json:"label,omitempty"`
}

type chartInfo struct {
	ID     string               `json:"id"`
	Kind   string               `json:"kind"`
	Title  string               `json:"title,omitempty"`
	Output string               `json:"output"`
	Inputs []binding.Dependency `json:"inputs"`
}

type routeResult struct {
	Path  string `json:"path"`
	Found bool   `json:"found"`
	HTML  string `json:"html"`
}

// tools holds the dashboard the tool handlers serve.
type tools struct {
	app *dashboard.App
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

func readOnly() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:    true,
		DestructiveHint: boolPtr(false),
		OpenWorldHint:   boolPtr(false),
	}
}

// registerTools adds the dashboard tools to the MCP server.
func registerTools(server *mcp.Server, t *tools) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_pages",
		Description: "List the dashboard's pages in routing order with their filters, charts, and the inputs each chart depends on.",
		Annotations: readOnly(),
	}, t.handleListPages)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "route",
		Description: "Resolve a URL path to the page content the dashboard would show for it. Unknown paths return the not-found page.",
		Annotations: readOnly(),
	}, t.handleRoute)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render_chart",
		Description: "Recompute one output from input values, exactly as the browser would. Chart outputs return a Plotly figure; the routing output returns page HTML.",
		Annotations: readOnly(),
	}, t.handleRenderChart)
}

func (t *tools) handleListPages(_ context.Context, _ *mcp.CallToolRequest, _ ListPagesInput) (*mcp.CallToolResult, any, error) {
	routes := t.app.Routes()
	pages := make([]pageInfo, 0, len(routes))
	for _, r := range routes {
		p := pageInfo{URL: r.URL, Name: r.Name, Kind: r.Kind()}
		for _, f := range r.Filters {
			p.Filters = append(p.Filters, filterInfo{ID: f.ID, Kind: f.Kind.String(), Column: f.Column, Label: f.Label})
		}
		for i, b := range r.Bindings {
			c := r.Charts[i]
			p.Charts = append(p.Charts, chartInfo{
				ID:     c.ID,
				Kind:   c.Kind.String(),
				Title:  c.Title,
				Output: b.Output().String(),
				Inputs: b.Inputs(),
			})
		}
		pages = append(pages, p)
	}
	return jsonResult(pages)
}

func (t *tools) handleRoute(_ context.Context, _ *mcp.CallToolRequest, input RouteInput) (*mcp.CallToolResult, any, error) {
	path := strings.TrimSpace(input.Path)
	if path == "" {
		path = dashboard.HomeURL
	}
	if !strings.HasPrefix(path, "/") {
		return nil, nil, fmt.Errorf("path must start with /, got %q", input.Path)
	}
	html, found := t.app.Route(path)
	return jsonResult(routeResult{Path: path, Found: found, HTML: string(html)})
}

func (t *tools) handleRenderChart(ctx context.Context, _ *mcp.CallToolRequest, input RenderChartInput) (*mcp.CallToolResult, any, error) {
	i := strings.LastIndexByte(input.Output, '.')
	if i <= 0 || i == len(input.Output)-1 {
		return nil, nil, fmt.Errorf("output must be <id>.<property>, got %q", input.Output)
	}
	output := binding.Dependency{ID: input.Output[:i], Property: input.Output[i+1:]}

	values := make([]binding.Value, len(input.Inputs))
	for j, in := range input.Inputs {
		values[j] = binding.Value{
			Dependency: binding.Dependency{ID: in.ID, Property: in.Property},
			Value:      in.Value,
		}
	}

	v, err := t.app.Registry().DispatchNamed(ctx, output, values)
	if err != nil {
		return nil, nil, fmt.Errorf("update %s: %w", output, err)
	}
	return jsonResult(map[string]map[string]any{output.ID: {output.Property: v}})
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("encoding result: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}
