// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes an assembled dashboard as tools: agents can list its
// pages, route a path, and run its callbacks without a browser.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/turbodash/internal/dashboard"
)

// New creates a new MCP server with the dashboard tools registered.
func New(version string, app *dashboard.App) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "turbodash",
		Title:   "Turbodash: " + app.Title(),
		Version: version,
	}, nil)

	registerTools(server, &tools{app: app})
	return server
}

// Run creates an MCP server and runs it on the given transport.
// It blocks until the client disconnects or the context is cancelled.
func Run(ctx context.Context, version string, app *dashboard.App, transport mcp.Transport) error {
	return New(version, app).Run(ctx, transport)
}
