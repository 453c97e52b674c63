// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package dashboard assembles page declarations into one routable
// dashboard.
//
// Assembly runs once. It builds every filter and chart, registers one
// binding per chart plus the page-routing callback, renders each page's
// markup and freezes the registry. The resulting App is read-only.
package dashboard

import (
	"strings"

	"github.com/davetashner/turbodash/internal/chart"
	"github.com/davetashner/turbodash/internal/dasherr"
	"github.com/davetashner/turbodash/internal/filter"
	"github.com/davetashner/turbodash/internal/table"
)

// Reserved paths.
const (
	HomeURL     = "/"
	NotFoundURL = "/404"
)

// Dashboard is the declaration of a whole dashboard.
type Dashboard struct {
	Title         string
	Template      string
	Logo          string
	HomeImage     string
	NotFoundImage string
	Stylesheets   []string
	Pages         []Page
}

// Page is the declaration of one page.
type Page struct {
	URL         string
	Name        string
	Table       *table.Table
	Filters     []filter.Decl
	Charts      []chart.Decl
	Description string // markdown

	// Prebuilt names a generated page layout: "homepage" or "not-found".
	Prebuilt string
}

// Prebuilt identifies the generated page layouts.
type Prebuilt int

const (
	NotPrebuilt Prebuilt = iota
	Homepage
	NotFound
)

func (p Prebuilt) String() string {
	switch p {
	case Homepage:
		return "homepage"
	case NotFound:
		return "not-found"
	}
	return ""
}

// ParsePrebuilt parses a prebuilt page name. The empty string is a regular
// page.
func ParsePrebuilt(s string) (Prebuilt, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return NotPrebuilt, nil
	case "homepage", "home":
		return Homepage, nil
	case "not-found", "notfound", "404":
		return NotFound, nil
	}
	return NotPrebuilt, dasherr.Configf("page", "prebuilt", s, "unknown prebuilt page (must be homepage or not-found)")
}
