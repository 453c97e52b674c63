// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package richtext turns markdown page descriptions into sanitized HTML.
package richtext

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	once   sync.Once
	md     goldmark.Markdown
	policy *bluemonday.Policy
)

func setup() {
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(html.WithHardWraps()),
	)
	policy = bluemonday.UGCPolicy()
	policy.AddTargetBlankToFullyQualifiedLinks(true)
}

// Markdown renders src and strips anything a description must not carry:
// scripts, event handlers, and inline frames.
func Markdown(src string) (template.HTML, error) {
	once.Do(setup)
	if src == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes())), nil //nolint:gosec // sanitized above
}
