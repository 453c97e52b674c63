// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package summary

import (
	"github.com/fatih/color"
)

// Shared color printers.
var (
	colorRed    = color.New(color.FgRed)
	colorYellow = color.New(color.FgYellow)
	colorGreen  = color.New(color.FgGreen)
	colorCyan   = color.New(color.FgCyan)
	colorBold   = color.New(color.Bold)
)

// ColorPageKind colors route kinds: generated pages cyan, prebuilt ones
// yellow.
func ColorPageKind(val string) string {
	switch val {
	case kindGenerated:
		return colorCyan.Sprint(val)
	case kindHomepage, kindNotFound:
		return colorYellow.Sprint(val)
	default:
		return val
	}
}

// ColorStatus colors ok/error labels.
func ColorStatus(val string) string {
	switch val {
	case statusOK:
		return colorGreen.Sprint(val)
	case statusError:
		return colorRed.Sprint(val)
	default:
		return val
	}
}

// SectionTitle renders a bold section title.
func SectionTitle(title string) string {
	return colorBold.Sprint(title)
}
