// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package ui renders the component tree a dashboard page is made of.
//
// Layout nodes (Element, Text, Raw) write themselves directly. Controls are
// rendered from embedded html/template definitions and carry data-td-id and
// data-td-prop attributes, one pair per input slot, which the browser
// runtime in static/turbodash.js reads when an input changes.
package ui

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
)

// Node is one element of a page tree.
type Node interface {
	Render(w io.Writer) error
}

// Render renders n to a string.
func Render(n Node) (template.HTML, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by escaping renderers
}

// Attr is one HTML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a generic HTML element.
type Element struct {
	Tag      string
	ID       string
	Class    string
	Attrs    []Attr
	Children []Node
}

// voidTags never have children or a closing tag.
var voidTags = map[string]bool{"img": true, "br": true, "hr": true, "input": true, "meta": true, "link": true}

// Render writes the element and its children.
func (e *Element) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(e.Tag)
	writeAttr(&b, "id", e.ID)
	writeAttr(&b, "class", e.Class)
	for _, a := range e.Attrs {
		writeAttr(&b, a.Name, a.Value)
	}
	b.WriteString(">")
	if _, err := io.WriteString(w, b.String()); err != nil {
		return err
	}
	if voidTags[e.Tag] {
		return nil
	}
	for _, c := range e.Children {
		if c == nil {
			continue
		}
		if err := c.Render(w); err != nil {
			return fmt.Errorf("render <%s>: %w", e.Tag, err)
		}
	}
	_, err := io.WriteString(w, "</"+e.Tag+">")
	return err
}

func writeAttr(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(name)
	b.WriteString(`="`)
	b.WriteString(template.HTMLEscapeString(value))
	b.WriteString(`"`)
}

// With appends an attribute and returns e.
func (e *Element) With(name, value string) *Element {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// Text is escaped character data.
type Text string

// Render writes the escaped text.
func (t Text) Render(w io.Writer) error {
	_, err := io.WriteString(w, template.HTMLEscapeString(string(t)))
	return err
}

// Raw is trusted, already-sanitized markup.
type Raw template.HTML

// Render writes the markup unchanged.
func (r Raw) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(r))
	return err
}

// Group renders nodes one after another without a wrapper.
type Group []Node

// Render writes each node in order.
func (g Group) Render(w io.Writer) error {
	for _, n := range g {
		if n == nil {
			continue
		}
		if err := n.Render(w); err != nil {
			return err
		}
	}
	return nil
}

// Div builds a <div> with the given class.
func Div(class string, children ...Node) *Element {
	return &Element{Tag: "div", Class: class, Children: children}
}

// Heading builds an <h1>..<h6> element holding text.
func Heading(level int, class, text string) *Element {
	if level < 1 || level > 6 {
		level = 1
	}
	return &Element{Tag: fmt.Sprintf("h%d", level), Class: class, Children: []Node{Text(text)}}
}

// Label builds a <label> for the control with the given id.
func Label(class, forID, text string) *Element {
	return (&Element{Tag: "label", Class: class, Children: []Node{Text(text)}}).With("for", forID)
}

// Link builds an anchor.
func Link(class, href, text string) *Element {
	return (&Element{Tag: "a", Class: class, Children: []Node{Text(text)}}).With("href", href)
}

// Image builds an <img>.
func Image(class, src, alt string) *Element {
	return (&Element{Tag: "img", Class: class}).With("src", src).With("alt", alt)
}

// Paragraph builds a <p> holding text.
func Paragraph(class, text string) *Element {
	return &Element{Tag: "p", Class: class, Children: []Node{Text(text)}}
}
