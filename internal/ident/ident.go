// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package ident generates deterministic component identities.
//
// An identity is derived from its scope (page URL, component role, position,
// source column) so the same declaration always yields the same id across
// runs, while two components in different scopes never collide.
package ident

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// namespace roots every identity so ids never collide with other v5 UUIDs.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("turbodash.component"))

// hashLen is the number of hex characters kept from the UUID.
const hashLen = 10

// New returns an identity for the given scope parts. The id is readable
// (a slug of the role) followed by a hash of the full scope:
//
//	New("/app1", "filter", "0", "country") // "filter-country-3f2a9c81d0"
func New(parts ...string) string {
	scope := strings.Join(parts, "\x1f")
	sum := uuid.NewSHA1(namespace, []byte(scope))
	hash := strings.ReplaceAll(sum.String(), "-", "")[:hashLen]

	prefix := slug(readable(parts))
	if prefix == "" {
		return "td-" + hash
	}
	return prefix + "-" + hash
}

// readable picks the human meaningful parts of a scope: the role (second
// part, after the page) and the trailing column or argument name.
func readable(parts []string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[1]
	default:
		return parts[1] + "-" + parts[len(parts)-1]
	}
}

// slug lowercases s and replaces anything outside [a-z0-9] with single dashes.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}
