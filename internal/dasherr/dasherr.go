// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package dasherr defines the error taxonomy shared by the dashboard
// packages: configuration errors raised while a dashboard is being built and
// contract mismatches raised when a reactive update arrives with the wrong
// shape.
package dasherr

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is matching.
var (
	// ErrConfiguration matches every *ConfigError.
	ErrConfiguration = errors.New("configuration error")

	// ErrContractMismatch matches every *ContractMismatchError.
	ErrContractMismatch = errors.New("contract mismatch")
)

// ConfigError reports an invalid declaration: an unknown filter or chart
// kind, a missing column, a malformed prebuilt page name. It is fatal and
// surfaces to whoever assembles the dashboard.
type ConfigError struct {
	Component string // e.g. "filter", "chart", "page"
	Field     string // e.g. "kind", "column"
	Value     any    // offending value, if any
	Reason    string
}

// Configf builds a ConfigError with a formatted reason.
func Configf(component, field string, value any, format string, args ...any) *ConfigError {
	return &ConfigError{
		Component: component,
		Field:     field,
		Value:     value,
		Reason:    fmt.Sprintf(format, args...),
	}
}

func (e *ConfigError) Error() string {
	msg := e.Component
	if e.Field != "" {
		msg += "." + e.Field
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" %q", fmt.Sprint(e.Value))
	}
	return msg + ": " + e.Reason
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// ContractMismatchError reports an update whose positional values do not
// line up with the inputs declared for its output. It means markup and
// callback wiring drifted apart; it is never retried.
type ContractMismatchError struct {
	Output string
	Want   int
	Got    int
	Detail string
}

func (e *ContractMismatchError) Error() string {
	msg := fmt.Sprintf("output %s: expected %d input values, got %d", e.Output, e.Want, e.Got)
	if e.Detail != "" {
		msg = fmt.Sprintf("output %s: %s", e.Output, e.Detail)
	}
	return msg
}

// Is reports whether target is ErrContractMismatch.
func (e *ContractMismatchError) Is(target error) bool {
	return target == ErrContractMismatch
}
