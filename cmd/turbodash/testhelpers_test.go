// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// gapminderDeclaration is a small valid declaration over the bundled
// gapminder sample.
const gapminderDeclaration = `
title: Gapminder
template: turbo
datasets:
  gapminder:
    format: sample
    path: gapminder
pages:
  - url: /life
    name: Life expectancy
    dataset: gapminder
    filters:
      - kind: Dropdown
        column: continent
    charts:
      - kind: line
        x: year
        y: lifeExp
        color: country
        inputs: [y]
`

// newTestCmd returns rootCmd with its output redirected to buffers. Flags
// and per-command contexts left over from earlier tests are reset.
func newTestCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	resetFlags(rootCmd)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd, stdout, stderr
}

// resetFlags restores every flag of cmd and its subcommands to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Changed = false
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
			return
		}
		_ = f.Value.Set(f.DefValue)
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	cmd.SetContext(context.Background())
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// writeTestFile creates a file (and any necessary parent directories) under dir.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o750); err != nil {
		t.Fatalf("mkdir %s: %v", parent, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// isolateGlobalConfig points the global config at an empty directory.
func isolateGlobalConfig(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}
