// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/turbodash/internal/testable"
)

// withMockFS swaps cmdFS with the given mock and restores it on test cleanup.
func withMockFS(t *testing.T, mock *testable.MockFileSystem) {
	t.Helper()
	orig := cmdFS
	cmdFS = mock
	t.Cleanup(func() { cmdFS = orig })
}

func TestCommands_AbsError(t *testing.T) {
	withMockFS(t, &testable.MockFileSystem{
		AbsFn: func(string) (string, error) { return "", errors.New("abs failed") },
	})

	for _, args := range [][]string{
		{"validate", "dashboard.yaml"},
		{"routes", "dashboard.yaml"},
		{"serve", "dashboard.yaml"},
		{"init", "dashboard.yaml"},
	} {
		t.Run(args[0], func(t *testing.T) {
			cmd, _, _ := newTestCmd()
			cmd.SetArgs(args)
			err := cmd.Execute()
			require.Error(t, err)

			var ece *exitCodeError
			require.True(t, errors.As(err, &ece))
			assert.Equal(t, ExitInvalidArgs, ece.ExitCode())
			assert.Contains(t, ece.Error(), "cannot resolve path")
		})
	}
}

func TestRunValidate_StatError(t *testing.T) {
	withMockFS(t, &testable.MockFileSystem{
		StatFn: func(string) (os.FileInfo, error) { return nil, os.ErrPermission },
	})

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"validate", "dashboard.yaml"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestRunInit_WriteError(t *testing.T) {
	withMockFS(t, &testable.MockFileSystem{
		WriteFileFn: func(string, []byte, os.FileMode) error { return os.ErrPermission },
	})

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"init", filepath.Join(t.TempDir(), "dashboard.yaml")})
	err := cmd.Execute()
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Contains(t, ece.Error(), "cannot write")
}

func TestRunInit_MkdirError(t *testing.T) {
	var wrote bool
	withMockFS(t, &testable.MockFileSystem{
		MkdirAllFn:  func(string, os.FileMode) error { return os.ErrPermission },
		WriteFileFn: func(string, []byte, os.FileMode) error { wrote = true; return nil },
	})

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"init", filepath.Join(t.TempDir(), "sub", "dashboard.yaml")})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot create directory")
	assert.False(t, wrote)
}
