package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davetashner/turbodash/internal/server"
)

func TestServeCmd_FlagsRegistered(t *testing.T) {
	for _, name := range []string{"addr", "allowed-origin", "template", "shutdown-timeout"} {
		assert.NotNil(t, serveCmd.Flags().Lookup(name), "flag --%s not registered", name)
	}
}

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestServeCmd_ServesUntilCanceled(t *testing.T) {
	isolateGlobalConfig(t)
	path := writeTestFile(t, t.TempDir(), "dashboard.yaml", gapminderDeclaration)
	addr := freeAddr(t)

	cmd, _, _ := newTestCmd()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serveCmd.SetContext(ctx)
	cmd.SetArgs([]string{"serve", path, "--addr", addr, "--quiet"})

	done := make(chan error, 1)
	go func() { done <- cmd.Execute() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/life")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 25*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop")
	}
}

func TestServeCmd_InvalidDeclaration(t *testing.T) {
	isolateGlobalConfig(t)
	path := writeTestFile(t, t.TempDir(), "dashboard.yaml", "title: Empty\n")

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"serve", path})
	err := cmd.Execute()
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitInvalidDeclaration, ece.ExitCode())
	assert.Contains(t, ece.Error(), "config validation failed")
}

func TestServeCmd_DatasetFailure(t *testing.T) {
	isolateGlobalConfig(t)
	path := writeTestFile(t, t.TempDir(), "dashboard.yaml", `
datasets:
  sales:
    path: missing.csv
pages:
  - url: /sales
    dataset: sales
    charts:
      - kind: bar
        x: region
        y: revenue
`)

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"serve", path})
	err := cmd.Execute()
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitRuntimeFailure, ece.ExitCode())
	assert.Contains(t, ece.Error(), "dataset sales")
}

func TestServeCmd_AddressInUse(t *testing.T) {
	isolateGlobalConfig(t)
	path := writeTestFile(t, t.TempDir(), "dashboard.yaml", gapminderDeclaration)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cmd, _, _ := newTestCmd()
	cmd.SetArgs([]string{"serve", path, "--addr", ln.Addr().String()})
	err = cmd.Execute()
	require.Error(t, err)

	var ece *exitCodeError
	require.True(t, errors.As(err, &ece))
	assert.Equal(t, ExitRuntimeFailure, ece.ExitCode())
	assert.Contains(t, ece.Error(), "serve failed")
}

func TestServeCmd_DefaultAddrInHelp(t *testing.T) {
	assert.Contains(t, serveCmd.Long, server.DefaultAddr)
}
