package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/davetashner/turbodash/internal/server"
)

func TestMerge_CLIOverridesFile(t *testing.T) {
	fileCfg := &Config{Server: ServerConfig{
		Addr:            "0.0.0.0:80",
		AllowedOrigins:  []string{"https://a.example"},
		ShutdownTimeout: "30s",
	}}
	cliOpts := server.Options{
		Addr:            "127.0.0.1:9000",
		AllowedOrigins:  []string{"https://b.example"},
		ShutdownTimeout: time.Second,
	}

	result := Merge(fileCfg, cliOpts)
	assert.Equal(t, "127.0.0.1:9000", result.Addr)
	assert.Equal(t, []string{"https://b.example"}, result.AllowedOrigins)
	assert.Equal(t, time.Second, result.ShutdownTimeout)
}

func TestMerge_FileFillsInDefaults(t *testing.T) {
	fileCfg := &Config{Server: ServerConfig{
		Addr:            "0.0.0.0:80",
		AllowedOrigins:  []string{"https://a.example"},
		ShutdownTimeout: "30s",
	}}

	result := Merge(fileCfg, server.Options{})
	assert.Equal(t, "0.0.0.0:80", result.Addr)
	assert.Equal(t, []string{"https://a.example"}, result.AllowedOrigins)
	assert.Equal(t, 30*time.Second, result.ShutdownTimeout)
}

func TestMerge_EmptyFile(t *testing.T) {
	result := Merge(&Config{}, server.Options{Addr: ":1"})
	assert.Equal(t, server.Options{Addr: ":1"}, result)
}

func TestDefaults(t *testing.T) {
	global := &Config{
		Template:    "turbo-dark",
		Logo:        "/logo.png",
		Stylesheets: []string{"https://cdn.example/site.css"},
		Server:      ServerConfig{Addr: ":9000"},
	}

	got := Defaults(&Config{Title: "Mine"}, global)
	assert.Equal(t, "Mine", got.Title)
	assert.Equal(t, "turbo-dark", got.Template)
	assert.Equal(t, "/logo.png", got.Logo)
	assert.Equal(t, ":9000", got.Server.Addr)

	got = Defaults(&Config{Template: "default"}, global)
	assert.Equal(t, "default", got.Template, "declared values win")
}
