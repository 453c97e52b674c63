package config

import (
	"time"

	"github.com/davetashner/turbodash/internal/server"
)

// Merge combines the file's server settings with CLI-provided options.
// CLI values take precedence; zero-value CLI fields fall through to file
// config.
func Merge(fileCfg *Config, cliOpts server.Options) server.Options {
	result := cliOpts

	// Addr: CLI wins if set.
	if result.Addr == "" && fileCfg.Server.Addr != "" {
		result.Addr = fileCfg.Server.Addr
	}

	// AllowedOrigins: CLI wins if non-empty.
	if len(result.AllowedOrigins) == 0 && len(fileCfg.Server.AllowedOrigins) > 0 {
		result.AllowedOrigins = fileCfg.Server.AllowedOrigins
	}

	// ShutdownTimeout: CLI wins if non-zero. Validate rejects bad durations.
	if result.ShutdownTimeout == 0 && fileCfg.Server.ShutdownTimeout != "" {
		if d, err := time.ParseDuration(fileCfg.Server.ShutdownTimeout); err == nil {
			result.ShutdownTimeout = d
		}
	}

	return result
}

// Defaults fills unset presentation fields of cfg from global config.
// Values declared in cfg always win.
func Defaults(cfg, global *Config) *Config {
	result := *cfg
	if result.Template == "" {
		result.Template = global.Template
	}
	if result.Logo == "" {
		result.Logo = global.Logo
	}
	if len(result.Stylesheets) == 0 {
		result.Stylesheets = global.Stylesheets
	}
	if result.Server.Addr == "" {
		result.Server.Addr = global.Server.Addr
	}
	if len(result.Server.AllowedOrigins) == 0 {
		result.Server.AllowedOrigins = global.Server.AllowedOrigins
	}
	return &result
}
