package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/davetashner/turbodash/internal/config"
	"github.com/davetashner/turbodash/internal/server"
)

// Serve-specific flag values.
var (
	serveAddr            string
	serveAllowedOrigins  []string
	serveTemplate        string
	serveShutdownTimeout time.Duration
)

// serveCmd runs the dashboard web server.
var serveCmd = &cobra.Command{
	Use:   "serve <file>",
	Short: "Serve a dashboard over HTTP",
	Long: `Load a declaration file, assemble the dashboard and serve it until
interrupted.

Flags override the declaration's server section, which in turn overrides
the global config (~/.config/turbodash/config.yaml). Without any of them the
dashboard listens on ` + server.DefaultAddr + `.

Examples:
  turbodash serve dashboard.yaml
  turbodash serve dashboard.toml --addr :8080 --template turbo-dark`,
	Args: cobra.ExactArgs(1),
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default "+server.DefaultAddr+")")
	serveCmd.Flags().StringSliceVar(&serveAllowedOrigins, "allowed-origin", nil, "CORS origin allowed to call the dashboard (repeatable)")
	serveCmd.Flags().StringVar(&serveTemplate, "template", "", "override the declared template")
	serveCmd.Flags().DurationVar(&serveShutdownTimeout, "shutdown-timeout", 0, "grace period for in-flight requests on shutdown (default 10s)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l, err := load(ctx, args[0], serveTemplate)
	if err != nil {
		return err
	}

	opts := config.Merge(l.cfg, server.Options{
		Addr:            serveAddr,
		AllowedOrigins:  serveAllowedOrigins,
		ShutdownTimeout: serveShutdownTimeout,
	})
	if err := server.New(l.app, opts).Run(ctx); err != nil {
		return exitError(ExitRuntimeFailure, "turbodash: serve failed (%v)", err)
	}
	return nil
}
