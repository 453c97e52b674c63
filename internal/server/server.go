// Copyright 2026 The Turbodash Authors
// SPDX-License-Identifier: MIT

// Package server serves an assembled dashboard over HTTP.
//
// Every path outside the reserved endpoints returns the page shell with
// the routed page in place. The browser runtime then lists the callbacks
// from /_dash-dependencies and posts input changes to
// /_dash-update-component.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/davetashner/turbodash/internal/dashboard"
	"github.com/davetashner/turbodash/internal/ui"
)

// Reserved endpoints.
const (
	DependenciesPath = "/_dash-dependencies"
	UpdatePath       = "/_dash-update-component"
	HealthPath       = "/healthz"
	StaticPrefix     = "/static"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8050"

// Options configure a Server.
type Options struct {
	Addr            string
	AllowedOrigins  []string
	ShutdownTimeout time.Duration

	// MaxBodyBytes bounds the size of an update request.
	MaxBodyBytes int64
}

func (o Options) withDefaults() Options {
	if o.Addr == "" {
		o.Addr = DefaultAddr
	}
	if o.ShutdownTimeout <= 0 {
		o.ShutdownTimeout = 10 * time.Second
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 1 << 20
	}
	return o
}

// Server is the HTTP host of one dashboard.
type Server struct {
	app    *dashboard.App
	opts   Options
	router chi.Router
}

// New returns a server for app.
func New(app *dashboard.App, opts Options) *Server {
	s := &Server{app: app, opts: opts.withDefaults()}
	s.router = s.routes()
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&requestLogger{}))
	r.Use(middleware.Recoverer)
	if len(s.opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.opts.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Get(HealthPath, s.health)
	r.Get(DependenciesPath, s.dependencies)
	r.Post(UpdatePath, s.update)
	r.Handle(StaticPrefix+"/*", http.StripPrefix(StaticPrefix, http.FileServer(http.FS(ui.Static()))))
	r.Get("/*", s.page)
	return r
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		slog.Info("serving dashboard", "addr", ln.Addr().String(), "pages", len(s.app.Routes()))
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.ShutdownTimeout)
	defer cancel()
	slog.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
