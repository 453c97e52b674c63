package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger writes one access log record per request to slog.
type requestLogger struct{}

func (l *requestLogger) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &requestEntry{logger: slog.Default().With(
		"component", "http",
		"request_id", middleware.GetReqID(r.Context()),
		"method", r.Method,
		"path", r.URL.Path,
		"remote", r.RemoteAddr,
	)}
}

type requestEntry struct {
	logger *slog.Logger
}

func (e *requestEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	level := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	e.logger.Log(context.Background(), level, "request",
		"status", status,
		"bytes", bytes,
		"elapsed", elapsed)
}

func (e *requestEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error("panic", "value", fmt.Sprint(v), "stack", string(stack))
}
