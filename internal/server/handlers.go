package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/davetashner/turbodash/internal/binding"
	"github.com/davetashner/turbodash/internal/dasherr"
)

// dependency is one callback as listed for the browser runtime.
type dependency struct {
	Output string               `json:"output"`
	Inputs []binding.Dependency `json:"inputs"`
}

// updateRequest asks for one output to be recomputed.
type updateRequest struct {
	Output string          `json:"output"`
	Inputs []binding.Value `json:"inputs"`
}

type updateResponse struct {
	Response map[string]map[string]any `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "pages": len(s.app.Routes())})
}

func (s *Server) dependencies(w http.ResponseWriter, _ *http.Request) {
	cbs := s.app.Registry().Callbacks()
	out := make([]dependency, len(cbs))
	for i, cb := range cbs {
		out[i] = dependency{Output: cb.Output.String(), Inputs: cb.Inputs}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}
	output, ok := parseOutput(req.Output)
	if !ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "output must be <id>.<property>, got " + req.Output})
		return
	}
	if req.Inputs == nil {
		req.Inputs = []binding.Value{}
	}

	value, err := s.app.Registry().DispatchNamed(r.Context(), output, req.Inputs)
	if err != nil {
		status, kind := classify(err)
		if status >= http.StatusInternalServerError {
			slog.Error("update failed", "output", req.Output, "error", err)
		} else {
			slog.Warn("update rejected", "output", req.Output, "error", err)
		}
		writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
		return
	}
	writeJSON(w, http.StatusOK, updateResponse{
		Response: map[string]map[string]any{output.ID: {output.Property: value}},
	})
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	doc, found := s.app.Document(r.URL.Path)
	doc.StaticPrefix = StaticPrefix

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		slog.Error("render page", "path", r.URL.Path, "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if !found {
		w.WriteHeader(http.StatusNotFound)
	}
	_, _ = w.Write(buf.Bytes())
}

// parseOutput splits "id.property". Properties never contain a dot; ids
// might.
func parseOutput(s string) (binding.Dependency, bool) {
	i := strings.LastIndexByte(s, '.')
	if i <= 0 || i == len(s)-1 {
		return binding.Dependency{}, false
	}
	return binding.Dependency{ID: s[:i], Property: s[i+1:]}, true
}

// classify maps an update error to a status code and error kind.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, binding.ErrUnknownOutput):
		return http.StatusNotFound, "unknown_output"
	case errors.Is(err, dasherr.ErrContractMismatch):
		return http.StatusBadRequest, "contract_mismatch"
	case errors.Is(err, dasherr.ErrConfiguration):
		return http.StatusBadRequest, "configuration"
	}
	return http.StatusInternalServerError, ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("write response", "error", err)
	}
}
