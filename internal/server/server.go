// Package server exposes searches and diagnoses over HTTP.
//
// The API mirrors the CLI: both call into the shared pipeline runner, so
// a layout reported over HTTP is identical to one printed in a terminal.
//
// Endpoints:
//
//	POST /api/search    {"inventory": {"s1": 2, "aR": 12}}
//	POST /api/diagnose  {"pieces": ["s2", "aR", "aR"]}
//	GET  /healthz
//
// Each response carries a run_id for log correlation.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	apperrors "github.com/trackloop/trackloop/pkg/errors"
	"github.com/trackloop/trackloop/pkg/pipeline"
	"github.com/trackloop/trackloop/pkg/report"
	"github.com/trackloop/trackloop/pkg/track"
)

// Server handles the HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server around a pipeline runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Handler builds the chi router with all routes and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/search", s.handleSearch)
		r.Post("/diagnose", s.handleDiagnose)
	})
	return r
}

// searchRequest is the body of POST /api/search.
type searchRequest struct {
	Inventory map[string]int `json:"inventory"`
	Refresh   bool           `json:"refresh,omitempty"`
}

// searchResponse is the body of a successful search.
type searchResponse struct {
	RunID    string          `json:"run_id"`
	Layouts  []report.Layout `json:"layouts"`
	Count    int             `json:"count"`
	CacheHit bool            `json:"cache_hit"`
}

// diagnoseRequest is the body of POST /api/diagnose.
type diagnoseRequest struct {
	Pieces []string `json:"pieces"`
}

// diagnoseResponse is the body of a successful diagnosis.
type diagnoseResponse struct {
	RunID string `json:"run_id"`
	report.Diagnosis
}

// errorResponse is the body of any failed request.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "malformed request body"))
		return
	}
	if len(req.Inventory) == 0 {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInventory, "inventory is empty"))
		return
	}

	supply := make(map[track.Kind]int, len(req.Inventory))
	for label, count := range req.Inventory {
		k, err := track.Parse(label)
		if err != nil {
			s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidPiece, err, "in inventory"))
			return
		}
		if count < 0 {
			s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInventory, "piece %s has negative count %d", label, count))
			return
		}
		supply[k] = count
	}

	runID := uuid.NewString()
	res, err := s.runner.Search(r.Context(), supply, pipeline.SearchOptions{Refresh: req.Refresh})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("search served", "run_id", runID, "layouts", len(res.Layouts), "cache_hit", res.CacheHit)
	writeJSON(w, http.StatusOK, searchResponse{
		RunID:    runID,
		Layouts:  res.Layouts,
		Count:    len(res.Layouts),
		CacheHit: res.CacheHit,
	})
}

func (s *Server) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	var req diagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidInput, "malformed request body"))
		return
	}

	kinds, err := track.ParseAll(req.Pieces)
	if err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidPiece, err, "in sequence"))
		return
	}

	runID := uuid.NewString()
	diag, err := s.runner.Diagnose(r.Context(), kinds)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.logger.Info("diagnose served", "run_id", runID, "closed", diag.Closed)
	writeJSON(w, http.StatusOK, diagnoseResponse{RunID: runID, Diagnosis: diag})
}

// writeError maps an error to an HTTP status by its code and writes the
// JSON error body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidPiece,
		apperrors.ErrCodeInvalidInventory, apperrors.ErrCodeInvalidSequence,
		apperrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case "":
		code = apperrors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: apperrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
