// Package server exposes comment extraction over a small JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tidemark-labs/commentscan/internal/plid"
	"github.com/tidemark-labs/commentscan/pkg/lang"
	"github.com/tidemark-labs/commentscan/pkg/scanner"
)

// Server holds the API handlers.
type Server struct {
	log *slog.Logger
}

// New creates a Server logging through the given logger.
func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{log: logger}
}

// Routes builds the API router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/extract", s.handleExtract)
		r.Post("/guess", s.handleGuess)
		r.Get("/languages", s.handleLanguages)
	})
	return r
}

type extractRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

type extractResponse struct {
	Language string   `json:"language"`
	Comments []string `json:"comments"`
}

type guessRequest struct {
	Code string `json:"code"`
}

type guessResponse struct {
	Language string `json:"language"`
}

type languagesResponse struct {
	Languages []string `json:"languages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	language := req.Language
	if language == "" {
		language = plid.Guess(req.Code)
	}

	comments, err := scanner.Extract(req.Code, language)
	if err != nil {
		var uerr *lang.UnsupportedDialectError
		if errors.As(err, &uerr) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: uerr.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	if comments == nil {
		comments = []string{}
	}
	writeJSON(w, http.StatusOK, extractResponse{Language: language, Comments: comments})
}

func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	writeJSON(w, http.StatusOK, guessResponse{Language: plid.Guess(req.Code)})
}

func (s *Server) handleLanguages(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, languagesResponse{Languages: lang.List()})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
