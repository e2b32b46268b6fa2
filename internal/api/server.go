// Package api exposes the review analyzer over HTTP: a health probe, a JSON
// analysis endpoint, and a PDF download endpoint. Uploads arrive as multipart
// forms mirroring the web UI's fields (file, custom_prompt, max_reviews).
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/guestlens/guestlens/core/analyze"
	"github.com/guestlens/guestlens/core/extract"
	"github.com/guestlens/guestlens/core/render"
)

// maxUploadBytes caps review file uploads at 32 MiB.
const maxUploadBytes = 32 << 20

// ReviewAnalyzer runs one analysis over extracted reviews. *analyze.Analyzer
// satisfies it; tests substitute a stub.
type ReviewAnalyzer interface {
	Analyze(ctx context.Context, request analyze.Request) (*analyze.Result, error)
}

// Server holds the HTTP handlers' dependencies.
type Server struct {
	analyzer ReviewAnalyzer
	logger   *slog.Logger
}

// NewServer creates a Server. A nil logger falls back to slog.Default().
func NewServer(analyzer ReviewAnalyzer, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{analyzer: analyzer, logger: logger}
}

// Router builds the chi router with CORS and request logging wired in.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/analyze", s.handleAnalyze)
	r.Post("/analyze/pdf", s.handleAnalyzePDF)

	return r
}

// requestLogger emits one slog entry per request with method, path, status and
// duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "status": "healthy"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runAnalysis(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"report":           result.Report,
		"total_reviews":    result.TotalReviews,
		"analyzed_reviews": result.AnalyzedReviews,
	})
}

func (s *Server) handleAnalyzePDF(w http.ResponseWriter, r *http.Request) {
	result, ok := s.runAnalysis(w, r)
	if !ok {
		return
	}

	pdfBytes, err := render.PDF(result.Report, "")
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("PDF generation failed: %s", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename=hotel_reviews_report.pdf`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}

// runAnalysis handles the shared upload-extract-analyze flow. It reports
// false after writing an error response.
func (s *Server) runAnalysis(w http.ResponseWriter, r *http.Request) (*analyze.Result, bool) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid multipart form: %s", err))
		return nil, false
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "missing file field")
		return nil, false
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("reading upload: %s", err))
		return nil, false
	}

	reviews, err := extract.FromFile(header.Filename, content)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if len(reviews) == 0 {
		s.writeError(w, http.StatusBadRequest, "no reviews found in file")
		return nil, false
	}

	maxReviews := analyze.DefaultMaxReviews
	if raw := r.FormValue("max_reviews"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, "max_reviews must be a positive integer")
			return nil, false
		}
		maxReviews = parsed
	}

	result, err := s.analyzer.Analyze(r.Context(), analyze.Request{
		Reviews:      reviews,
		CustomPrompt: r.FormValue("custom_prompt"),
		MaxReviews:   maxReviews,
	})
	if err != nil {
		if errors.Is(err, analyze.ErrNoReviews) {
			s.writeError(w, http.StatusBadRequest, "no reviews found in file")
			return nil, false
		}
		s.writeError(w, http.StatusInternalServerError, fmt.Sprintf("analysis failed: %s", err))
		return nil, false
	}

	return result, true
}

func (s *Server) writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
