// Package server exposes the pipeline over HTTP.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/config"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/common/logger"
	"github.com/abdulmoiz168/HospitALL-Agent-sub000/internal/pipeline"
)

type Server struct {
	pipeline   *pipeline.Pipeline
	logger     logger.Logger
	httpServer *http.Server
}

func New(cfg *config.Config, p *pipeline.Pipeline, log logger.Logger) *Server {
	s := &Server{
		pipeline: p,
		logger:   log.With(map[string]interface{}{"component": "server"}),
	}

	router := chi.NewRouter()
	router.Use(s.requestLogging)

	router.Route("/api", func(r chi.Router) {
		r.Post("/triage/turn", s.handleTriageTurn)
		r.Post("/medications/check", s.handleMedicationCheck)
		r.Post("/reports/analyze", s.handleReportAnalysis)
	})
	router.Get("/healthz", s.handleHealthz)
	router.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", map[string]interface{}{"addr": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down", nil)
	return s.httpServer.Shutdown(ctx)
}

// requestLogging tags every request with an id and logs its outcome.
// Request bodies are never logged; they may contain identifiers.
func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.New().String()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info("request completed", map[string]interface{}{
			"requestId":  requestID,
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     rec.status,
			"durationMs": time.Since(start).Milliseconds(),
		})
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
