package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/benzi604/earthquakes/internal/adapter/chart"
	"github.com/benzi604/earthquakes/internal/domain"
	"github.com/benzi604/earthquakes/internal/observability"
)

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// SummaryProvider yields the current catalog summary, if one exists yet.
type SummaryProvider interface {
	Summary() (domain.Summary, bool)
}

// Server exposes health, readiness, metrics, summary, and chart HTTP endpoints.
type Server struct {
	httpServer *http.Server
	summaries  SummaryProvider
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with operational routes plus the summary
// and chart endpoints. Charts are rendered per request from the current
// summary; nothing is cached between requests.
func NewServer(addr string, ready ReadinessChecker, summaries SummaryProvider, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		summaries: summaries,
		metrics:   metrics,
		logger:    logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /charts/average-magnitude", s.handleAverageMagnitudeChart)
	mux.HandleFunc("GET /charts/quakes-per-year", s.handleQuakesPerYearChart)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, _ *http.Request) {
	summary, ok := s.summaries.Summary()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "no catalog summary available yet",
		})
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleAverageMagnitudeChart(w http.ResponseWriter, _ *http.Request) {
	summary, ok := s.summaries.Summary()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "no catalog summary available yet",
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.Line(w, domain.AverageMagnitudePlot(summary.AverageMagnitude)); err != nil {
		s.logger.Error("render average-magnitude chart", "error", err)
		return
	}
	s.metrics.ChartsRendered.WithLabelValues("average_magnitude").Inc()
}

func (s *Server) handleQuakesPerYearChart(w http.ResponseWriter, _ *http.Request) {
	summary, ok := s.summaries.Summary()
	if !ok {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "no catalog summary available yet",
		})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := chart.Bar(w, domain.QuakesPerYearPlot(summary.QuakesPerYear)); err != nil {
		s.logger.Error("render quakes-per-year chart", "error", err)
		return
	}
	s.metrics.ChartsRendered.WithLabelValues("quakes_per_year").Inc()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
