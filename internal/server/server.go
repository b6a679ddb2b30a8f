// Package server provides the HTTP API for ruiji.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hyperjump/ruiji/internal/analyzer"
	"github.com/hyperjump/ruiji/internal/config"
	"github.com/hyperjump/ruiji/pkg/utils"
)

// Server is the HTTP server for the ruiji API.
type Server struct {
	analyzer *analyzer.Analyzer
	config   *config.ServerConfig
	gatherer prometheus.Gatherer
	logger   *zap.Logger
	server   *http.Server
}

// NewServer creates a server. gatherer backs /metrics; nil uses the default registry.
func NewServer(a *analyzer.Analyzer, cfg *config.ServerConfig, gatherer prometheus.Gatherer, logger *zap.Logger) *Server {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &Server{
		analyzer: a,
		config:   cfg,
		gatherer: gatherer,
		logger:   utils.OrNop(logger),
	}
	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Router returns the API routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	r.Post("/api/v1/analyze", s.handleAnalyze)
	r.Post("/api/v1/analyze/upload", s.handleAnalyzeUpload)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("Starting server", zap.String("addr", s.server.Addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server. Safe to call before or during Start.
func (s *Server) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
