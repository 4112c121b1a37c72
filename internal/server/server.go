package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/HerbHall/motorscope/internal/config"
	"github.com/HerbHall/motorscope/internal/metrics"
	"github.com/HerbHall/motorscope/internal/version"
)

// RouteRegistrar is implemented by packages that mount their own routes.
type RouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux)
}

// Server is the MotorScope HTTP server.
type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
	metrics    *metrics.Metrics
	mux        *http.ServeMux
}

// New creates a Server listening on cfg's address. Every registrar mounts
// its routes on the shared mux before the middleware chain is applied.
func New(cfg *config.Config, logger *zap.Logger, m *metrics.Metrics, registrars ...RouteRegistrar) *Server {
	mux := http.NewServeMux()

	s := &Server{
		logger:  logger,
		metrics: m,
		mux:     mux,
	}

	s.registerCoreRoutes()
	for _, r := range registrars {
		r.RegisterRoutes(mux)
	}

	chain := []Middleware{
		Recover(logger),
		Observe(logger, m),
	}
	if limit := cfg.GetFloat64("server.rate_limit"); limit > 0 {
		burst := cfg.GetInt("server.rate_burst")
		if burst < 1 {
			burst = 1
		}
		chain = append(chain, RateLimit(rate.NewLimiter(rate.Limit(limit), burst)))
	}
	if cfg.GetBool("server.tracing") {
		chain = append([]Middleware{Trace("motorscope")}, chain...)
	}

	s.httpServer = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      Chain(mux, chain...),
		ReadTimeout:  durationOr(cfg, "server.read_timeout", 15*time.Second),
		WriteTimeout: durationOr(cfg, "server.write_timeout", 15*time.Second),
		IdleTimeout:  durationOr(cfg, "server.idle_timeout", 60*time.Second),
	}

	return s
}

func durationOr(cfg *config.Config, key string, def time.Duration) time.Duration {
	if d := cfg.GetDuration(key); d > 0 {
		return d
	}
	return def
}

// registerCoreRoutes sets up routes that are always available.
func (s *Server) registerCoreRoutes() {
	s.mux.HandleFunc("GET /api/v1/health", s.handleHealth)
	if s.metrics != nil {
		s.mux.Handle("GET /metrics", s.metrics.Handler())
	}
}

// Handler returns the fully wrapped root handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-MotorScope-Version", version.Short())
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"service": "motorscope",
		"version": version.Map(),
	})
}
