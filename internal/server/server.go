// Package server exposes the Prometheus metrics and health endpoints used in
// benchmark mode.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/agbru/basecalc/internal/logging"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 3 * time.Second
)

// Server serves /metrics and /healthz on a dedicated listener.
type Server struct {
	addr   string
	logger logging.Logger
	srv    *http.Server
}

// New creates a server bound to addr. Nothing listens until Start is called.
func New(addr string, logger logging.Logger) *Server {
	s := &Server{addr: addr, logger: logger}

	mux := http.NewServeMux()
	sec := DefaultSecurityConfig()
	mux.HandleFunc("/metrics", SecurityMiddleware(sec, s.handleMetrics))
	mux.HandleFunc("/healthz", SecurityMiddleware(sec, s.handleHealth))

	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Start begins serving in a background goroutine and returns immediately.
func (s *Server) Start() {
	s.logger.Info("metrics server listening", logging.String("addr", s.addr))
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server failed", logging.Err(err))
		}
	}()
}

// Shutdown stops the server, waiting up to shutdownTimeout for in-flight
// requests.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// handleMetrics serves the Prometheus text exposition for GET requests.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Warn("method not allowed on /metrics", logging.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	promhttp.Handler().ServeHTTP(w, r)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
