// Package server provides the HTTP surface: upload, history, health
// and stats endpoints.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/breedsnap/breedsnap-go/internal/metrics"
	"github.com/breedsnap/breedsnap-go/internal/models"
)

// Identifier is the slice of the identify service the handlers need.
// Narrow so tests can run against fakes.
type Identifier interface {
	Identify(ctx context.Context, deviceID string, image []byte, mimeType string) (*models.Sighting, error)
	History(ctx context.Context, deviceID string) ([]models.Sighting, error)
}

// Server wraps the HTTP server with its dependencies.
type Server struct {
	svc     Identifier
	metrics *metrics.Collector
	logger  *slog.Logger
	http    *http.Server
}

// New creates the server and wires up routes and middleware.
func New(port string, svc Identifier, collector *metrics.Collector, logger *slog.Logger) *Server {
	s := &Server{
		svc:     svc,
		metrics: collector,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/upload", s.handleUpload)
	mux.HandleFunc("/api/cats", s.handleListCats)
	mux.HandleFunc("/api/stats", s.handleStats)
	mux.HandleFunc("/health", s.handleHealth)

	handler := CORSMiddleware(LoggingMiddleware(logger)(mux))

	s.http = &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,  // uploads can be 10 MiB over slow links
		WriteTimeout: 120 * time.Second, // two sequential model calls per upload
		IdleTimeout:  120 * time.Second,
	}

	return s
}

// Handler exposes the full middleware-wrapped handler for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", "addr", s.http.Addr)
	return s.http.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
// In-flight model calls run to completion; their results are discarded
// if the client is gone.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
