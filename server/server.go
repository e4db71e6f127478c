package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/poiesic/assessrec/core"
)

// Recommender ranks catalog items for a free-text query.
type Recommender interface {
	Recommend(ctx context.Context, query string, topK int) ([]*core.Recommendation, error)
}

// Reindexer rebuilds the in-memory index from stored catalog items.
type Reindexer interface {
	Reindex(ctx context.Context) error
}

// Server serves the recommendation API over HTTP.
type Server struct {
	httpServer  *http.Server
	recommender Recommender
	reindexer   Reindexer
	logger      *slog.Logger
}

// Option configures a Server.
type Option func(*Server) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewServer creates a new API server listening on addr.
func NewServer(addr string, recommender Recommender, reindexer Reindexer, opts ...Option) (*Server, error) {
	if recommender == nil {
		return nil, ErrRecommenderRequired
	}
	if reindexer == nil {
		return nil, ErrReindexerRequired
	}

	s := &Server{
		recommender: recommender,
		reindexer:   reindexer,
		logger:      slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /recommend", s.handleRecommend)
	mux.HandleFunc("POST /reindex", s.handleReindex)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// ListenAndServe starts serving and blocks until the server stops.
func (s *Server) ListenAndServe() error {
	s.logger.Info("serving recommendation API", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
