package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"foretagsradar/internal/config"
	"foretagsradar/internal/domain"
)

// Runner triggers one full scrape. *scrape.Orchestrator is the production
// implementation.
type Runner interface {
	Run(ctx context.Context) (*domain.ScrapeResult, error)
}

// Server holds the dependencies for the HTTP server.
type Server struct {
	config     *config.Config
	router     http.Handler
	httpServer *http.Server
	runner     Runner
	weights    map[string]float64
	estimates  map[string]int
	logger     *zap.Logger
}

func NewServer(cfg *config.Config, runner Runner, weights map[string]float64, estimates map[string]int, l *zap.Logger) *Server {
	s := &Server{
		config:    cfg,
		runner:    runner,
		weights:   weights,
		estimates: estimates,
		logger:    l,
	}
	s.router = s.setupRouter()
	return s
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%s", s.config.ServerPort),
		Handler:     s.router,
		ReadTimeout: 10 * time.Second,
		// A scrape run is long; the write timeout has to cover it.
		WriteTimeout: s.config.ScrapeTimeout() + 30*time.Second,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}
