package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealthCheck)
	r.Get("/coverage-estimate", s.handleCoverageEstimate)
	r.Get("/scrape", s.handleScrape)
	// The original façade answered both spellings; consumers exist for
	// each.
	r.Get("/scrap", s.handleScrape)

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
