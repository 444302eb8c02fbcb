package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"foretagsradar/internal/coverage"
)

// handleScrape triggers one full orchestrator run. The default response is
// the compact listing array; ?mode=comprehensive returns the full result
// object. A run with partial failures is still a 200: the orchestrator
// always produces a result, and only a pre-run engine failure reaches here
// as an error.
func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.config.ScrapeTimeout())
	defer cancel()

	result, err := s.runner.Run(ctx)
	if err != nil {
		s.logger.Error("scrape run failed before any source started", zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			s.respondWithJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Request timeout",
				"message": "The target website took too long to respond",
			})
			return
		}
		s.respondWithJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to fetch data from target website",
			"message": err.Error(),
		})
		return
	}

	if r.URL.Query().Get("mode") == "comprehensive" {
		s.respondWithJSON(w, http.StatusOK, result)
		return
	}
	s.respondWithJSON(w, http.StatusOK, result.SimpleListings())
}

// handleCoverageEstimate serves the static weight and estimate tables. No
// network I/O happens here.
func (s *Server) handleCoverageEstimate(w http.ResponseWriter, r *http.Request) {
	report := coverage.Aggregate(nil, s.weights, s.estimates)
	s.respondWithJSON(w, http.StatusOK, report)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "scraper-api",
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Swedish Business Listings Scraper API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"/scrape":            "GET - Scrape business listings from all configured sources",
			"/coverage-estimate": "GET - Static market coverage estimate, no scraping",
			"/health":            "GET - Liveness check",
		},
	})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
