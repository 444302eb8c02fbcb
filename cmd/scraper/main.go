package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"foretagsradar/internal/api"
	"foretagsradar/internal/config"
	"foretagsradar/internal/fetch"
	"foretagsradar/internal/monitoring"
	"foretagsradar/internal/scrape"
	"foretagsradar/internal/sources"
)

func main() {
	logger, _ := zap.NewProduction()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}
	if cfg.LogLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)

	srcs := sources.All(cfg.RateDelay())
	weights := sources.Weights(srcs)
	estimates := sources.ListingEstimates()

	// The fetch session is run-scoped: each /scrape request gets its own
	// HTTP client and, when needed, its own browser, released at run end.
	openSession := func(ctx context.Context) (scrape.Session, error) {
		return fetch.NewSession(ctx, srcs, cfg.FetchTimeout(), cfg.Headless)
	}

	orchestrator := scrape.NewOrchestrator(srcs, openSession, weights, estimates, cfg.SourceDelay(), metrics, logger)
	server := api.NewServer(cfg, orchestrator, weights, estimates, logger)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	logger.Info("server started",
		zap.String("port", cfg.ServerPort),
		zap.Int("sources", len(srcs)))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
