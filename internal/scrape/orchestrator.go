package scrape

import (
	"context"
	"time"

	"go.uber.org/zap"

	"foretagsradar/internal/coverage"
	"foretagsradar/internal/domain"
	"foretagsradar/internal/fetch"
	"foretagsradar/internal/monitoring"
)

// Session is the run-scoped fetch context handed to each source scrape.
// *fetch.Session is the production implementation.
type Session interface {
	FetcherFor(src *domain.SourceConfig) (fetch.Fetcher, func(), error)
	Close()
}

// SessionFactory opens the fetch resources for one run. A factory error is
// the only failure an orchestrator run propagates: it means not a single
// source could have been scraped.
type SessionFactory func(ctx context.Context) (Session, error)

// Orchestrator runs every configured source scraper in a fixed order,
// sequentially, isolating each source's failure and merging the fragments
// into one result.
type Orchestrator struct {
	sources     []*domain.SourceConfig
	openSession SessionFactory
	weights     map[string]float64
	estimates   map[string]int
	sourceDelay time.Duration
	metrics     *monitoring.Metrics
	logger      *zap.Logger
}

func NewOrchestrator(
	srcs []*domain.SourceConfig,
	openSession SessionFactory,
	weights map[string]float64,
	estimates map[string]int,
	sourceDelay time.Duration,
	m *monitoring.Metrics,
	l *zap.Logger,
) *Orchestrator {
	return &Orchestrator{
		sources:     srcs,
		openSession: openSession,
		weights:     weights,
		estimates:   estimates,
		sourceDelay: sourceDelay,
		metrics:     m,
		logger:      l,
	}
}

// Run executes one full scrape across all sources. Partial failure is never
// an error: a run where every source came back empty still returns a
// result. Only a session/engine bootstrap failure, before any source has
// started, is returned to the caller.
func (o *Orchestrator) Run(ctx context.Context) (*domain.ScrapeResult, error) {
	start := time.Now()

	session, err := o.openSession(ctx)
	if err != nil {
		o.metrics.RunsTotal.WithLabelValues("failure").Inc()
		o.metrics.RunDuration.Observe(time.Since(start).Seconds())
		return nil, err
	}
	defer session.Close()

	// Empty collections, never null: a run that scraped nothing is still a
	// valid result.
	result := &domain.ScrapeResult{
		Pages:         []string{},
		Details:       []domain.DetailRecord{},
		CoverageStats: make(map[string]domain.SourceStats, len(o.sources)),
	}
	for i, src := range o.sources {
		if i > 0 {
			o.pause(ctx)
		}
		frag := o.scrapeSource(ctx, session, src)
		result.Pages = append(result.Pages, frag.Pages...)
		result.Listings = append(result.Listings, frag.Listings...)
		result.Details = append(result.Details, frag.Details...)
		result.CoverageStats[src.ID] = domain.SourceStats{
			PageCount:   len(frag.Pages),
			DetailCount: len(frag.Details),
		}
	}

	report := coverage.Aggregate(result.CoverageStats, o.weights, o.estimates)
	result.EstimatedMarketCoverage = report.EstimatedMarketCoveragePercent
	result.ScrapedAt = time.Now()

	o.metrics.RunsTotal.WithLabelValues("success").Inc()
	o.metrics.RunDuration.Observe(time.Since(start).Seconds())
	o.logger.Info("scrape run finished",
		zap.Int("pages", len(result.Pages)),
		zap.Int("listings", len(result.Listings)),
		zap.Int("details", len(result.Details)),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

// scrapeSource runs one source behind a panic barrier. Anything that
// escapes the source scraper is logged and replaced with an empty fragment
// so the remaining sources still run.
func (o *Orchestrator) scrapeSource(ctx context.Context, session Session, src *domain.SourceConfig) (frag domain.ScrapeResultFragment) {
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("source scrape panicked, continuing with next source",
				zap.String("source", src.ID), zap.Any("panic", r))
			o.metrics.FetchErrors.WithLabelValues(src.ID, "panic").Inc()
			frag = domain.ScrapeResultFragment{SourceID: src.ID}
		}
	}()

	fetcher, release, err := session.FetcherFor(src)
	if err != nil {
		o.logger.Error("no fetcher for source, skipping",
			zap.String("source", src.ID), zap.Error(err))
		return domain.ScrapeResultFragment{SourceID: src.ID}
	}
	defer release()

	return NewSourceScraper(src, fetcher, o.metrics, o.logger).Scrape(ctx)
}

// pause is the fixed inter-source politeness delay.
func (o *Orchestrator) pause(ctx context.Context) {
	if o.sourceDelay <= 0 {
		return
	}
	select {
	case <-time.After(o.sourceDelay):
	case <-ctx.Done():
	}
}
