package scrape

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"foretagsradar/internal/domain"
	"foretagsradar/internal/fetch"
	"foretagsradar/internal/monitoring"
)

// SourceScraper runs one source's full listing→detail pipeline: every seed
// URL in order, candidate extraction into a per-source dedup set, then a
// bounded detail fetch over the candidates in first-discovered order. Every
// fetch is preceded by the source's rate delay. Individual failures are
// logged and skipped; a fragment is always produced.
type SourceScraper struct {
	cfg     *domain.SourceConfig
	fetcher fetch.Fetcher
	limiter *fetch.Limiter
	metrics *monitoring.Metrics
	logger  *zap.Logger
}

func NewSourceScraper(cfg *domain.SourceConfig, f fetch.Fetcher, m *monitoring.Metrics, l *zap.Logger) *SourceScraper {
	return &SourceScraper{
		cfg:     cfg,
		fetcher: f,
		limiter: fetch.NewLimiter(cfg.RateDelay),
		metrics: m,
		logger:  l.With(zap.String("source", cfg.ID)),
	}
}

func (s *SourceScraper) Scrape(ctx context.Context) domain.ScrapeResultFragment {
	frag := domain.ScrapeResultFragment{SourceID: s.cfg.ID}
	seen := NewDedupSet()

	var candidates []domain.ListingCandidate
	for _, seed := range s.cfg.ListingURLs {
		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.Warn("run cancelled while rate limited", zap.Error(err))
			break
		}
		res, err := s.fetcher.Fetch(ctx, seed)
		if err != nil {
			s.logger.Warn("seed fetch failed, continuing with next seed",
				zap.String("url", seed), zap.Error(err))
			s.metrics.FetchErrors.WithLabelValues(s.cfg.ID, errReason(err)).Inc()
			continue
		}
		frag.Pages = append(frag.Pages, res.HTML)
		s.metrics.PagesFetched.WithLabelValues(s.cfg.ID).Inc()

		cands, err := ExtractCandidates(s.cfg, seed, res.HTML, seen)
		if err != nil {
			s.logger.Warn("listing extraction failed, continuing with next seed",
				zap.String("url", seed), zap.Error(err))
			s.metrics.FetchErrors.WithLabelValues(s.cfg.ID, errReason(err)).Inc()
			continue
		}
		candidates = append(candidates, cands...)
	}

	// MaxDetailFetches is a hard cap, never a hint: a non-positive cap
	// fetches no detail pages at all.
	limit := s.cfg.MaxDetailFetches
	if limit < 0 {
		limit = 0
	}
	if limit > len(candidates) {
		limit = len(candidates)
	}

	for i := 0; i < limit; i++ {
		cand := &candidates[i]
		if err := s.limiter.Wait(ctx); err != nil {
			s.logger.Warn("run cancelled while rate limited", zap.Error(err))
			break
		}
		res, err := s.fetcher.Fetch(ctx, cand.URL)
		if err != nil {
			s.logger.Warn("detail fetch failed, skipping record",
				zap.String("url", cand.URL), zap.Error(err))
			s.metrics.FetchErrors.WithLabelValues(s.cfg.ID, errReason(err)).Inc()
			continue
		}

		rec := domain.DetailRecord{SourceID: s.cfg.ID, URL: cand.URL, RawHTML: res.HTML}
		text, pageTitle, err := ExtractDetail(cand.URL, res.HTML)
		if err != nil {
			// The page was fetched; keep the record with no contact info.
			s.logger.Warn("detail parse failed, keeping record without contact",
				zap.String("url", cand.URL), zap.Error(err))
		} else {
			rec.Contact = ExtractContact(pageTitle, text)
			if cand.Title == "" {
				// The listing page had no title for this candidate; the
				// detail page's own title fills it in.
				cand.Title = businessNameFromTitle(pageTitle)
			}
		}

		frag.Details = append(frag.Details, rec)
		s.metrics.DetailsFetched.WithLabelValues(s.cfg.ID).Inc()
	}

	frag.Listings = candidates
	s.logger.Info("source scrape finished",
		zap.Int("pages", len(frag.Pages)),
		zap.Int("candidates", len(candidates)),
		zap.Int("details", len(frag.Details)))
	return frag
}

// errReason buckets an error for the fetch-error metric label.
func errReason(err error) string {
	var fe *domain.FetchError
	var pe *domain.ParseError
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &fe):
		if fe.Status != 0 {
			return "http_status"
		}
		return "network"
	case errors.As(err, &pe):
		return "parse"
	default:
		return "unknown"
	}
}
