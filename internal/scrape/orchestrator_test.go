package scrape

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"foretagsradar/internal/domain"
	"foretagsradar/internal/fetch"
	"foretagsradar/internal/monitoring"
)

// stubSession hands each source a pre-assigned fetcher.
type stubSession struct {
	fetchers map[string]fetch.Fetcher
	closed   bool
	released int
}

func (s *stubSession) FetcherFor(src *domain.SourceConfig) (fetch.Fetcher, func(), error) {
	f, ok := s.fetchers[src.ID]
	if !ok {
		return nil, nil, errors.New("no fetcher configured")
	}
	return f, func() { s.released++ }, nil
}

func (s *stubSession) Close() { s.closed = true }

// panicFetcher simulates a source whose scrape blows up entirely.
type panicFetcher struct{}

func (panicFetcher) Fetch(ctx context.Context, url string) (*fetch.Result, error) {
	panic("markup assumption violated")
}

func twoSources() (*domain.SourceConfig, *domain.SourceConfig) {
	a := testSource()
	a.ID = "alpha"
	a.ListingURLs = []string{"https://example.se/foretag-till-salu"}
	b := testSource()
	b.ID = "beta"
	b.ListingURLs = []string{"https://example.se/foretag-till-salu"}
	return a, b
}

func TestOrchestratorMergesFragments(t *testing.T) {
	a, b := twoSources()
	session := &stubSession{fetchers: map[string]fetch.Fetcher{
		"alpha": &fakeFetcher{pages: map[string]string{
			"https://example.se/foretag-till-salu":            `<a href="/foretag-till-salu/fran-alpha">Alpha AB</a>`,
			"https://example.se/foretag-till-salu/fran-alpha": detailPage("Alpha AB"),
		}},
		"beta": &fakeFetcher{pages: map[string]string{
			"https://example.se/foretag-till-salu":           `<a href="/foretag-till-salu/fran-beta">Beta AB</a>`,
			"https://example.se/foretag-till-salu/fran-beta": detailPage("Beta AB"),
		}},
	}}
	factory := func(ctx context.Context) (Session, error) { return session, nil }

	o := NewOrchestrator([]*domain.SourceConfig{a, b}, factory,
		map[string]float64{"alpha": 30, "beta": 20}, map[string]int{"alpha": 100, "beta": 50},
		0, newTestMetrics(), zap.NewNop())

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Len(t, result.Pages, 2)
	assert.Len(t, result.Listings, 2)
	assert.Len(t, result.Details, 2)
	assert.False(t, result.ScrapedAt.IsZero())
	assert.Equal(t, domain.SourceStats{PageCount: 1, DetailCount: 1}, result.CoverageStats["alpha"])
	assert.Equal(t, domain.SourceStats{PageCount: 1, DetailCount: 1}, result.CoverageStats["beta"])
	assert.InDelta(t, 50, result.EstimatedMarketCoverage, 1e-9)

	assert.True(t, session.closed, "session must be released at run end")
	assert.Equal(t, 2, session.released, "each source's fetch context must be released")
}

func TestOrchestratorIsolatesPanickingSource(t *testing.T) {
	a, b := twoSources()
	session := &stubSession{fetchers: map[string]fetch.Fetcher{
		"alpha": panicFetcher{},
		"beta":  &fakeFetcher{pages: map[string]string{
			"https://example.se/foretag-till-salu":           `<a href="/foretag-till-salu/fran-beta">Beta AB</a>`,
			"https://example.se/foretag-till-salu/fran-beta": detailPage("Beta AB"),
		}},
	}}
	factory := func(ctx context.Context) (Session, error) { return session, nil }

	o := NewOrchestrator([]*domain.SourceConfig{a, b}, factory,
		map[string]float64{"alpha": 30, "beta": 20}, nil,
		0, newTestMetrics(), zap.NewNop())

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	// Alpha imploded but beta's fragment survived.
	assert.Len(t, result.Details, 1)
	assert.Equal(t, "beta", result.Details[0].SourceID)
	assert.Equal(t, domain.SourceStats{}, result.CoverageStats["alpha"])

	// Coverage stays the full configured sum: it is an a-priori estimate,
	// not a measurement of what succeeded.
	assert.InDelta(t, 50, result.EstimatedMarketCoverage, 1e-9)
	assert.True(t, session.closed)
}

func TestOrchestratorCoverageIndependentOfResults(t *testing.T) {
	a, _ := twoSources()
	// Every fetch fails: zero pages, zero details.
	session := &stubSession{fetchers: map[string]fetch.Fetcher{
		"alpha": &fakeFetcher{},
	}}
	factory := func(ctx context.Context) (Session, error) { return session, nil }

	o := NewOrchestrator([]*domain.SourceConfig{a}, factory,
		map[string]float64{"alpha": 35}, map[string]int{"alpha": 1200},
		0, newTestMetrics(), zap.NewNop())

	result, err := o.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.SourceStats{}, result.CoverageStats["alpha"])
	assert.InDelta(t, 35, result.EstimatedMarketCoverage, 1e-9)

	// Empty collections, not null, so the façade can always serialize.
	assert.NotNil(t, result.Pages)
	assert.NotNil(t, result.Details)
	assert.Empty(t, result.Pages)
	assert.Empty(t, result.Details)
}

func TestOrchestratorPropagatesSessionFailure(t *testing.T) {
	a, _ := twoSources()
	bootErr := errors.New("browser bootstrap: executable not found")
	factory := func(ctx context.Context) (Session, error) { return nil, bootErr }

	reg := prometheus.NewRegistry()
	o := NewOrchestrator([]*domain.SourceConfig{a}, factory, nil, nil, 0, monitoring.NewMetrics(reg), zap.NewNop())

	result, err := o.Run(context.Background())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, bootErr)

	// Failed runs are timed too, not only successful ones.
	assert.EqualValues(t, 1, runDurationSamples(t, reg))
}

// runDurationSamples reads the run-duration histogram's sample count out of
// the registry.
func runDurationSamples(t *testing.T, reg *prometheus.Registry) uint64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "scraper_run_duration_seconds" {
			return mf.GetMetric()[0].GetHistogram().GetSampleCount()
		}
	}
	t.Fatal("scraper_run_duration_seconds not registered")
	return 0
}

func TestOrchestratorSkipsSourceWithoutFetcher(t *testing.T) {
	a, b := twoSources()
	session := &stubSession{fetchers: map[string]fetch.Fetcher{
		// alpha missing on purpose
		"beta": &fakeFetcher{pages: map[string]string{
			"https://example.se/foretag-till-salu":           `<a href="/foretag-till-salu/fran-beta">Beta AB</a>`,
			"https://example.se/foretag-till-salu/fran-beta": detailPage("Beta AB"),
		}},
	}}
	factory := func(ctx context.Context) (Session, error) { return session, nil }

	o := NewOrchestrator([]*domain.SourceConfig{a, b}, factory, nil, nil, 0, newTestMetrics(), zap.NewNop())

	result, err := o.Run(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Details, 1)
	assert.Equal(t, "beta", result.Details[0].SourceID)
}
