package domain

import (
	"regexp"
	"time"
)

// FetchStrategy selects how a source's pages are retrieved.
type FetchStrategy string

const (
	// FetchStatic is a plain HTTP request/response exchange.
	FetchStatic FetchStrategy = "static"
	// FetchRendered drives a headless browser and returns the rendered DOM.
	FetchRendered FetchStrategy = "rendered"
)

// SourceConfig describes one external listings site. Immutable after
// construction.
type SourceConfig struct {
	ID               string
	Strategy         FetchStrategy
	ListingURLs      []string // seed URLs: base, pagination and sort variants
	DetailURLPattern *regexp.Regexp
	BaseOrigin       string // scheme+host used to resolve relative hrefs
	SummaryClass     string // CSS class of inline location/industry elements
	RateDelay        time.Duration
	MaxDetailFetches int // hard cap on detail fetches per run; non-positive means none
	// MarketShareWeight is an a-priori estimate in percent, used only for
	// reporting. It is never measured.
	MarketShareWeight float64
}

// ListingCandidate is a deduplicated detail-page link discovered on a
// listing page, with whatever summary fields the listing page exposed.
type ListingCandidate struct {
	URL      string
	Title    string
	Location string
	Industry string
}

// ContactInfo holds whatever contact fields the detail page yielded.
// An empty field means "not found", which is a normal outcome.
type ContactInfo struct {
	BusinessName string `json:"business_name,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	ContactName  string `json:"contact_name,omitempty"`
	Email        string `json:"email,omitempty"`
}

// DetailRecord is one fetched business detail page.
type DetailRecord struct {
	SourceID string      `json:"source_id"`
	URL      string      `json:"url"`
	RawHTML  string      `json:"raw_html"`
	Contact  ContactInfo `json:"contact"`
}

// ScrapeResultFragment is the per-source output of one source scrape.
// It is always produced, even when empty.
type ScrapeResultFragment struct {
	SourceID string
	Pages    []string
	Listings []ListingCandidate
	Details  []DetailRecord
}

// SourceStats counts what one source actually returned during a run.
type SourceStats struct {
	PageCount   int `json:"page_count"`
	DetailCount int `json:"detail_count"`
}

// ScrapeResult is the merged output of one full run.
type ScrapeResult struct {
	Pages                   []string               `json:"pages"`
	Details                 []DetailRecord         `json:"details"`
	ScrapedAt               time.Time              `json:"scraped_at"`
	CoverageStats           map[string]SourceStats `json:"coverage_stats"`
	EstimatedMarketCoverage float64                `json:"estimated_market_coverage"`

	// Listings feeds the simple output shape and is not part of the
	// comprehensive JSON body.
	Listings []ListingCandidate `json:"-"`
}

// SimpleListing is the compact output record consumed by dashboards.
type SimpleListing struct {
	Title      string `json:"title"`
	Location   string `json:"location"`
	Industry   string `json:"industry"`
	ListingURL string `json:"listing_url"`
}

// SimpleListings flattens the result into the compact shape. Candidates
// without both a title and a URL are dropped.
func (r *ScrapeResult) SimpleListings() []SimpleListing {
	out := make([]SimpleListing, 0, len(r.Listings))
	for _, c := range r.Listings {
		if c.Title == "" || c.URL == "" {
			continue
		}
		out = append(out, SimpleListing{
			Title:      c.Title,
			Location:   c.Location,
			Industry:   c.Industry,
			ListingURL: c.URL,
		})
	}
	return out
}

// CoverageReport is the static market-coverage estimate. The percentages
// are configured, not measured, and are independent of scrape success.
type CoverageReport struct {
	PerSourceWeight                map[string]float64 `json:"per_source_weight"`
	TotalEstimatedListings         int                `json:"total_estimated_listings"`
	EstimatedMarketCoveragePercent float64            `json:"estimated_market_coverage_percent"`
}
