// Package sources holds the per-site configuration for every Swedish
// business-for-sale marketplace the scraper covers. The sites differ only
// in markup conventions and fetch strategy; the pipeline itself is generic.
package sources

import (
	"regexp"
	"time"

	"foretagsradar/internal/domain"
)

// listingEstimates is a static, hand-maintained guess at how many live
// listings each site carries. Only the coverage report reads it.
var listingEstimates = map[string]int{
	"bolagsplatsen":             1200,
	"objektvision":              650,
	"blocket-foretag":           500,
	"bolagstorget":              320,
	"svenskforetagsformedling":  280,
	"foretagsmaklarna":          190,
	"exitpartner":               120,
	"skanes-foretagsformedling": 90,
	"lania":                     150,
}

// All returns the nine source configurations in their fixed scrape order.
// rateDelay is the minimum spacing between requests to the same site.
func All(rateDelay time.Duration) []*domain.SourceConfig {
	return []*domain.SourceConfig{
		{
			ID:         "bolagsplatsen",
			Strategy:   domain.FetchStatic,
			BaseOrigin: "https://www.bolagsplatsen.se",
			ListingURLs: []string{
				"https://www.bolagsplatsen.se/foretag-till-salu",
				"https://www.bolagsplatsen.se/foretag-till-salu?page=2",
				"https://www.bolagsplatsen.se/foretag-till-salu?sortering=senaste",
			},
			// One path segment under the category root; the bare root
			// itself is navigation, not a listing.
			DetailURLPattern:  regexp.MustCompile(`^https://www\.bolagsplatsen\.se/foretag-till-salu/[^/?#]+$`),
			SummaryClass:      "object-info",
			RateDelay:         rateDelay,
			MaxDetailFetches:  50,
			MarketShareWeight: 35,
		},
		{
			ID:         "objektvision",
			Strategy:   domain.FetchRendered,
			BaseOrigin: "https://objektvision.se",
			ListingURLs: []string{
				"https://objektvision.se/foretag/till-salu",
				"https://objektvision.se/foretag/till-salu?sida=2",
			},
			DetailURLPattern:  regexp.MustCompile(`^https://objektvision\.se/foretag/till-salu/[^/?#]+$`),
			SummaryClass:      "ov-meta",
			RateDelay:         rateDelay,
			MaxDetailFetches:  30,
			MarketShareWeight: 15,
		},
		{
			ID:         "blocket-foretag",
			Strategy:   domain.FetchRendered,
			BaseOrigin: "https://www.blocket.se",
			ListingURLs: []string{
				"https://www.blocket.se/foretag",
				"https://www.blocket.se/foretag?sort=date",
			},
			DetailURLPattern:  regexp.MustCompile(`^https://www\.blocket\.se/foretag/annons/[^/?#]+$`),
			SummaryClass:      "subject-meta",
			RateDelay:         rateDelay + 500*time.Millisecond,
			MaxDetailFetches:  20,
			MarketShareWeight: 10,
		},
		{
			ID:         "bolagstorget",
			Strategy:   domain.FetchStatic,
			BaseOrigin: "https://www.bolagstorget.se",
			ListingURLs: []string{
				"https://www.bolagstorget.se/foretag",
				"https://www.bolagstorget.se/foretag?sida=2",
			},
			DetailURLPattern:  regexp.MustCompile(`^https://www\.bolagstorget\.se/foretag/[^/?#]+$`),
			SummaryClass:      "listing-meta",
			RateDelay:         rateDelay,
			MaxDetailFetches:  20,
			MarketShareWeight: 8,
		},
		{
			ID:         "svenskforetagsformedling",
			Strategy:   domain.FetchStatic,
			BaseOrigin: "https://www.svenskforetagsformedling.se",
			ListingURLs: []string{
				"https://www.svenskforetagsformedling.se/foretag-till-salu",
			},
			DetailURLPattern:  regexp.MustCompile(`^https://www\.svenskforetagsformedling\.se/foretag-till-salu/[^/?#]+$`),
			SummaryClass:      "object-facts",
			RateDelay:         rateDelay,
			MaxDetailFetches:  15,
			MarketShareWeight: 7.5,
		},
		{
			ID:         "foretagsmaklarna",
			Strategy:   domain.FetchRendered,
			BaseOrigin: "https://foretagsmaklarna.se",
			ListingURLs: []string{
				"https://foretagsmaklarna.se/till-salu",
				"https://foretagsmaklarna.se/till-salu?ordning=nyast",
			},
			DetailURLPattern:  regexp.MustCompile(`^https://foretagsmaklarna\.se/till-salu/[^/?#]+$`),
			SummaryClass:      "fm-facts",
			RateDelay:         rateDelay,
			MaxDetailFetches:  10,
			MarketShareWeight: 5,
		},
		{
			ID:         "exitpartner",
			Strategy:   domain.FetchStatic,
			BaseOrigin: "https://exitpartner.se",
			ListingURLs: []string{
				"https://exitpartner.se/foretag-till-salu",
			},
			DetailURLPattern:  regexp.MustCompile(`^https://exitpartner\.se/foretag-till-salu/[^/?#]+$`),
			SummaryClass:      "uppdrag-meta",
			RateDelay:         rateDelay,
			MaxDetailFetches:  8,
			MarketShareWeight: 3,
		},
		{
			ID:         "skanes-foretagsformedling",
			Strategy:   domain.FetchStatic,
			BaseOrigin: "https://skanesforetagsformedling.se",
			ListingURLs: []string{
				"https://skanesforetagsformedling.se/objekt",
			},
			DetailURLPattern:  regexp.MustCompile(`^https://skanesforetagsformedling\.se/objekt/[^/?#]+$`),
			SummaryClass:      "objekt-info",
			RateDelay:         rateDelay,
			MaxDetailFetches:  8,
			MarketShareWeight: 2.5,
		},
		{
			ID:         "lania",
			Strategy:   domain.FetchStatic,
			BaseOrigin: "https://lania.se",
			ListingURLs: []string{
				"https://lania.se/foretag-till-salu",
				"https://lania.se/foretag-till-salu?lan=alla",
			},
			DetailURLPattern:  regexp.MustCompile(`^https://lania\.se/foretag-till-salu/[^/?#]+$`),
			SummaryClass:      "objektfakta",
			RateDelay:         rateDelay,
			MaxDetailFetches:  10,
			MarketShareWeight: 1.5,
		},
	}
}

// Weights maps source ID to its configured market-share percentage.
func Weights(srcs []*domain.SourceConfig) map[string]float64 {
	out := make(map[string]float64, len(srcs))
	for _, s := range srcs {
		out[s.ID] = s.MarketShareWeight
	}
	return out
}

// ListingEstimates returns a copy of the static per-source listing-count
// table.
func ListingEstimates() map[string]int {
	out := make(map[string]int, len(listingEstimates))
	for k, v := range listingEstimates {
		out[k] = v
	}
	return out
}
