// Package coverage turns the static per-source market-share tables into a
// coverage report. The percentages are an a-priori estimate of each site's
// share of the Swedish business-for-sale market; they are configured, not
// measured, and deliberately independent of what a run actually fetched.
package coverage

import "foretagsradar/internal/domain"

// Aggregate builds the coverage report for one run. Every source in the
// weight table contributes its configured weight regardless of whether
// stats shows any pages for it; stats never feeds the percentage. Do not
// "fix" this into a measured value.
func Aggregate(stats map[string]domain.SourceStats, weights map[string]float64, estimates map[string]int) domain.CoverageReport {
	report := domain.CoverageReport{
		PerSourceWeight: make(map[string]float64, len(weights)),
	}
	for id, w := range weights {
		report.PerSourceWeight[id] = w
		report.EstimatedMarketCoveragePercent += w
	}
	for _, n := range estimates {
		report.TotalEstimatedListings += n
	}
	return report
}
