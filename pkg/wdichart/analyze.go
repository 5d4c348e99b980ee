package wdichart

import (
	"fmt"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/stats"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/transform"
)

// Analyze filters and transposes table and, unless disabled, computes the
// summary statistics of the filtered rows.
func Analyze(table *models.IndicatorTable, opts Options) (*models.Report, error) {
	log := opts.logger()

	missingCountries, missingIndicators := transform.Unmatched(table, opts.Countries, opts.Indicators)
	if len(missingCountries) > 0 || len(missingIndicators) > 0 {
		if opts.ShouldFailOnUnmatched() {
			return nil, fmt.Errorf("%w: countries %q, indicators %q", ErrUnmatchedFilter, missingCountries, missingIndicators)
		}
		log.WithFields(map[string]interface{}{
			"countries":  missingCountries,
			"indicators": missingIndicators,
		}).Warn("requested names not found in input")
	}

	filtered, transposed := transform.FilterAndTranspose(table, opts.Countries, opts.Indicators)
	log.WithFields(map[string]interface{}{
		"records": filtered.Len(),
		"years":   transposed.NumRows(),
	}).Info("table filtered")

	report := &models.Report{
		Source:     table.Source,
		Countries:  opts.Countries,
		Indicators: opts.Indicators,
		Filtered:   filtered,
		Transposed: transposed,
	}

	if opts.ShouldIncludeStats() {
		s, err := stats.Compute(filtered, opts.MomentsOf)
		if err != nil {
			return nil, err
		}
		report.Stats = s
	}
	return report, nil
}
