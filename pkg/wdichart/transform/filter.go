// Package transform filters indicator tables and reshapes them into
// year-indexed views.
package transform

import "github.com/ukaji3/wdichart-go/pkg/wdichart/models"

// Filter returns the rows whose country is in countries AND whose indicator
// is in indicators, in source order, with the code columns dropped.
// Matching is exact. An empty set matches nothing.
func Filter(table *models.IndicatorTable, countries, indicators []string) models.FilteredTable {
	out := models.FilteredTable{
		Columns: append([]string(nil), table.Columns...),
		Records: []models.Record{},
	}
	if len(countries) == 0 || len(indicators) == 0 {
		return out
	}

	countrySet := toSet(countries)
	indicatorSet := toSet(indicators)

	for _, row := range table.Rows {
		if !countrySet[row.CountryName] || !indicatorSet[row.IndicatorName] {
			continue
		}
		out.Records = append(out.Records, models.Record{
			CountryName:   row.CountryName,
			IndicatorName: row.IndicatorName,
			Values:        row.Values,
		})
	}
	return out
}

// Refilter applies the same filter to an already filtered table.
func Refilter(table models.FilteredTable, countries, indicators []string) models.FilteredTable {
	src := &models.IndicatorTable{Columns: table.Columns}
	for _, r := range table.Records {
		src.Rows = append(src.Rows, models.IndicatorRow{
			CountryName:   r.CountryName,
			IndicatorName: r.IndicatorName,
			Values:        r.Values,
		})
	}
	return Filter(src, countries, indicators)
}

// Unmatched returns the requested countries and indicators that never occur
// in the table, each in request order.
func Unmatched(table *models.IndicatorTable, countries, indicators []string) (missingCountries, missingIndicators []string) {
	seenCountries := make(map[string]bool)
	seenIndicators := make(map[string]bool)
	for _, row := range table.Rows {
		seenCountries[row.CountryName] = true
		seenIndicators[row.IndicatorName] = true
	}

	for _, c := range countries {
		if !seenCountries[c] {
			missingCountries = append(missingCountries, c)
		}
	}
	for _, i := range indicators {
		if !seenIndicators[i] {
			missingIndicators = append(missingIndicators, i)
		}
	}
	return missingCountries, missingIndicators
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
