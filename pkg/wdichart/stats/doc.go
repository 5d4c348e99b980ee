// Package stats computes descriptive statistics and correlations over
// filtered indicator tables.
//
// # Summary statistics
//
// Build a dataframe from a filtered table and describe its year columns:
//
//	df := stats.Frame(filtered)
//	summary := stats.Describe(df)
//	for _, s := range summary {
//	    fmt.Printf("%s: n=%d mean=%.2f\n", s.Column, s.Count, s.Mean)
//	}
//
// Missing cells are NaN in the frame and are skipped by every statistic.
//
// # Skewness and kurtosis
//
// Shape statistics can be taken over the raw values of each year column or
// over the rows of the summary table:
//
//	report, err := stats.Compute(filtered, stats.MomentsOfSummary)
//	stats.Print(os.Stdout, report)
//
// # Correlation
//
// Pivot one year into a country x indicator matrix and correlate indicators:
//
//	corr := stats.Correlate(filtered, indicators, "1999")
//	// corr.Matrix[i][j] is the Pearson correlation of indicators i and j
package stats
