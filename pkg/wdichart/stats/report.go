package stats

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

// Sources of the values skewness and kurtosis are taken over.
const (
	// MomentsOfSummary takes moments over the rows of each summary column.
	MomentsOfSummary = "summary"
	// MomentsOfValues takes moments over the raw values of each year column.
	MomentsOfValues = "values"
)

// Compute builds the statistics report of a filtered table.
func Compute(table models.FilteredTable, momentsOf string) (*models.StatsReport, error) {
	if momentsOf == "" {
		momentsOf = MomentsOfSummary
	}
	if momentsOf != MomentsOfSummary && momentsOf != MomentsOfValues {
		return nil, fmt.Errorf("invalid moments source: %s (must be %s or %s)", momentsOf, MomentsOfSummary, MomentsOfValues)
	}

	df := Frame(table)
	if df.Err != nil {
		return nil, df.Err
	}

	report := &models.StatsReport{
		MomentsOf: momentsOf,
		Summary:   Describe(df),
	}

	for _, s := range report.Summary {
		xs := s.Stats()
		if momentsOf == MomentsOfValues {
			xs = df.Col(s.Column).Float()
		}
		report.Moments = append(report.Moments, models.Moments{
			Column:   s.Column,
			Skew:     models.Number(Skew(xs)),
			Kurtosis: models.Number(Kurtosis(xs)),
		})
	}
	return report, nil
}

// Print writes the report as three aligned sections: summary, skew, kurtosis.
func Print(w io.Writer, report *models.StatsReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "Summary statistics:")
	fmt.Fprint(tw, "column\t")
	for _, name := range models.SummaryStatNames {
		fmt.Fprintf(tw, "%s\t", name)
	}
	fmt.Fprintln(tw)
	for _, s := range report.Summary {
		fmt.Fprintf(tw, "%s\t", s.Column)
		for _, v := range s.Stats() {
			fmt.Fprintf(tw, "%s\t", formatNumber(v))
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sections := []struct {
		title string
		value func(models.Moments) models.Number
	}{
		{"Skew (over " + report.MomentsOf + "):", func(m models.Moments) models.Number { return m.Skew }},
		{"Kurtosis (over " + report.MomentsOf + "):", func(m models.Moments) models.Number { return m.Kurtosis }},
	}
	for _, sec := range sections {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, sec.title)
		for _, m := range report.Moments {
			fmt.Fprintf(tw, "%s\t%s\t\n", m.Column, formatNumber(float64(sec.value(m))))
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return "NaN"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}
