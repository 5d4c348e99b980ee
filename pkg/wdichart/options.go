// Package wdichart filters, reshapes, charts and summarizes World Bank
// indicator tables.
package wdichart

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/stats"
)

// Mode controls how requested names absent from the input are handled.
type Mode string

const (
	// ModeBestEffort silently yields fewer (possibly zero) rows.
	ModeBestEffort Mode = "best-effort"
	// ModeStrict fails with ErrUnmatchedFilter.
	ModeStrict Mode = "strict"
)

// ParseMode parses a mode name. Empty selects ModeBestEffort.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeBestEffort:
		return ModeBestEffort, nil
	case ModeStrict:
		return ModeStrict, nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be best-effort or strict)", s)
	}
}

// DefaultInput is the indicator file read when none is given.
const DefaultInput = "API_19_DS2_en_csv_v2_5998250.csv"

// DefaultCountries are the countries kept by default, in chart order.
var DefaultCountries = []string{"India", "United Kingdom", "China", "United States", "Bangladesh"}

// DefaultIndicators are the indicators kept by default.
var DefaultIndicators = []string{
	"Agricultural land (sq. km)",
	"Cereal yield (kg per hectare)",
	"Urban population",
	"Population growth (annual %)",
	"CO2 emissions from liquid fuel consumption (% of total)",
}

// DefaultChartYears are the years drawn by the default line and bar charts.
var DefaultChartYears = []string{"1990", "1995", "2000", "2005", "2010"}

// Options configures a run.
type Options struct {
	// Countries and Indicators select the rows kept. Matching is exact.
	Countries  []string
	Indicators []string
	// Mode specifies how unmatched names are handled (best-effort, strict).
	Mode Mode
	// SkipRows is the number of rows before the header.
	// If nil, defaults to 4 for CSV input and header detection for xlsx.
	SkipRows *int
	// Sheet is the xlsx sheet to read.
	Sheet string
	// Delimiter is the CSV field delimiter (default ',').
	Delimiter rune
	// MomentsOf selects what skew and kurtosis are taken over ("summary", "values").
	MomentsOf string
	// Charts lists the charts to render. If nil, DefaultCharts is used.
	Charts []models.ChartRequest
	// OutDir is the chart output directory.
	OutDir string
	// IncludeCharts specifies whether to render charts. If nil, defaults to true.
	IncludeCharts *bool
	// IncludeStats specifies whether to compute statistics. If nil, defaults to true.
	IncludeStats *bool
	// Logger receives progress and data warnings. If nil, nothing is logged.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the options of the stock run.
func DefaultOptions() Options {
	return Options{
		Countries:  append([]string(nil), DefaultCountries...),
		Indicators: append([]string(nil), DefaultIndicators...),
		Mode:       ModeBestEffort,
		MomentsOf:  stats.MomentsOfSummary,
		OutDir:     ".",
	}
}

// DefaultCharts returns the stock chart sequence. Charts sharing an output
// file overwrite each other in order.
func DefaultCharts() []models.ChartRequest {
	return []models.ChartRequest{
		{Kind: models.ChartHeatmap, Years: []string{"1999"}, Output: "heatmap.png"},
		{Kind: models.ChartLine, Indicator: "Urban population", Years: DefaultChartYears, Output: "lineplot.png"},
		{Kind: models.ChartLine, Indicator: "Population growth (annual %)", Years: DefaultChartYears, Output: "lineplot.png"},
		{Kind: models.ChartBar, Indicator: "Urban population", Years: DefaultChartYears, Output: "barplot.png"},
		{Kind: models.ChartBar, Indicator: "Agricultural land (sq. km)", Years: DefaultChartYears, Output: "barplot.png"},
		{
			Kind:      models.ChartHistogram,
			Indicator: "CO2 emissions from liquid fuel consumption (% of total)",
			Years:     []string{"2002"},
			Output:    "hist.png",
			Bins:      15,
		},
	}
}

// ShouldFailOnUnmatched returns whether unmatched names are an error.
func (o Options) ShouldFailOnUnmatched() bool {
	return o.Mode == ModeStrict
}

// ShouldIncludeCharts returns whether to render charts.
func (o Options) ShouldIncludeCharts() bool {
	if o.IncludeCharts != nil {
		return *o.IncludeCharts
	}
	return true
}

// ShouldIncludeStats returns whether to compute statistics.
func (o Options) ShouldIncludeStats() bool {
	if o.IncludeStats != nil {
		return *o.IncludeStats
	}
	return true
}

// ChartRequests returns the charts to render.
func (o Options) ChartRequests() []models.ChartRequest {
	if o.Charts != nil {
		return o.Charts
	}
	return DefaultCharts()
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.Out = io.Discard
	return l
}
