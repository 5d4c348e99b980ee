package stats

import (
	"math"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

// Frame converts a filtered table into a dataframe with the two label
// columns and one float column per year column. Missing cells are NaN.
func Frame(table models.FilteredTable) dataframe.DataFrame {
	n := table.Len()
	countries := make([]string, n)
	indicators := make([]string, n)
	for i, r := range table.Records {
		countries[i] = r.CountryName
		indicators[i] = r.IndicatorName
	}

	cols := []series.Series{
		series.New(countries, series.String, models.ColCountryName),
		series.New(indicators, series.String, models.ColIndicatorName),
	}

	for _, year := range table.Columns {
		if !models.IsYearLabel(year) {
			continue
		}
		values := make([]float64, n)
		for i, r := range table.Records {
			values[i] = asFloat(r.Value(year))
		}
		cols = append(cols, series.New(values, series.Float, year))
	}

	return dataframe.New(cols...)
}

// FloatColumns returns the names of the float columns of df in order.
func FloatColumns(df dataframe.DataFrame) []string {
	var out []string
	for _, name := range df.Names() {
		if df.Col(name).Type() == series.Float {
			out = append(out, name)
		}
	}
	return out
}

func asFloat(v models.Value) float64 {
	if v.IsMissing() {
		return math.NaN()
	}
	return v.Float
}

// present returns the non-NaN values of xs.
func present(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) {
			out = append(out, x)
		}
	}
	return out
}
