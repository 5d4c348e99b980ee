package stats

import (
	"math"
	"sort"

	"github.com/go-gota/gota/dataframe"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Describe summarizes every float column of df.
func Describe(df dataframe.DataFrame) []models.ColumnSummary {
	columns := FloatColumns(df)
	out := make([]models.ColumnSummary, 0, len(columns))
	for _, name := range columns {
		s := Summarize(df.Col(name).Float())
		s.Column = name
		out = append(out, s)
	}
	return out
}

// Summarize computes count, mean, sample standard deviation, min, quartiles
// and max of the non-NaN values of xs. Undefined statistics are NaN.
func Summarize(xs []float64) models.ColumnSummary {
	values := present(xs)
	nan := models.Number(math.NaN())
	s := models.ColumnSummary{
		Count: len(values),
		Mean:  nan, Std: nan, Min: nan, Q25: nan, Q50: nan, Q75: nan, Max: nan,
	}
	if len(values) == 0 {
		return s
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	s.Mean = models.Number(stat.Mean(sorted, nil))
	if len(sorted) > 1 {
		s.Std = models.Number(stat.StdDev(sorted, nil))
	}
	s.Min = models.Number(floats.Min(sorted))
	s.Max = models.Number(floats.Max(sorted))
	s.Q25 = models.Number(quantile(sorted, 0.25))
	s.Q50 = models.Number(quantile(sorted, 0.5))
	s.Q75 = models.Number(quantile(sorted, 0.75))
	return s
}

// quantile interpolates linearly between the closest ranks of sorted data.
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
