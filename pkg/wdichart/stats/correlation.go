package stats

import (
	"math"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"gonum.org/v1/gonum/stat"
)

// Correlation is a labelled indicator correlation matrix.
type Correlation struct {
	Year   string      `json:"year"`
	Labels []string    `json:"labels"`
	Matrix [][]float64 `json:"-"`
}

// Pivot arranges one year of a filtered table as a country x indicator
// matrix. Countries appear in first-seen order, indicators in the given
// order. Duplicate cells are averaged; absent cells are NaN.
func Pivot(table models.FilteredTable, indicators []string, year string) (countries []string, matrix [][]float64) {
	col := make(map[string]int, len(indicators))
	for i, ind := range indicators {
		col[ind] = i
	}

	rowOf := make(map[string]int)
	var sums, counts [][]float64
	for _, r := range table.Records {
		j, ok := col[r.IndicatorName]
		if !ok {
			continue
		}
		i, ok := rowOf[r.CountryName]
		if !ok {
			i = len(countries)
			rowOf[r.CountryName] = i
			countries = append(countries, r.CountryName)
			sums = append(sums, make([]float64, len(indicators)))
			counts = append(counts, make([]float64, len(indicators)))
		}
		if v := r.Value(year); v.Valid {
			sums[i][j] += v.Float
			counts[i][j]++
		}
	}

	matrix = make([][]float64, len(countries))
	for i := range countries {
		matrix[i] = make([]float64, len(indicators))
		for j := range indicators {
			if counts[i][j] == 0 {
				matrix[i][j] = math.NaN()
			} else {
				matrix[i][j] = sums[i][j] / counts[i][j]
			}
		}
	}
	return countries, matrix
}

// CorrelationMatrix returns the Pearson correlation between the columns of
// matrix, each pair computed over the rows where both are present.
// Pairs with fewer than two common rows are NaN.
func CorrelationMatrix(matrix [][]float64, k int) [][]float64 {
	out := make([][]float64, k)
	for i := range out {
		out[i] = make([]float64, k)
	}

	for a := 0; a < k; a++ {
		for b := a; b < k; b++ {
			var xs, ys []float64
			for _, row := range matrix {
				if math.IsNaN(row[a]) || math.IsNaN(row[b]) {
					continue
				}
				xs = append(xs, row[a])
				ys = append(ys, row[b])
			}
			c := math.NaN()
			if len(xs) >= 2 {
				c = stat.Correlation(xs, ys, nil)
			}
			out[a][b] = c
			out[b][a] = c
		}
	}
	return out
}

// Correlate pivots one year and correlates the given indicators.
func Correlate(table models.FilteredTable, indicators []string, year string) Correlation {
	_, matrix := Pivot(table, indicators, year)
	return Correlation{
		Year:   year,
		Labels: append([]string(nil), indicators...),
		Matrix: CorrelationMatrix(matrix, len(indicators)),
	}
}
