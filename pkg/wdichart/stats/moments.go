package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Skew returns the bias-corrected sample skewness of the non-NaN values of xs.
// It is NaN for fewer than three values and zero for constant data.
func Skew(xs []float64) float64 {
	values := present(xs)
	if len(values) < 3 {
		return math.NaN()
	}
	if stat.StdDev(values, nil) == 0 {
		return 0
	}
	return stat.Skew(values, nil)
}

// Kurtosis returns the bias-corrected sample excess kurtosis of the non-NaN
// values of xs. It is NaN for fewer than four values and zero for constant data.
func Kurtosis(xs []float64) float64 {
	values := present(xs)
	if len(values) < 4 {
		return math.NaN()
	}
	if stat.StdDev(values, nil) == 0 {
		return 0
	}
	return stat.ExKurtosis(values, nil)
}
