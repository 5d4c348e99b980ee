package models

import (
	"encoding/json"
	"math"
)

// Number is a float64 that encodes NaN and infinities as JSON null.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// ColumnSummary holds descriptive statistics of one value column.
type ColumnSummary struct {
	Column string `json:"column"`
	Count  int    `json:"count"`
	Mean   Number `json:"mean"`
	Std    Number `json:"std"`
	Min    Number `json:"min"`
	Q25    Number `json:"q25"`
	Q50    Number `json:"q50"`
	Q75    Number `json:"q75"`
	Max    Number `json:"max"`
}

// SummaryStatNames lists the rows of a summary in display order.
var SummaryStatNames = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// Stats returns the summary values in SummaryStatNames order.
func (s ColumnSummary) Stats() []float64 {
	return []float64{
		float64(s.Count), float64(s.Mean), float64(s.Std), float64(s.Min),
		float64(s.Q25), float64(s.Q50), float64(s.Q75), float64(s.Max),
	}
}

// Moments holds the shape statistics of one column.
type Moments struct {
	Column   string `json:"column"`
	Skew     Number `json:"skew"`
	Kurtosis Number `json:"kurtosis"`
}

// StatsReport is the console statistics output of a run.
type StatsReport struct {
	// MomentsOf is "summary" or "values".
	MomentsOf string          `json:"moments_of"`
	Summary   []ColumnSummary `json:"summary"`
	Moments   []Moments       `json:"moments"`
}
