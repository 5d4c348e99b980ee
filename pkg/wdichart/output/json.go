// Package output serializes run results to JSON, xlsx and Parquet.
package output

import (
	"encoding/json"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

// ToJSON serializes a run report to JSON.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	return marshal(report, pretty)
}

// TransposedToJSON serializes a transposed view to JSON.
func TransposedToJSON(view *models.TransposedView, pretty bool) ([]byte, error) {
	return marshal(view, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
