package transform

import "github.com/ukaji3/wdichart-go/pkg/wdichart/models"

// Transpose swaps the axes of a filtered table: each record becomes a column
// labelled by its identity and each value column becomes a row. Only rows
// whose label is a year (all digits) are kept. Cells are carried over as is.
func Transpose(table models.FilteredTable) models.TransposedView {
	view := models.TransposedView{
		Years:  []string{},
		Labels: make([]string, len(table.Records)),
		Cells:  [][]models.Value{},
	}

	// The header row of the transposed table is the record identity.
	for i, r := range table.Records {
		view.Labels[i] = r.Label()
	}

	for _, column := range table.Columns {
		if !models.IsYearLabel(column) {
			continue
		}
		row := make([]models.Value, len(table.Records))
		for i, r := range table.Records {
			row[i] = r.Value(column)
		}
		view.Years = append(view.Years, column)
		view.Cells = append(view.Cells, row)
	}
	return view
}

// FilterAndTranspose filters table to the requested countries and indicators
// and returns both the filtered table and its transposed view.
func FilterAndTranspose(table *models.IndicatorTable, countries, indicators []string) (models.FilteredTable, models.TransposedView) {
	filtered := Filter(table, countries, indicators)
	return filtered, Transpose(filtered)
}
