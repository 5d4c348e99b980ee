package models

import "fmt"

// Identifier column names of the indicator file layout.
const (
	ColCountryName   = "Country Name"
	ColCountryCode   = "Country Code"
	ColIndicatorName = "Indicator Name"
	ColIndicatorCode = "Indicator Code"
)

// IdentifierColumns lists the required descriptive columns in file order.
var IdentifierColumns = []string{ColCountryName, ColCountryCode, ColIndicatorName, ColIndicatorCode}

// IndicatorRow is one (country, indicator) row of the source table.
type IndicatorRow struct {
	CountryName   string `json:"country_name"`
	CountryCode   string `json:"country_code"`
	IndicatorName string `json:"indicator_name"`
	IndicatorCode string `json:"indicator_code"`
	// Values maps value-column label (e.g. "1990") to cell value.
	Values map[string]Value `json:"values"`
}

// IndicatorTable is the loaded source table. It is not mutated after load.
type IndicatorTable struct {
	// Source is the file name the table was read from (no path).
	Source string `json:"source,omitempty"`
	// Columns holds value-column labels in header order; identifier columns excluded.
	Columns []string `json:"columns"`
	// Rows holds the data rows in file order.
	Rows []IndicatorRow `json:"rows"`
}

// Record is a filtered row with the code columns dropped.
type Record struct {
	CountryName   string           `json:"country_name"`
	IndicatorName string           `json:"indicator_name"`
	Values        map[string]Value `json:"values"`
}

// Label returns the flattened column label used by the transposed view.
func (r Record) Label() string {
	return fmt.Sprintf("%s | %s", r.CountryName, r.IndicatorName)
}

// Value returns the cell for column, or a missing Value when absent.
func (r Record) Value(column string) Value {
	return r.Values[column]
}

// FilteredTable is the subset of an IndicatorTable matching the requested
// countries and indicators, in source order.
type FilteredTable struct {
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

// Len returns the number of records.
func (t FilteredTable) Len() int {
	return len(t.Records)
}

// HasColumn reports whether column is one of the table's value columns.
func (t FilteredTable) HasColumn(column string) bool {
	for _, c := range t.Columns {
		if c == column {
			return true
		}
	}
	return false
}

// ForIndicator returns the records for a single indicator, in table order.
func (t FilteredTable) ForIndicator(indicator string) []Record {
	var out []Record
	for _, r := range t.Records {
		if r.IndicatorName == indicator {
			out = append(out, r)
		}
	}
	return out
}

// TransposedView has one row per year label and one column per filtered record.
type TransposedView struct {
	// Years is the row axis: digit-only labels in header order.
	Years []string `json:"years"`
	// Labels is the column axis, one per filtered record.
	Labels []string `json:"labels"`
	// Cells is indexed [year][label].
	Cells [][]Value `json:"cells"`
}

// NumRows returns the number of year rows.
func (v TransposedView) NumRows() int {
	return len(v.Years)
}

// NumCols returns the number of record columns.
func (v TransposedView) NumCols() int {
	return len(v.Labels)
}

// Column returns the values of one labelled column in year order.
func (v TransposedView) Column(label string) ([]Value, bool) {
	idx := -1
	for i, l := range v.Labels {
		if l == label {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, false
	}
	out := make([]Value, len(v.Years))
	for i := range v.Years {
		out[i] = v.Cells[i][idx]
	}
	return out, true
}

// IsYearLabel reports whether label is non-empty and made only of ASCII digits.
func IsYearLabel(label string) bool {
	if label == "" {
		return false
	}
	for i := 0; i < len(label); i++ {
		if label[i] < '0' || label[i] > '9' {
			return false
		}
	}
	return true
}
