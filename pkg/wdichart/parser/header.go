// Package parser reads indicator tables from delimited text and xlsx files.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

// ErrMissingColumn indicates a required identifier column is absent from the header.
var ErrMissingColumn = errors.New("missing required column")

// ErrInvalidValue indicates a year cell holds something other than a number or a blank.
var ErrInvalidValue = errors.New("invalid numeric value")

// ErrNoHeader indicates the input ended before a header row was found.
var ErrNoHeader = errors.New("no header row")

// LoadError represents a schema violation found while loading a table.
type LoadError struct {
	// Line is the 1-based line (csv) or row (xlsx) number.
	Line   int
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %q: %v", e.Line, e.Column, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// header maps the columns of a header record onto the table schema.
type header struct {
	country       int
	countryCode   int
	indicator     int
	indicatorCode int
	// columns holds value-column labels; index holds their record positions.
	columns []string
	index   []int
}

// parseHeader validates a header record. Blank header cells (such as the
// trailing empty column of World Bank exports) are ignored.
func parseHeader(record []string, line int) (*header, error) {
	h := &header{country: -1, countryCode: -1, indicator: -1, indicatorCode: -1}
	seen := make(map[string]bool)

	for i, raw := range record {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		switch name {
		case models.ColCountryName:
			h.country = i
		case models.ColCountryCode:
			h.countryCode = i
		case models.ColIndicatorName:
			h.indicator = i
		case models.ColIndicatorCode:
			h.indicatorCode = i
		default:
			if seen[name] {
				return nil, &LoadError{Line: line, Column: name, Err: errors.New("duplicate column")}
			}
			seen[name] = true
			h.columns = append(h.columns, name)
			h.index = append(h.index, i)
		}
	}

	positions := []int{h.country, h.countryCode, h.indicator, h.indicatorCode}
	for i, pos := range positions {
		if pos < 0 {
			return nil, &LoadError{Line: line, Column: models.IdentifierColumns[i], Err: ErrMissingColumn}
		}
	}
	return h, nil
}

// isHeaderRecord reports whether a record carries the identifier columns.
func isHeaderRecord(record []string) bool {
	_, err := parseHeader(record, 0)
	return err == nil
}

// tableBuilder accumulates validated rows.
type tableBuilder struct {
	h     *header
	table *models.IndicatorTable
}

func newTableBuilder(source string, headerRecord []string, line int) (*tableBuilder, error) {
	h, err := parseHeader(headerRecord, line)
	if err != nil {
		return nil, err
	}
	return &tableBuilder{
		h: h,
		table: &models.IndicatorTable{
			Source:  source,
			Columns: h.columns,
		},
	}, nil
}

// add validates a data record and appends it to the table.
// Year columns must hold a number or a blank; other columns are kept as read.
func (b *tableBuilder) add(record []string, line int) error {
	row := models.IndicatorRow{
		CountryName:   field(record, b.h.country),
		CountryCode:   field(record, b.h.countryCode),
		IndicatorName: field(record, b.h.indicator),
		IndicatorCode: field(record, b.h.indicatorCode),
		Values:        make(map[string]models.Value, len(b.h.columns)),
	}

	for i, column := range b.h.columns {
		v := parseValue(field(record, b.h.index[i]))
		if models.IsYearLabel(column) && v.IsMissing() && v.Raw != "" {
			return &LoadError{Line: line, Column: column, Err: fmt.Errorf("%w: %q", ErrInvalidValue, v.Raw)}
		}
		row.Values[column] = v
	}

	b.table.Rows = append(b.table.Rows, row)
	return nil
}

// field returns the trimmed cell at idx, or "" for short records.
func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
