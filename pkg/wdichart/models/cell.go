// Package models defines data structures for indicator tables and run reports.
package models

import "strconv"

// Value is a single cell of an indicator table.
type Value struct {
	// Raw is the cell text as read from the source.
	Raw string `json:"raw"`
	// Float is the parsed numeric value (zero when Valid is false).
	Float float64 `json:"value"`
	// Valid reports whether Raw holds a number. Blank cells are missing.
	Valid bool `json:"valid"`
}

// NumberValue returns a valid Value holding f.
func NumberValue(f float64) Value {
	return Value{Raw: strconv.FormatFloat(f, 'f', -1, 64), Float: f, Valid: true}
}

// IsMissing reports whether the cell has no numeric value.
func (v Value) IsMissing() bool {
	return !v.Valid
}

// String returns the raw cell text.
func (v Value) String() string {
	return v.Raw
}
