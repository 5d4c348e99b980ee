package models

import "fmt"

// LookupError reports a missing key when indexing a derived table.
type LookupError struct {
	// Kind is "indicator", "year", "country" or "column".
	Kind string
	Key  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s not found: %q", e.Kind, e.Key)
}
