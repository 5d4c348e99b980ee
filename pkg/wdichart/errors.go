package wdichart

import (
	"errors"
	"fmt"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is neither a readable CSV nor xlsx file.
var ErrInvalidFormat = errors.New("invalid input format")

// ErrUnmatchedFilter indicates a requested country or indicator never occurs
// in the input. Only returned in strict mode.
var ErrUnmatchedFilter = errors.New("filter matched nothing")

// ErrMissingColumn indicates a required identifier column is absent.
var ErrMissingColumn = parser.ErrMissingColumn

// LoadError is a schema violation found while loading the input.
type LoadError = parser.LoadError

// LookupError reports an indicator, year or column missing from a derived table.
type LookupError = models.LookupError

// ChartError represents a failure to render one chart.
type ChartError struct {
	Kind   models.ChartKind
	Output string
	Err    error
}

func (e *ChartError) Error() string {
	return fmt.Sprintf("chart error in %q (%s): %v", e.Output, e.Kind, e.Err)
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

// NewChartError creates a new ChartError for req.
func NewChartError(req models.ChartRequest, err error) *ChartError {
	return &ChartError{
		Kind:   req.Kind,
		Output: req.Output,
		Err:    err,
	}
}
