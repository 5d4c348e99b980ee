package wdichart

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/parser"
)

// Load reads an indicator table from a CSV or xlsx file.
func Load(path string, opts Options) (*models.IndicatorTable, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	var (
		table *models.IndicatorTable
		err   error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		table, err = loadCSV(path, opts)
	case ".xlsx", ".xlsm":
		table, err = loadWorkbook(path, opts)
	default:
		return nil, fmt.Errorf("%w: %s (must be .csv or .xlsx)", ErrInvalidFormat, path)
	}
	if err != nil {
		return nil, err
	}

	opts.logger().WithFields(map[string]interface{}{
		"source":  table.Source,
		"rows":    len(table.Rows),
		"columns": len(table.Columns),
	}).Info("indicator table loaded")
	return table, nil
}

func loadCSV(path string, opts Options) (*models.IndicatorTable, error) {
	csvOpts := parser.DefaultCSVOptions()
	if opts.SkipRows != nil {
		csvOpts.SkipRows = *opts.SkipRows
	}
	if opts.Delimiter != 0 {
		csvOpts.Delimiter = opts.Delimiter
	}
	return parser.ReadCSV(path, csvOpts)
}

func loadWorkbook(path string, opts Options) (*models.IndicatorTable, error) {
	wbOpts := parser.WorkbookOptions{Sheet: opts.Sheet, SkipRows: -1}
	if opts.SkipRows != nil {
		wbOpts.SkipRows = *opts.SkipRows
	}
	table, err := parser.ReadWorkbook(path, wbOpts)
	if errors.Is(err, parser.ErrUnreadableWorkbook) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return table, err
}
