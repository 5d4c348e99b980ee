package parser

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"github.com/xuri/excelize/v2"
)

// ErrUnreadableWorkbook indicates the file could not be opened as an xlsx workbook.
var ErrUnreadableWorkbook = errors.New("unreadable workbook")

// DefaultDataSheet is the sheet name used by World Bank xlsx downloads.
const DefaultDataSheet = "Data"

// WorkbookOptions configures xlsx loading.
type WorkbookOptions struct {
	// Sheet is the sheet to read. Empty selects DefaultDataSheet if present,
	// otherwise the first sheet.
	Sheet string
	// SkipRows is the number of rows before the header. Negative means detect.
	SkipRows int
}

// ReadWorkbook loads an indicator table from an xlsx file.
func ReadWorkbook(path string, opts WorkbookOptions) (*models.IndicatorTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer f.Close()

	table, err := ReadSheet(f, opts)
	if err != nil {
		return nil, err
	}
	table.Source = filepath.Base(path)
	return table, nil
}

// ReadSheet loads an indicator table from an open workbook.
func ReadSheet(f *excelize.File, opts WorkbookOptions) (*models.IndicatorTable, error) {
	sheetName, err := resolveSheet(f, opts.Sheet)
	if err != nil {
		return nil, err
	}

	// Raw values keep number formats from rewriting the cells.
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	headerIdx := opts.SkipRows
	if headerIdx < 0 {
		headerIdx = DetectHeaderRow(rows)
		if headerIdx < 0 {
			return nil, fmt.Errorf("sheet %q: %w", sheetName, ErrNoHeader)
		}
	}
	if headerIdx >= len(rows) {
		return nil, fmt.Errorf("sheet %q: %w", sheetName, ErrNoHeader)
	}

	builder, err := newTableBuilder("", rows[headerIdx], headerIdx+1)
	if err != nil {
		return nil, err
	}

	for rowIdx := headerIdx + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if countNonEmptyCells(row) == 0 {
			continue
		}
		if err := builder.add(row, rowIdx+1); err != nil {
			return nil, err
		}
	}

	return builder.table, nil
}

func resolveSheet(f *excelize.File, name string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	if name != "" {
		for _, s := range sheets {
			if s == name {
				return s, nil
			}
		}
		return "", fmt.Errorf("sheet %q not found", name)
	}
	for _, s := range sheets {
		if s == DefaultDataSheet {
			return s, nil
		}
	}
	return sheets[0], nil
}
