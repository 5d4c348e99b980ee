package parser

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

// utf8BOM is stripped from the start of the input if present.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVOptions holds options for delimited-file loading.
type CSVOptions struct {
	// SkipRows is the number of physical lines before the header row.
	SkipRows int
	// Delimiter is the field delimiter.
	Delimiter rune
}

// DefaultCSVOptions returns the layout of World Bank indicator downloads.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		SkipRows:  4,
		Delimiter: ',',
	}
}

// ReadCSV loads an indicator table from a delimited file.
func ReadCSV(filename string, opts *CSVOptions) (*models.IndicatorTable, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	table, err := ReadCSVFromReader(file, opts)
	if err != nil {
		return nil, err
	}
	table.Source = filepath.Base(filename)
	return table, nil
}

// ReadCSVFromReader loads an indicator table from an io.Reader.
// Skipped lines are counted physically, blank lines included.
func ReadCSVFromReader(r io.Reader, opts *CSVOptions) (*models.IndicatorTable, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	br := bufio.NewReader(r)
	if b, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(b, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoHeader
			}
			return nil, err
		}
	}

	reader := csv.NewReader(br)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headerRecord, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, err
	}
	headerLine, _ := reader.FieldPos(0)

	builder, err := newTableBuilder("", headerRecord, headerLine+opts.SkipRows)
	if err != nil {
		return nil, err
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if err := builder.add(record, line+opts.SkipRows); err != nil {
			return nil, err
		}
	}

	return builder.table, nil
}
