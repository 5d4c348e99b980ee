package output

import (
	"fmt"
	"os"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

// YearField is the name of the row-label column of a Parquet export.
const YearField = "year"

// TransposedSchema returns the Arrow schema of a transposed view: a year
// string column followed by one nullable float64 column per label.
// Repeated labels get the lowest numeric suffix not already taken.
func TransposedSchema(view models.TransposedView) *arrow.Schema {
	fields := make([]arrow.Field, 0, len(view.Labels)+1)
	fields = append(fields, arrow.Field{Name: YearField, Type: arrow.BinaryTypes.String})

	used := map[string]bool{YearField: true}
	for _, label := range view.Labels {
		name := label
		for n := 2; used[name]; n++ {
			name = label + " (" + strconv.Itoa(n) + ")"
		}
		used[name] = true
		fields = append(fields, arrow.Field{Name: name, Type: arrow.PrimitiveTypes.Float64, Nullable: true})
	}
	return arrow.NewSchema(fields, nil)
}

// TransposedRecord builds an Arrow record from a transposed view. Missing
// cells become nulls. The caller must Release the record.
func TransposedRecord(mem memory.Allocator, view models.TransposedView) arrow.Record {
	schema := TransposedSchema(view)
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	years := b.Field(0).(*array.StringBuilder)
	for i, year := range view.Years {
		years.Append(year)
		for j, v := range view.Cells[i] {
			fb := b.Field(j + 1).(*array.Float64Builder)
			if v.Valid {
				fb.Append(v.Float)
			} else {
				fb.AppendNull()
			}
		}
	}
	return b.NewRecord()
}

// WriteParquet writes a transposed view to a snappy-compressed Parquet file.
func WriteParquet(path string, view models.TransposedView) error {
	rec := TransposedRecord(memory.NewGoAllocator(), view)
	defer rec.Release()

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create parquet file: %w", err)
	}
	defer file.Close()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())

	writer, err := pqarrow.NewFileWriter(rec.Schema(), file, props, arrowProps)
	if err != nil {
		return fmt.Errorf("failed to create parquet writer: %w", err)
	}

	if err := writer.Write(rec); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write parquet record: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
