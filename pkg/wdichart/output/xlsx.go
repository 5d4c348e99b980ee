package output

import (
	"math"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names of an exported workbook.
const (
	SheetFiltered   = "Filtered"
	SheetTransposed = "Transposed"
	SheetSummary    = "Summary"
)

// WriteWorkbook writes the filtered table, its transposed view and, when
// report is non-nil, the summary statistics to an xlsx file.
func WriteWorkbook(path string, filtered models.FilteredTable, transposed models.TransposedView, report *models.StatsReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetFiltered); err != nil {
		return err
	}
	if err := writeFiltered(f, filtered); err != nil {
		return err
	}

	if _, err := f.NewSheet(SheetTransposed); err != nil {
		return err
	}
	if err := writeTransposed(f, transposed); err != nil {
		return err
	}

	if report != nil {
		if _, err := f.NewSheet(SheetSummary); err != nil {
			return err
		}
		if err := writeSummary(f, report); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func writeFiltered(f *excelize.File, table models.FilteredTable) error {
	header := []interface{}{models.ColCountryName, models.ColIndicatorName}
	for _, c := range table.Columns {
		header = append(header, c)
	}
	if err := setRow(f, SheetFiltered, 1, header); err != nil {
		return err
	}

	for i, r := range table.Records {
		row := []interface{}{r.CountryName, r.IndicatorName}
		for _, c := range table.Columns {
			row = append(row, cellValue(r.Value(c)))
		}
		if err := setRow(f, SheetFiltered, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeTransposed(f *excelize.File, view models.TransposedView) error {
	header := []interface{}{"Year"}
	for _, l := range view.Labels {
		header = append(header, l)
	}
	if err := setRow(f, SheetTransposed, 1, header); err != nil {
		return err
	}

	for i, year := range view.Years {
		row := []interface{}{year}
		for _, v := range view.Cells[i] {
			row = append(row, cellValue(v))
		}
		if err := setRow(f, SheetTransposed, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, report *models.StatsReport) error {
	header := []interface{}{"column"}
	for _, name := range models.SummaryStatNames {
		header = append(header, name)
	}
	header = append(header, "skew", "kurtosis")
	if err := setRow(f, SheetSummary, 1, header); err != nil {
		return err
	}

	moments := make(map[string]models.Moments, len(report.Moments))
	for _, m := range report.Moments {
		moments[m.Column] = m
	}

	for i, s := range report.Summary {
		row := []interface{}{s.Column}
		for _, v := range s.Stats() {
			row = append(row, floatCell(v))
		}
		m := moments[s.Column]
		row = append(row, floatCell(float64(m.Skew)), floatCell(float64(m.Kurtosis)))
		if err := setRow(f, SheetSummary, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// cellValue writes numbers as numbers and keeps the raw text of missing cells.
func cellValue(v models.Value) interface{} {
	if v.Valid {
		return v.Float
	}
	return v.Raw
}

func floatCell(f float64) interface{} {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
