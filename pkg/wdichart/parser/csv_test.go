package parser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const worldBankCSV = `"Data Source","World Development Indicators",

"Last Updated Date","2023-12-18",

"Country Name","Country Code","Indicator Name","Indicator Code","1990","1991","2010",
"India","IND","Urban population","SP.URB.TOTL","222000000","228000000","380000000",
"China","CHN","Urban population","SP.URB.TOTL","302000000","","",
"India","IND","Population growth (annual %)","SP.POP.GROW","2.1","2.0","1.4",
`

func TestReadCSVFromReader(t *testing.T) {
	table, err := ReadCSVFromReader(strings.NewReader(worldBankCSV), nil)
	if err != nil {
		t.Fatalf("ReadCSVFromReader failed: %v", err)
	}

	expectedColumns := []string{"1990", "1991", "2010"}
	if len(table.Columns) != len(expectedColumns) {
		t.Fatalf("Expected columns %v, got %v", expectedColumns, table.Columns)
	}
	for i, c := range expectedColumns {
		if table.Columns[i] != c {
			t.Errorf("Column %d: expected %q, got %q", i, c, table.Columns[i])
		}
	}

	if len(table.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(table.Rows))
	}

	first := table.Rows[0]
	if first.CountryName != "India" || first.CountryCode != "IND" {
		t.Errorf("Unexpected country fields: %+v", first)
	}
	if first.IndicatorName != "Urban population" || first.IndicatorCode != "SP.URB.TOTL" {
		t.Errorf("Unexpected indicator fields: %+v", first)
	}
	if v := first.Values["1990"]; !v.Valid || v.Float != 222000000 {
		t.Errorf("Expected 1990 = 222000000, got %+v", v)
	}

	if v := table.Rows[1].Values["1991"]; !v.IsMissing() {
		t.Errorf("Expected missing China 1991, got %+v", v)
	}
	if v := table.Rows[2].Values["2010"]; v.Float != 1.4 {
		t.Errorf("Expected 1.4, got %+v", v)
	}
}

func TestReadCSVWithBOM(t *testing.T) {
	data := "\xEF\xBB\xBF" + worldBankCSV
	table, err := ReadCSVFromReader(strings.NewReader(data), DefaultCSVOptions())
	if err != nil {
		t.Fatalf("ReadCSVFromReader failed: %v", err)
	}
	if len(table.Rows) != 3 {
		t.Errorf("Expected 3 rows, got %d", len(table.Rows))
	}
}

func TestReadCSVWithoutPreamble(t *testing.T) {
	data := "Country Name;Country Code;Indicator Name;Indicator Code;2000\n" +
		"India;IND;Urban population;SP.URB.TOTL;290000000\n"
	opts := &CSVOptions{SkipRows: 0, Delimiter: ';'}

	table, err := ReadCSVFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("ReadCSVFromReader failed: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0].Values["2000"].Float != 290000000 {
		t.Errorf("Unexpected table: %+v", table)
	}
}

func TestReadCSVInvalidYearValue(t *testing.T) {
	data := strings.Replace(worldBankCSV, `"302000000"`, `"lots"`, 1)

	_, err := ReadCSVFromReader(strings.NewReader(data), nil)
	if !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("Expected ErrInvalidValue, got %v", err)
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("Expected *LoadError, got %T", err)
	}
	if loadErr.Line != 7 {
		t.Errorf("Expected line 7, got %d", loadErr.Line)
	}
	if loadErr.Column != "1990" {
		t.Errorf("Expected column 1990, got %q", loadErr.Column)
	}
}

func TestReadCSVMissingColumn(t *testing.T) {
	data := strings.Replace(worldBankCSV, `"Indicator Code",`, "", 1)

	_, err := ReadCSVFromReader(strings.NewReader(data), nil)
	if !errors.Is(err, ErrMissingColumn) {
		t.Fatalf("Expected ErrMissingColumn, got %v", err)
	}

	var loadErr *LoadError
	if errors.As(err, &loadErr) && loadErr.Column != "Indicator Code" {
		t.Errorf("Expected column %q, got %q", "Indicator Code", loadErr.Column)
	}
}

func TestReadCSVNoHeader(t *testing.T) {
	_, err := ReadCSVFromReader(strings.NewReader("a\nb\n"), nil)
	if !errors.Is(err, ErrNoHeader) {
		t.Errorf("Expected ErrNoHeader, got %v", err)
	}
}

func TestReadCSVFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "API_test.csv")
	if err := os.WriteFile(tmpFile, []byte(worldBankCSV), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	table, err := ReadCSV(tmpFile, nil)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if table.Source != "API_test.csv" {
		t.Errorf("Expected source API_test.csv, got %q", table.Source)
	}

	if _, err := ReadCSV(filepath.Join(t.TempDir(), "missing.csv"), nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
