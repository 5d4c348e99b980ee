package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/wdichart-go/internal/config"
	"github.com/ukaji3/wdichart-go/pkg/wdichart"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

func testReport(t *testing.T) *models.Report {
	t.Helper()
	table := &models.IndicatorTable{
		Source:  "d.csv",
		Columns: []string{"1990", "2000"},
		Rows: []models.IndicatorRow{
			{CountryName: "India", IndicatorName: "Urban population", Values: map[string]models.Value{
				"1990": models.NumberValue(222), "2000": models.NumberValue(290),
			}},
			{CountryName: "China", IndicatorName: "Urban population", Values: map[string]models.Value{
				"1990": models.NumberValue(302), "2000": {},
			}},
		},
	}
	opts := wdichart.DefaultOptions()
	opts.Countries = []string{"India", "China"}
	opts.Indicators = []string{"Urban population"}

	report, err := wdichart.Analyze(table, opts)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if report.Stats == nil {
		t.Fatal("expected statistics in report")
	}
	return report
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = &bytes.Buffer{}
	return l
}

func TestWriteReportJSONToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := config.Cfg{JSON: "-"}

	if err := writeReport(cfg, testReport(t), &stdout, &stderr, quietLogger()); err != nil {
		t.Fatalf("writeReport failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(stdout.Bytes(), &decoded); err != nil {
		t.Fatalf("stdout is not a single JSON document: %v\n%s", err, stdout.String())
	}
	if decoded["source"] != "d.csv" {
		t.Errorf("unexpected source: %v", decoded["source"])
	}
	if _, ok := decoded["stats"]; !ok {
		t.Error("expected stats in JSON report")
	}
	if !strings.Contains(stderr.String(), "Summary statistics:") {
		t.Errorf("expected statistics on stderr, got %q", stderr.String())
	}
}

func TestWriteReportStatsToStdout(t *testing.T) {
	var stdout, stderr bytes.Buffer
	dir := t.TempDir()
	cfg := config.Cfg{
		JSON:           filepath.Join(dir, "report.json"),
		TransposedJSON: filepath.Join(dir, "transposed.json"),
		Pretty:         true,
	}

	if err := writeReport(cfg, testReport(t), &stdout, &stderr, quietLogger()); err != nil {
		t.Fatalf("writeReport failed: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "Summary statistics:") {
		t.Errorf("expected statistics on stdout, got %q", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("expected nothing on stderr, got %q", stderr.String())
	}

	data, err := os.ReadFile(cfg.JSON)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(data) {
		t.Error("expected a valid JSON report file")
	}

	data, err = os.ReadFile(cfg.TransposedJSON)
	if err != nil {
		t.Fatal(err)
	}
	var view models.TransposedView
	if err := json.Unmarshal(data, &view); err != nil {
		t.Fatalf("invalid transposed JSON: %v", err)
	}
	if len(view.Years) != 2 || len(view.Labels) != 2 {
		t.Errorf("unexpected transposed view: %+v", view)
	}
}
