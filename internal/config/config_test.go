package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/ukaji3/wdichart-go/pkg/wdichart"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.Out = io.Discard
	return l
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGetConfigsDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := GetConfigs("", nil, quietLogger())
	if err != nil {
		t.Fatalf("GetConfigs failed: %v", err)
	}
	if cfg.Input != wdichart.DefaultInput {
		t.Errorf("expected default input, got %q", cfg.Input)
	}
	if len(cfg.Countries) != len(wdichart.DefaultCountries) {
		t.Errorf("expected default countries, got %v", cfg.Countries)
	}
	if cfg.Mode != string(wdichart.ModeBestEffort) {
		t.Errorf("expected best-effort mode, got %q", cfg.Mode)
	}
	if cfg.SkipRows != nil {
		t.Errorf("expected skip rows unset, got %d", *cfg.SkipRows)
	}
	if cfg.LoggerConfig.Level != "INFO" || cfg.LoggerConfig.Format != "TEXT" {
		t.Errorf("unexpected logger defaults: %+v", cfg.LoggerConfig)
	}
	if cfg.Charts != nil {
		t.Errorf("expected no configured charts, got %v", cfg.Charts)
	}
	if cfg.Delimiter != "," {
		t.Errorf("expected default delimiter ',', got %q", cfg.Delimiter)
	}
}

func TestGetConfigsFile(t *testing.T) {
	path := writeConfig(t, "run.json", `{
		"countries": ["Chad"],
		"mode": "strict",
		"skip_rows": 0,
		"logger": {"level": "DEBUG"},
		"charts": [
			{"kind": "histogram", "indicator": "Urban population", "years": ["2000"], "output": "h.png", "bins": 5}
		]
	}`)

	cfg, err := GetConfigs(path, nil, quietLogger())
	if err != nil {
		t.Fatalf("GetConfigs failed: %v", err)
	}
	if len(cfg.Countries) != 1 || cfg.Countries[0] != "Chad" {
		t.Errorf("expected countries from file, got %v", cfg.Countries)
	}
	if len(cfg.Indicators) != len(wdichart.DefaultIndicators) {
		t.Errorf("expected default indicators, got %v", cfg.Indicators)
	}
	if cfg.SkipRows == nil || *cfg.SkipRows != 0 {
		t.Errorf("expected skip rows 0, got %v", cfg.SkipRows)
	}
	if cfg.LoggerConfig.Level != "DEBUG" || cfg.LoggerConfig.Format != "TEXT" {
		t.Errorf("unexpected logger config: %+v", cfg.LoggerConfig)
	}
	if len(cfg.Charts) != 1 {
		t.Fatalf("expected 1 chart, got %d", len(cfg.Charts))
	}
	c := cfg.Charts[0]
	if c.Kind != models.ChartHistogram || c.Bins != 5 || c.Output != "h.png" || len(c.Years) != 1 {
		t.Errorf("unexpected chart: %+v", c)
	}
}

func TestGetConfigsYAML(t *testing.T) {
	path := writeConfig(t, "run.yaml", "out_dir: charts\nmoments_of: values\n")
	cfg, err := GetConfigs(path, nil, quietLogger())
	if err != nil {
		t.Fatalf("GetConfigs failed: %v", err)
	}
	if cfg.OutDir != "charts" || cfg.MomentsOf != "values" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestGetConfigsMissingExplicitFile(t *testing.T) {
	if _, err := GetConfigs(filepath.Join(t.TempDir(), "absent.json"), nil, quietLogger()); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestGetConfigsPrecedence(t *testing.T) {
	path := writeConfig(t, "run.json", `{"out_dir": "from-file", "mode": "strict", "sheet": "Data"}`)
	t.Setenv("WDICHART_OUT_DIR", "from-env")
	t.Setenv("WDICHART_SHEET", "Env")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("out-dir", ".", "")
	flags.String("mode", "best-effort", "")
	flags.String("sheet", "", "")
	flags.Int("skip-rows", -1, "")
	flags.StringSlice("countries", nil, "")
	if err := flags.Parse([]string{"--out-dir", "from-flag", "--countries", "India,China"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := GetConfigs(path, flags, quietLogger())
	if err != nil {
		t.Fatalf("GetConfigs failed: %v", err)
	}
	if cfg.OutDir != "from-flag" {
		t.Errorf("expected flag to win, got %q", cfg.OutDir)
	}
	if cfg.Sheet != "Env" {
		t.Errorf("expected env to beat file, got %q", cfg.Sheet)
	}
	if cfg.Mode != "strict" {
		t.Errorf("expected file to beat unchanged flag, got %q", cfg.Mode)
	}
	if cfg.SkipRows != nil {
		t.Errorf("expected unchanged skip-rows flag to leave skip rows unset, got %d", *cfg.SkipRows)
	}
	if len(cfg.Countries) != 2 || cfg.Countries[1] != "China" {
		t.Errorf("expected countries from flag, got %v", cfg.Countries)
	}
}

func TestGetConfigsSkipRowsFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("skip-rows", -1, "")
	if err := flags.Parse([]string{"--skip-rows", "2"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := GetConfigs("", flags, quietLogger())
	if err != nil {
		t.Fatalf("GetConfigs failed: %v", err)
	}
	if cfg.SkipRows == nil || *cfg.SkipRows != 2 {
		t.Errorf("expected skip rows 2, got %v", cfg.SkipRows)
	}
}

func TestCfgOptions(t *testing.T) {
	skip := 3
	cfg := Cfg{
		Countries: []string{"India"},
		Mode:      "strict",
		SkipRows:  &skip,
		NoCharts:  true,
	}
	opts, err := cfg.Options(nil)
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if !opts.ShouldFailOnUnmatched() {
		t.Error("expected strict mode")
	}
	if opts.ShouldIncludeCharts() {
		t.Error("expected charts disabled")
	}
	if !opts.ShouldIncludeStats() {
		t.Error("expected stats enabled")
	}
	if opts.SkipRows == nil || *opts.SkipRows != 3 {
		t.Errorf("expected skip rows 3, got %v", opts.SkipRows)
	}

	cfg.Mode = "lenient"
	if _, err := cfg.Options(nil); err == nil {
		t.Error("expected error for invalid mode")
	}
}

func TestGetConfigsDelimiter(t *testing.T) {
	path := writeConfig(t, "run.json", `{"delimiter": ";"}`)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("delimiter", ",", "")

	cfg, err := GetConfigs(path, flags, quietLogger())
	if err != nil {
		t.Fatalf("GetConfigs failed: %v", err)
	}
	opts, err := cfg.Options(nil)
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if opts.Delimiter != ';' {
		t.Errorf("expected ';' from file, got %q", opts.Delimiter)
	}

	if err := flags.Parse([]string{"--delimiter", "tab"}); err != nil {
		t.Fatal(err)
	}
	cfg, err = GetConfigs(path, flags, quietLogger())
	if err != nil {
		t.Fatalf("GetConfigs failed: %v", err)
	}
	if opts, err = cfg.Options(nil); err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if opts.Delimiter != '\t' {
		t.Errorf("expected tab from flag, got %q", opts.Delimiter)
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{"", ',', false},
		{",", ',', false},
		{"|", '|', false},
		{"tab", '\t', false},
		{`\t`, '\t', false},
		{";;", 0, true},
	}
	for _, tt := range tests {
		got, err := parseDelimiter(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("parseDelimiter(%q) = %q, %v", tt.in, got, err)
		}
	}
}
