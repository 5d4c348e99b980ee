// Package main provides the CLI entry point for wdichart.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ukaji3/wdichart-go/internal/config"
	"github.com/ukaji3/wdichart-go/internal/log"
	"github.com/ukaji3/wdichart-go/pkg/wdichart"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/output"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/stats"
)

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "wdichart [input.csv|input.xlsx]",
		Short: "Filter, chart and summarize World Bank indicator data",
		Long: `wdichart filters a World Bank indicator table to selected countries and
indicators, writes charts as PNG files and prints summary statistics.`,
		Args:         cobra.MaximumNArgs(1),
		RunE:         run,
		SilenceUsage: true,
	}

	defaults := wdichart.DefaultOptions()
	flags := rootCmd.Flags()
	flags.StringVar(&configPath, "config", "", "Config file (default: ./config.* or ./configs/config.*)")
	flags.String("input", wdichart.DefaultInput, "Indicator file (.csv or .xlsx)")
	flags.StringSlice("countries", defaults.Countries, "Countries to keep")
	flags.StringSlice("indicators", defaults.Indicators, "Indicators to keep")
	flags.String("mode", string(defaults.Mode), "Unmatched filter handling: best-effort, strict")
	flags.Int("skip-rows", 4, "Rows before the header (default: 4 for CSV, detected for xlsx)")
	flags.String("sheet", "", "Sheet to read from xlsx input")
	flags.String("delimiter", ",", "CSV field delimiter (a single character or tab)")
	flags.String("moments-of", defaults.MomentsOf, "Skew/kurtosis source: summary, values")
	flags.String("out-dir", defaults.OutDir, "Chart output directory")
	flags.Bool("no-charts", false, "Do not render charts")
	flags.Bool("no-stats", false, "Do not compute statistics")
	flags.String("json", "", "Write the run report as JSON (- for stdout, statistics then go to stderr)")
	flags.String("transposed-json", "", "Write the transposed table as JSON")
	flags.String("xlsx", "", "Write filtered and transposed tables to an xlsx file")
	flags.String("parquet", "", "Write the transposed table to a Parquet file")
	flags.Bool("pretty", false, "Pretty-print JSON output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	boot := logrus.New()
	boot.Out = os.Stderr

	cfg, err := config.GetConfigs(configPath, cmd.Flags(), boot)
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}
	if len(args) == 1 {
		cfg.Input = args[0]
	}

	logger := log.NewLogger(cfg.LoggerConfig.Level, cfg.LoggerConfig.Format, cfg.LoggerConfig.DisableTimestamp)

	opts, err := cfg.Options(logger)
	if err != nil {
		return err
	}

	report, err := wdichart.Run(cfg.Input, opts)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	return writeReport(cfg, report, os.Stdout, os.Stderr, logger)
}

// writeReport prints the statistics and writes the exports. When the JSON
// report goes to stdout the statistics table is printed to stderr instead,
// so stdout holds a single JSON document.
func writeReport(cfg config.Cfg, report *models.Report, stdout, stderr io.Writer, logger logrus.FieldLogger) error {
	if report.Stats != nil {
		w := stdout
		if cfg.JSON == "-" {
			w = stderr
		}
		if err := stats.Print(w, report.Stats); err != nil {
			return err
		}
	}

	return writeExports(cfg, report, stdout, logger)
}

func writeExports(cfg config.Cfg, report *models.Report, stdout io.Writer, logger logrus.FieldLogger) error {
	if cfg.JSON != "" {
		jsonData, err := output.ToJSON(report, cfg.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if cfg.JSON == "-" {
			fmt.Fprintln(stdout, string(jsonData))
		} else if err := os.WriteFile(cfg.JSON, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if cfg.TransposedJSON != "" {
		jsonData, err := output.TransposedToJSON(&report.Transposed, cfg.Pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(cfg.TransposedJSON, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write transposed output: %w", err)
		}
	}

	if cfg.XLSX != "" {
		if err := output.WriteWorkbook(cfg.XLSX, report.Filtered, report.Transposed, report.Stats); err != nil {
			return fmt.Errorf("failed to write workbook: %w", err)
		}
		logger.WithField("file", cfg.XLSX).Info("workbook written")
	}

	if cfg.Parquet != "" {
		if err := output.WriteParquet(cfg.Parquet, report.Transposed); err != nil {
			return fmt.Errorf("failed to write parquet: %w", err)
		}
		logger.WithField("file", cfg.Parquet).Info("parquet written")
	}

	return nil
}
