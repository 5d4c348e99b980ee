package wdichart

import (
	"github.com/ukaji3/wdichart-go/pkg/wdichart/charts"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
)

// RenderCharts draws the configured charts for report into opts.OutDir and
// records them in report.Charts. It stops at the first failing chart.
func RenderCharts(report *models.Report, opts Options) error {
	log := opts.logger()
	dir := opts.OutDir
	if dir == "" {
		dir = "."
	}
	r := charts.NewRenderer(dir, opts.Countries, opts.Indicators, log)

	for _, req := range opts.ChartRequests() {
		result, err := r.Render(req, report.Filtered)
		if err != nil {
			return NewChartError(req, err)
		}
		log.WithFields(map[string]interface{}{
			"kind":   result.Kind,
			"output": result.Output,
		}).Info("chart rendered")
		report.Charts = append(report.Charts, result)
	}
	return nil
}

// Run loads path, analyzes it and renders its charts.
func Run(path string, opts Options) (*models.Report, error) {
	table, err := Load(path, opts)
	if err != nil {
		return nil, err
	}

	report, err := Analyze(table, opts)
	if err != nil {
		return nil, err
	}

	if opts.ShouldIncludeCharts() {
		if err := RenderCharts(report, opts); err != nil {
			return nil, err
		}
	}
	return report, nil
}
