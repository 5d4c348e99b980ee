// Package charts renders indicator charts as image files.
package charts

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// ErrNoData indicates a chart request left nothing to plot.
var ErrNoData = errors.New("no data to plot")

// DefaultBins is the histogram bin count used when a request sets none.
const DefaultBins = 15

// Figure size of every chart.
const (
	DefaultWidth  = 12 * vg.Inch
	DefaultHeight = 8 * vg.Inch
)

// Renderer draws chart requests against a filtered table.
type Renderer struct {
	// Dir is the output directory.
	Dir string
	// Countries is the x axis of line and bar charts, in display order.
	Countries []string
	// Indicators are the heatmap axes.
	Indicators []string
	Width      vg.Length
	Height     vg.Length
	Logger     logrus.FieldLogger
}

// NewRenderer returns a Renderer with the default figure size.
func NewRenderer(dir string, countries, indicators []string, logger logrus.FieldLogger) *Renderer {
	if logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		logger = l
	}
	return &Renderer{
		Dir:        dir,
		Countries:  countries,
		Indicators: indicators,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Logger:     logger,
	}
}

// Render validates req against table and draws it.
func (r *Renderer) Render(req models.ChartRequest, table models.FilteredTable) (models.ChartResult, error) {
	if req.Output == "" {
		return models.ChartResult{}, fmt.Errorf("chart %s: no output file", req.Kind)
	}
	if len(req.Years) == 0 {
		return models.ChartResult{}, fmt.Errorf("chart %s: no years requested", req.Kind)
	}
	for _, year := range req.Years {
		if !table.HasColumn(year) {
			return models.ChartResult{}, &models.LookupError{Kind: "year", Key: year}
		}
	}
	if req.Kind != models.ChartHeatmap && len(table.ForIndicator(req.Indicator)) == 0 {
		return models.ChartResult{}, &models.LookupError{Kind: "indicator", Key: req.Indicator}
	}

	switch req.Kind {
	case models.ChartHeatmap:
		return r.Heatmap(req, table)
	case models.ChartLine:
		return r.Line(req, table)
	case models.ChartBar:
		return r.Bar(req, table)
	case models.ChartHistogram:
		return r.Histogram(req, table)
	default:
		return models.ChartResult{}, fmt.Errorf("invalid chart kind: %s (must be heatmap, line, bar, or histogram)", req.Kind)
	}
}

// save writes p to the request's output file, overwriting it.
func (r *Renderer) save(p *plot.Plot, output string) (string, error) {
	path := filepath.Join(r.Dir, output)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := p.Save(r.Width, r.Height, path); err != nil {
		return "", err
	}
	r.Logger.WithField("file", path).Debug("chart written")
	return path, nil
}

// countryValues returns the indicator's value for each configured country in
// year, NaN where the country has no valid cell. Duplicate rows are averaged
// the same way as in the heatmap pivot.
func (r *Renderer) countryValues(table models.FilteredTable, indicator, year string) []float64 {
	countries, matrix := stats.Pivot(table, []string{indicator}, year)
	rowOf := make(map[string]int, len(countries))
	for i, c := range countries {
		rowOf[c] = i
	}

	out := make([]float64, len(r.Countries))
	for i, country := range r.Countries {
		out[i] = math.NaN()
		if j, ok := rowOf[country]; ok {
			out[i] = matrix[j][0]
		}
	}
	return out
}

func titleOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}
