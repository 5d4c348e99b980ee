package charts

import (
	"fmt"
	"math"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// BarWidth is the width of a single bar.
var BarWidth = vg.Points(14)

// Bar draws grouped bars: one group per country, one bar per requested year.
// Missing values are drawn as zero-height bars.
func (r *Renderer) Bar(req models.ChartRequest, table models.FilteredTable) (models.ChartResult, error) {
	if len(r.Countries) == 0 {
		return models.ChartResult{}, ErrNoData
	}

	p := plot.New()
	p.Title.Text = titleOr(req.Title, fmt.Sprintf("Bar Plot for %s Over Years", req.Indicator))
	p.X.Label.Text = "Country"
	p.Y.Label.Text = "Value"

	n := len(req.Years)
	for i, year := range req.Years {
		values := make(plotter.Values, len(r.Countries))
		for j, v := range r.countryValues(table, req.Indicator, year) {
			if math.IsNaN(v) {
				r.Logger.WithFields(map[string]interface{}{
					"indicator": req.Indicator, "country": r.Countries[j], "year": year,
				}).Warn("missing value drawn as zero")
				v = 0
			}
			values[j] = v
		}

		bars, err := plotter.NewBarChart(values, BarWidth)
		if err != nil {
			return models.ChartResult{}, err
		}
		bars.Color = plotutil.Color(i)
		bars.LineStyle.Width = vg.Length(0)
		bars.Offset = vg.Length(float64(i)-float64(n-1)/2) * BarWidth

		p.Add(bars)
		p.Legend.Add(year, bars)
	}

	p.Legend.Top = true
	p.NominalX(r.Countries...)

	if _, err := r.save(p, req.Output); err != nil {
		return models.ChartResult{}, err
	}
	return models.ChartResult{Kind: req.Kind, Title: p.Title.Text, Output: req.Output, Series: n}, nil
}
