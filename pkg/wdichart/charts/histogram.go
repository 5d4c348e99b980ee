package charts

import (
	"fmt"
	"image/color"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Histogram draws the distribution of the indicator's values in the first
// requested year across all filtered rows. Missing values are skipped.
func (r *Renderer) Histogram(req models.ChartRequest, table models.FilteredTable) (models.ChartResult, error) {
	year := req.Years[0]

	var values plotter.Values
	for _, rec := range table.ForIndicator(req.Indicator) {
		if v := rec.Value(year); v.Valid {
			values = append(values, v.Float)
		}
	}
	if len(values) == 0 {
		return models.ChartResult{}, ErrNoData
	}

	bins := req.Bins
	if bins <= 0 {
		bins = DefaultBins
	}

	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return models.ChartResult{}, err
	}
	h.FillColor = color.RGBA{B: 255, A: 255}
	h.LineStyle.Color = color.Black

	p := plot.New()
	p.Title.Text = titleOr(req.Title, fmt.Sprintf("Histogram of %s in %s", req.Indicator, year))
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Frequency"
	p.Add(h)
	p.Legend.Add(req.Indicator, h)
	p.Legend.Top = true
	p.Legend.Left = true

	if _, err := r.save(p, req.Output); err != nil {
		return models.ChartResult{}, err
	}
	return models.ChartResult{Kind: req.Kind, Title: p.Title.Text, Output: req.Output, Series: 1}, nil
}
