package charts

import (
	"fmt"
	"math"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg/draw"
)

// Line draws one line per requested year across the configured countries.
// Countries without a value for a year are left out of that line.
func (r *Renderer) Line(req models.ChartRequest, table models.FilteredTable) (models.ChartResult, error) {

	p := plot.New()
	p.Title.Text = titleOr(req.Title, fmt.Sprintf("Line Plot for %s Over Years", req.Indicator))
	p.X.Label.Text = "Country"
	p.Y.Label.Text = "Value"
	p.Add(plotter.NewGrid())

	series := 0
	for i, year := range req.Years {
		var xys plotter.XYs
		for j, v := range r.countryValues(table, req.Indicator, year) {
			if math.IsNaN(v) {
				r.Logger.WithFields(map[string]interface{}{
					"indicator": req.Indicator, "country": r.Countries[j], "year": year,
				}).Warn("missing value skipped")
				continue
			}
			xys = append(xys, plotter.XY{X: float64(j), Y: v})
		}
		if len(xys) == 0 {
			continue
		}

		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return models.ChartResult{}, err
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(year, line, points)
		series++
	}
	if series == 0 {
		return models.ChartResult{}, ErrNoData
	}

	p.NominalX(r.Countries...)

	if _, err := r.save(p, req.Output); err != nil {
		return models.ChartResult{}, err
	}
	return models.ChartResult{Kind: req.Kind, Title: p.Title.Text, Output: req.Output, Series: series}, nil
}
