package charts

import (
	"fmt"
	"image/color"
	"math"

	"github.com/ukaji3/wdichart-go/pkg/wdichart/models"
	"github.com/ukaji3/wdichart-go/pkg/wdichart/stats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// corrGrid adapts a correlation matrix to plotter.GridXYZ. Row 0 of the
// matrix is drawn at the top.
type corrGrid struct {
	m [][]float64
}

func (g corrGrid) Dims() (c, r int)   { return len(g.m), len(g.m) }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }
func (g corrGrid) Z(c, r int) float64 { return g.m[len(g.m)-1-r][c] }

// Heatmap draws the correlation between the renderer's indicators for the
// first requested year, annotated with two-decimal coefficients.
func (r *Renderer) Heatmap(req models.ChartRequest, table models.FilteredTable) (models.ChartResult, error) {
	year := req.Years[0]
	corr := stats.Correlate(table, r.Indicators, year)
	k := len(corr.Labels)
	if k == 0 {
		return models.ChartResult{}, ErrNoData
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)

	grid := corrGrid{m: corr.Matrix}
	pal := cm.Palette(255)
	hm := plotter.NewHeatMap(grid, pal)
	hm.Min = -1
	hm.Max = 1
	// Rounding can push a coefficient just past ±1.
	colors := pal.Colors()
	hm.Underflow = colors[0]
	hm.Overflow = colors[len(colors)-1]
	hm.NaN = color.Gray{Y: 220}

	p := plot.New()
	p.Title.Text = titleOr(req.Title, "Correlation Heatmap between Indicators")
	p.X.Label.Text = models.ColIndicatorName
	p.Y.Label.Text = models.ColIndicatorName
	p.Add(hm)

	var points plotter.XYs
	var labels []string
	for c := 0; c < k; c++ {
		for row := 0; row < k; row++ {
			z := grid.Z(c, row)
			if math.IsNaN(z) {
				continue
			}
			points = append(points, plotter.XY{X: float64(c), Y: float64(row)})
			labels = append(labels, fmt.Sprintf("%.2f", z))
		}
	}
	if len(points) > 0 {
		annotations, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
		if err != nil {
			return models.ChartResult{}, err
		}
		for i := range annotations.TextStyle {
			annotations.TextStyle[i].XAlign = draw.XCenter
			annotations.TextStyle[i].YAlign = draw.YCenter
		}
		p.Add(annotations)
	} else {
		r.Logger.WithField("year", year).Warn("no indicator pair has two common observations")
	}

	yLabels := make([]string, k)
	for i, l := range corr.Labels {
		yLabels[k-1-i] = l
	}
	p.NominalX(corr.Labels...)
	p.NominalY(yLabels...)
	p.X.Tick.Label.Rotation = math.Pi / 6
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	if _, err := r.save(p, req.Output); err != nil {
		return models.ChartResult{}, err
	}
	return models.ChartResult{Kind: req.Kind, Title: p.Title.Text, Output: req.Output, Series: k}, nil
}
