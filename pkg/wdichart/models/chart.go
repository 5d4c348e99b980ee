package models

// ChartKind identifies a chart type.
type ChartKind string

const (
	ChartHeatmap   ChartKind = "heatmap"
	ChartLine      ChartKind = "line"
	ChartBar       ChartKind = "bar"
	ChartHistogram ChartKind = "histogram"
)

// ChartRequest describes one chart to render.
type ChartRequest struct {
	// Kind is the chart type.
	Kind ChartKind `json:"kind" mapstructure:"kind"`
	// Title overrides the generated chart title.
	Title string `json:"title,omitempty" mapstructure:"title"`
	// Indicator is the indicator plotted (line, bar, histogram).
	Indicator string `json:"indicator,omitempty" mapstructure:"indicator"`
	// Years lists the year columns used. Heatmap and histogram use the first one.
	Years []string `json:"years" mapstructure:"years"`
	// Output is the image file name, relative to the output directory.
	Output string `json:"output" mapstructure:"output"`
	// Bins is the histogram bin count (0 means default).
	Bins int `json:"bins,omitempty" mapstructure:"bins"`
}

// ChartResult records a rendered chart.
type ChartResult struct {
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	Output string    `json:"output"`
	// Series is the number of plotted series (lines, bar groups, indicators).
	Series int `json:"series"`
}
