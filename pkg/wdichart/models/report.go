package models

// Report is the complete result of a run.
type Report struct {
	// Source is the input file name (no path).
	Source     string         `json:"source"`
	Countries  []string       `json:"countries"`
	Indicators []string       `json:"indicators"`
	Filtered   FilteredTable  `json:"filtered"`
	Transposed TransposedView `json:"transposed"`
	Charts     []ChartResult  `json:"charts,omitempty"`
	Stats      *StatsReport   `json:"stats,omitempty"`
}
