// Package core holds the domain types shared across the program.
package core

import (
	"github.com/samber/lo"
)

// Series is one named sequence of y-values plotted against the shared x-values.
type Series struct {
	Name    string    `json:"name"`
	YValues []float64 `json:"yValues"`
}

// ChartData is the in-memory representation of one parsed dataset: the chart
// title, axis labels and the numeric columns in file order. It is built once
// at startup and never mutated afterwards, so it is safe to read from
// concurrent HTTP handlers without locking.
type ChartData struct {
	Title      string    `json:"title"`
	XAxisLabel string    `json:"xAxisLabel"`
	YAxisLabel string    `json:"yAxisLabel"`
	XValues    []float64 `json:"xValues"`
	Series     []Series  `json:"series"`
}

// SeriesNames returns the series names in header order.
func (d *ChartData) SeriesNames() []string {
	return lo.Map(d.Series, func(s Series, _ int) string {
		return s.Name
	})
}

// Points returns the number of data rows.
func (d *ChartData) Points() int {
	return len(d.XValues)
}
