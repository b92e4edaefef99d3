// Package summary prints verbose diagnostics about a parsed dataset. It is
// only used when debug mode is on.
package summary

import (
	"fmt"
	"io"
	"strconv"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ukaji3/csviz/internal/core"
)

// histogram shape for the per-series value distribution
const (
	histogramBins  = 9
	histogramWidth = 40
)

// SeriesStats summarizes one series' y-values.
type SeriesStats struct {
	Name   string
	Points int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Collect computes summary statistics for every series in the dataset.
func Collect(data *core.ChartData) []SeriesStats {
	stats := make([]SeriesStats, 0, len(data.Series))

	for _, series := range data.Series {
		s := SeriesStats{Name: series.Name, Points: len(series.YValues)}
		if s.Points > 0 {
			s.Min = floats.Min(series.YValues)
			s.Max = floats.Max(series.YValues)
			s.Mean, s.StdDev = stat.MeanStdDev(series.YValues, nil)
		}
		stats = append(stats, s)
	}

	return stats
}

// Write renders the statistics table followed by a value histogram per
// series.
func Write(w io.Writer, data *core.ChartData) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Series", "Points", "Min", "Max", "Mean", "Std Dev"})

	for _, s := range Collect(data) {
		table.Append([]string{
			s.Name,
			strconv.Itoa(s.Points),
			formatStat(s.Min),
			formatStat(s.Max),
			formatStat(s.Mean),
			formatStat(s.StdDev),
		})
	}
	table.Render()

	for _, series := range data.Series {
		if len(series.YValues) == 0 {
			continue
		}

		if _, err := fmt.Fprintf(w, "\n%s\n", series.Name); err != nil {
			return err
		}

		hist := histogram.Hist(histogramBins, series.YValues)
		if err := histogram.Fprint(w, hist, histogram.Linear(histogramWidth)); err != nil {
			return fmt.Errorf("print histogram for %s: %w", series.Name, err)
		}
	}

	return nil
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
