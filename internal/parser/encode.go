package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ukaji3/csviz/internal/core"
)

// xColumnLabel is written as the header's first token. Parse discards it,
// so any placeholder keeps Encode/Parse round trips lossless.
const xColumnLabel = "x"

// Encode writes data back out in the on-disk dataset format, using the given
// field delimiter. It is the inverse of Parse.
func Encode(w io.Writer, data *core.ChartData, delimiter rune) error {
	header := strings.Join(append([]string{xColumnLabel}, data.SeriesNames()...), string(delimiter)+" ")

	for _, line := range []string{data.Title, data.XAxisLabel, data.YAxisLabel, header} {
		if _, err := fmt.Fprintf(w, "%s %s\n", marker, line); err != nil {
			return fmt.Errorf("write metadata: %w", err)
		}
	}

	writer := csv.NewWriter(w)
	writer.Comma = delimiter

	for i, x := range data.XValues {
		record := make([]string, 0, len(data.Series)+1)
		record = append(record, formatValue(x))
		for _, series := range data.Series {
			record = append(record, formatValue(series.YValues[i]))
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write data row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// formatValue renders a float with the shortest representation that parses
// back to the same value.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
