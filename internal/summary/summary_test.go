package summary

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/csviz/internal/core"
)

func testData() *core.ChartData {
	return &core.ChartData{
		Title:      "T",
		XAxisLabel: "X",
		YAxisLabel: "Y",
		XValues:    []float64{0, 1, 2},
		Series: []core.Series{
			{Name: "up", YValues: []float64{1, 2, 3}},
			{Name: "flat", YValues: []float64{5, 5, 5}},
		},
	}
}

func TestCollect(t *testing.T) {
	stats := Collect(testData())
	require.Len(t, stats, 2)

	up := stats[0]
	assert.Equal(t, "up", up.Name)
	assert.Equal(t, 3, up.Points)
	assert.Equal(t, 1.0, up.Min)
	assert.Equal(t, 3.0, up.Max)
	assert.Equal(t, 2.0, up.Mean)
	assert.Equal(t, 1.0, up.StdDev)

	flat := stats[1]
	assert.Equal(t, 5.0, flat.Min)
	assert.Equal(t, 5.0, flat.Max)
	assert.Equal(t, 5.0, flat.Mean)
	assert.Equal(t, 0.0, flat.StdDev)
}

func TestCollectEmptySeries(t *testing.T) {
	data := &core.ChartData{
		Series: []core.Series{{Name: "empty"}},
	}

	stats := Collect(data)
	require.Len(t, stats, 1)
	assert.Equal(t, 0, stats[0].Points)
	assert.Zero(t, stats[0].Mean)
}

func TestWrite(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, Write(&buffer, testData()))

	output := buffer.String()
	assert.Contains(t, output, "up")
	assert.Contains(t, output, "flat")
}

func TestWriteEmptyDataset(t *testing.T) {
	var buffer bytes.Buffer
	data := &core.ChartData{Series: []core.Series{{Name: "empty"}}}

	// No histogram for an empty series, but the table still renders.
	require.NoError(t, Write(&buffer, data))
	assert.Contains(t, buffer.String(), "empty")
}
