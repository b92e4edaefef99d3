package plot

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/samber/lo"
)

// renderChart writes the full chart page for the configured kind.
func (c *Chart) renderChart(w io.Writer) error {
	switch c.kind {
	case KindBar:
		return c.renderBar(w)
	case KindScatter:
		return c.renderScatter(w)
	default:
		return c.renderLine(w)
	}
}

func (c *Chart) renderLine(w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(c.globalOptions()...)

	line.SetXAxis(c.xLabels())
	for _, series := range c.data.Series {
		items := lo.Map(series.YValues, func(v float64, _ int) opts.LineData {
			return opts.LineData{Value: v}
		})
		line.AddSeries(series.Name, items)
	}
	line.SetSeriesOptions(charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	line.AddJSFuncs(c.scriptContent)
	return line.Render(w)
}

func (c *Chart) renderBar(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(c.globalOptions()...)

	bar.SetXAxis(c.xLabels())
	for _, series := range c.data.Series {
		items := lo.Map(series.YValues, func(v float64, _ int) opts.BarData {
			return opts.BarData{Value: v}
		})
		bar.AddSeries(series.Name, items)
	}

	bar.AddJSFuncs(c.scriptContent)
	return bar.Render(w)
}

func (c *Chart) renderScatter(w io.Writer) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(c.globalOptions()...)

	scatter.SetXAxis(c.xLabels())
	for _, series := range c.data.Series {
		items := lo.Map(series.YValues, func(v float64, _ int) opts.ScatterData {
			return opts.ScatterData{Value: v}
		})
		scatter.AddSeries(series.Name, items)
	}

	scatter.AddJSFuncs(c.scriptContent)
	return scatter.Render(w)
}

// globalOptions translates the chart configuration into go-echarts options.
func (c *Chart) globalOptions() []charts.GlobalOpts {
	assetsHost := ""
	if c.assetsDir != "" {
		assetsHost = localAssetsRoute
	}

	options := []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       c.pageTitle,
			Width:           fmt.Sprintf("%dpx", c.width),
			Height:          fmt.Sprintf("%dpx", c.height),
			BackgroundColor: c.background,
			AssetsHost:      assetsHost,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      c.data.Title,
			TitleStyle: &opts.TextStyle{FontSize: c.fontSize},
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: c.data.XAxisLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: c.data.YAxisLabel}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{
			Show:      opts.Bool(true),
			TextStyle: &opts.TextStyle{FontSize: c.fontSize},
		}),
	}

	if c.toolbar {
		options = append(options, charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{Show: opts.Bool(true)},
				DataZoom:    &opts.ToolBoxFeatureDataZoom{Show: opts.Bool(true)},
				Restore:     &opts.ToolBoxFeatureRestore{Show: opts.Bool(true)},
			},
		}))
	}

	return options
}

// xLabels renders the shared x-values as axis categories, preserving file
// order.
func (c *Chart) xLabels() []string {
	return lo.Map(c.data.XValues, func(v float64, _ int) string {
		return strconv.FormatFloat(v, 'g', -1, 64)
	})
}
