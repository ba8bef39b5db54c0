// Package plot renders engine output as a self-contained HTML page of
// echarts visualizations: PMF bars, CDF steps, sample histograms, and
// regression fits.
package plot

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/statfang/pkg/prob"
)

const axisLabelFormat = "%.4g"

// Options carries the chart theme and canvas size, typically from the
// plot section of the CLI configuration.
type Options struct {
	Theme  string
	Width  string
	Height string
}

func (o Options) initialization() opts.Initialization {
	return opts.Initialization{
		Theme:  o.Theme,
		Width:  o.Width,
		Height: o.Height,
	}
}

// PMFChart builds a bar chart of an empirical probability mass function.
func PMFChart(bins []prob.Bin, o Options) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization()),
		charts.WithTitleOpts(opts.Title{Title: "Empirical PMF"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "probability"}),
	)

	labels := make([]string, len(bins))
	data := make([]opts.BarData, len(bins))

	for i, b := range bins {
		labels[i] = fmt.Sprintf(axisLabelFormat, b.Value)
		data[i] = opts.BarData{Value: b.P}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("PMF", data)

	return bar
}

// CDFChart builds a step line chart of an empirical cumulative distribution.
func CDFChart(bins []prob.Bin, o Options) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization()),
		charts.WithTitleOpts(opts.Title{Title: "Empirical CDF"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "cumulative probability", Max: 1}),
	)

	labels := make([]string, len(bins))
	data := make([]opts.LineData, len(bins))

	for i, b := range bins {
		labels[i] = fmt.Sprintf(axisLabelFormat, b.Value)
		data[i] = opts.LineData{Value: b.P}
	}

	line.SetXAxis(labels)
	line.AddSeries("CDF", data,
		charts.WithLineChartOpts(opts.LineChart{Step: "end"}),
	)

	return line
}

// HistogramChart buckets samples into binCount equal-width bins and builds
// a frequency bar chart. binCount values below 1 are treated as 1.
func HistogramChart(samples []float64, binCount int, o Options) *charts.Bar {
	if binCount < 1 {
		binCount = 1
	}

	lo := slices.Min(samples)
	hi := slices.Max(samples)

	width := (hi - lo) / float64(binCount)
	if width == 0 {
		// All samples identical; one bin holds everything.
		binCount = 1
		width = 1
	}

	counts := make([]int, binCount)

	for _, v := range samples {
		idx := int((v - lo) / width)
		if idx >= binCount {
			idx = binCount - 1
		}

		counts[idx]++
	}

	labels := make([]string, binCount)
	data := make([]opts.BarData, binCount)

	for i, c := range counts {
		left := lo + float64(i)*width
		labels[i] = fmt.Sprintf(axisLabelFormat+"…"+axisLabelFormat, left, left+width)
		data[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization()),
		charts.WithTitleOpts(opts.Title{Title: "Sample histogram"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "bin"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
	)
	bar.SetXAxis(labels)
	bar.AddSeries("frequency", data)

	return bar
}

// RegressionChart overlays the fitted least-squares line on the observed
// points.
func RegressionChart(x, y []float64, slope, intercept float64, o Options) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(o.initialization()),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("y = "+axisLabelFormat+"·x + "+axisLabelFormat, slope, intercept),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y"}),
	)

	labels := make([]string, len(x))
	points := make([]opts.ScatterData, len(x))
	fitted := make([]opts.LineData, len(x))

	for i, xi := range x {
		labels[i] = fmt.Sprintf(axisLabelFormat, xi)
		points[i] = opts.ScatterData{Value: y[i]}
		fitted[i] = opts.LineData{Value: slope*xi + intercept}
	}

	scatter.SetXAxis(labels)
	scatter.AddSeries("observed", points)

	line := charts.NewLine()
	line.SetXAxis(labels)
	line.AddSeries("fitted", fitted)

	scatter.Overlap(line)

	return scatter
}

// WritePage assembles the given charts into one HTML page and writes it.
func WritePage(w io.Writer, chartList ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(chartList...)

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render plot page: %w", err)
	}

	return nil
}

// SummaryBins trims PMF bins for plotting when a dataset has excessive
// distinct values: the chart keeps the maxBins most probable bins so the
// page stays readable. Bins remain in ascending value order.
func SummaryBins(bins []prob.Bin, maxBins int) []prob.Bin {
	if maxBins < 1 || len(bins) <= maxBins {
		return bins
	}

	keep := append([]prob.Bin(nil), bins...)
	slices.SortFunc(keep, func(a, b prob.Bin) int {
		return cmp.Compare(b.P, a.P)
	})
	keep = keep[:maxBins]

	slices.SortFunc(keep, func(a, b prob.Bin) int {
		return cmp.Compare(a.Value, b.Value)
	})

	return keep
}
