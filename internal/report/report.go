// Package report renders engine results for the terminal: summary tables,
// regression fits, and test statistics.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

const valueFormat = "%.6g"

// Summary is the descriptive-statistics block for one dataset. Skewness and
// Kurtosis are nil when the dataset is degenerate (zero standard deviation);
// the renderer reports those rows as n/a and JSON omits them. Pointers
// instead of NaN because encoding/json rejects NaN.
type Summary struct {
	Source   string   `json:"source"`
	N        int      `json:"n"`
	Distinct int      `json:"distinct"`
	Mean     float64  `json:"mean"`
	Variance float64  `json:"variance"`
	StdDev   float64  `json:"stddev"`
	Skewness *float64 `json:"skewness,omitempty"`
	Kurtosis *float64 `json:"kurtosis,omitempty"`
	Entropy  float64  `json:"entropy_bits"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
}

// WriteSummary renders the summary as a two-column table with a colored
// heading.
func WriteSummary(w io.Writer, s Summary) {
	heading := color.New(color.FgHiCyan, color.Bold).Sprintf(
		"%s — %s observations", s.Source, humanize.Comma(int64(s.N)))
	fmt.Fprintln(w, heading)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Statistic", "Value"})

	tw.AppendRow(table.Row{"distinct values", humanize.Comma(int64(s.Distinct))})
	tw.AppendRow(table.Row{"mean", formatValue(s.Mean)})
	tw.AppendRow(table.Row{"variance", formatValue(s.Variance)})
	tw.AppendRow(table.Row{"stddev", formatValue(s.StdDev)})
	tw.AppendRow(table.Row{"skewness", formatOptional(s.Skewness)})
	tw.AppendRow(table.Row{"excess kurtosis", formatOptional(s.Kurtosis)})
	tw.AppendRow(table.Row{"entropy (bits)", formatValue(s.Entropy)})
	tw.AppendRow(table.Row{"min", formatValue(s.Min)})
	tw.AppendRow(table.Row{"max", formatValue(s.Max)})

	tw.Render()
}

// Regression is a fitted simple linear model.
type Regression struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	N         int     `json:"n"`
}

// WriteRegression renders the fitted line and the equation form.
func WriteRegression(w io.Writer, r Regression) {
	heading := color.New(color.FgHiCyan, color.Bold).Sprintf(
		"least-squares fit over %s points", humanize.Comma(int64(r.N)))
	fmt.Fprintln(w, heading)

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendRow(table.Row{"slope", formatValue(r.Slope)})
	tw.AppendRow(table.Row{"intercept", formatValue(r.Intercept)})
	tw.Render()

	fmt.Fprintf(w, "y = "+valueFormat+"·x + "+valueFormat+"\n", r.Slope, r.Intercept)
}

// ChiSquare is a goodness-of-fit result.
type ChiSquare struct {
	Statistic float64 `json:"statistic"`
	Bins      int     `json:"bins"`
}

// WriteChiSquare renders the test statistic.
func WriteChiSquare(w io.Writer, c ChiSquare) {
	heading := color.New(color.FgHiCyan, color.Bold).Sprintf(
		"chi-square goodness of fit, %d bins", c.Bins)
	fmt.Fprintln(w, heading)
	fmt.Fprintf(w, "χ² = "+valueFormat+"\n", c.Statistic)
}

func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}

	return fmt.Sprintf(valueFormat, v)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "n/a"
	}

	return formatValue(*v)
}
