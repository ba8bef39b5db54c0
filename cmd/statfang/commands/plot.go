package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/statfang/internal/dataset"
	"github.com/Sumatoshi-tech/statfang/internal/plot"
	"github.com/Sumatoshi-tech/statfang/pkg/prob"
)

// ErrNothingToPlot is returned when neither --data nor --series is given.
var ErrNothingToPlot = errors.New("nothing to plot: pass --data and/or --series")

// defaultHistogramBins is the histogram bucket count when --bins is not set.
const defaultHistogramBins = 20

// defaultMaxPMFBins caps the PMF chart for datasets with many distinct values.
const defaultMaxPMFBins = 50

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	var (
		dataPath   string
		seriesPath string
		outPath    string
		bins       int
		maxBins    int
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render distributions and fits as an HTML chart page",
		Long: `Render charts into a self-contained HTML page.

With --data the page holds the empirical PMF, CDF, and a histogram of the
dataset. With --series it adds the least-squares fit over the paired data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dataPath == "" && seriesPath == "" {
				return ErrNothingToPlot
			}

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			opts := plot.Options{
				Theme:  cfg.Plot.Theme,
				Width:  cfg.Plot.Width,
				Height: cfg.Plot.Height,
			}

			chartList, err := buildCharts(dataPath, seriesPath, bins, maxBins, opts)
			if err != nil {
				return err
			}

			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create plot page: %w", err)
			}
			defer file.Close()

			return plot.WritePage(file, chartList...)
		},
	}

	cmd.Flags().StringVar(&dataPath, "data", "", "Dataset document to chart (PMF, CDF, histogram)")
	cmd.Flags().StringVar(&seriesPath, "series", "", "X/Y series document to chart (regression fit)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "statfang.html", "Output HTML file")
	cmd.Flags().IntVar(&bins, "bins", defaultHistogramBins, "Histogram bucket count")
	cmd.Flags().IntVar(&maxBins, "max-bins", defaultMaxPMFBins, "Maximum PMF bars (most probable bins kept)")

	return cmd
}

// buildCharts assembles the chart list for the requested documents.
func buildCharts(dataPath, seriesPath string, bins, maxBins int, opts plot.Options) ([]components.Charter, error) {
	var chartList []components.Charter

	if dataPath != "" {
		ds, err := dataset.LoadDataset(dataPath)
		if err != nil {
			return nil, err
		}

		pmf, err := prob.PMF(ds.Observations)
		if err != nil {
			return nil, err
		}

		cdf, err := prob.CDF(ds.Observations)
		if err != nil {
			return nil, err
		}

		chartList = append(chartList,
			plot.PMFChart(plot.SummaryBins(pmf, maxBins), opts),
			plot.CDFChart(cdf, opts),
			plot.HistogramChart(ds.Observations, bins, opts),
		)
	}

	if seriesPath != "" {
		series, err := dataset.LoadXYSeries(seriesPath)
		if err != nil {
			return nil, err
		}

		slope, intercept, err := prob.LinearRegression(series.X, series.Y)
		if err != nil {
			return nil, err
		}

		chartList = append(chartList, plot.RegressionChart(series.X, series.Y, slope, intercept, opts))
	}

	return chartList, nil
}
