package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/statfang/internal/config"
	"github.com/Sumatoshi-tech/statfang/internal/dataset"
	"github.com/Sumatoshi-tech/statfang/internal/report"
	"github.com/Sumatoshi-tech/statfang/pkg/prob"
)

// NewRegressCommand creates the regress command.
func NewRegressCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "regress <series-path>",
		Short: "Fit a least-squares line to paired data",
		Long: `Fit the line y = slope*x + intercept to an x/y series document by
ordinary least squares.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			out, err := resolveOutput(output, cfg)
			if err != nil {
				return err
			}

			series, err := dataset.LoadXYSeries(args[0])
			if err != nil {
				return err
			}

			slope, intercept, err := prob.LinearRegression(series.X, series.Y)
			if err != nil {
				return err
			}

			result := report.Regression{
				Slope:     slope,
				Intercept: intercept,
				N:         len(series.X),
			}

			if out == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			report.WriteRegression(cmd.OutOrStdout(), result)

			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format: text, json (default: from config)")

	return cmd
}
