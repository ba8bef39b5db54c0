package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/statfang/internal/config"
	"github.com/Sumatoshi-tech/statfang/internal/dataset"
	"github.com/Sumatoshi-tech/statfang/internal/report"
	"github.com/Sumatoshi-tech/statfang/pkg/prob"
)

// NewFitCommand creates the fit command.
func NewFitCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fit <dataset-path> <distribution-path>",
		Short: "Chi-square goodness of fit against a reference distribution",
		Long: `Test how well a dataset matches a reference discrete distribution.

Observed counts come from the dataset, expected counts from the reference
probabilities scaled by the observation total. Every observation must be one
of the reference values.`,
		Args:          cobra.ExactArgs(2),
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

			ds, err := dataset.LoadDataset(args[0])
			if err != nil {
				return err
			}

			dist, err := dataset.LoadDistribution(args[1])
			if err != nil {
				return err
			}

			result, err := goodnessOfFit(ds.Observations, dist)
			if err != nil {
				return err
			}

			if out == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			report.WriteChiSquare(cmd.OutOrStdout(), result)

			return nil
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "Output format: text, json (default: from config)")

	return cmd
}

// goodnessOfFit computes the chi-square statistic between the observed
// frequencies of data and the expected frequencies under dist.
func goodnessOfFit(data []float64, dist *dataset.Distribution) (report.ChiSquare, error) {
	counts := make(map[float64]int, len(dist.Values))
	for _, v := range dist.Values {
		counts[v] = 0
	}

	for _, obs := range data {
		_, known := counts[obs]
		if !known {
			return report.ChiSquare{}, fmt.Errorf(
				"%w: observation %g is not a value of the reference distribution",
				prob.ErrInvalidInput, obs)
		}

		counts[obs]++
	}

	total := float64(len(data))
	observed := make([]float64, len(dist.Values))
	expected := make([]float64, len(dist.Values))

	for i, v := range dist.Values {
		observed[i] = float64(counts[v])
		expected[i] = dist.Probabilities[i] * total
	}

	stat, err := prob.ChiSquare(observed, expected)
	if err != nil {
		return report.ChiSquare{}, err
	}

	return report.ChiSquare{Statistic: stat, Bins: len(dist.Values)}, nil
}
