package commands

import (
	"errors"
	"slices"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/statfang/internal/config"
	"github.com/Sumatoshi-tech/statfang/internal/dataset"
	"github.com/Sumatoshi-tech/statfang/internal/report"
	"github.com/Sumatoshi-tech/statfang/pkg/prob"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	var (
		isDistribution bool
		output         string
	)

	cmd := &cobra.Command{
		Use:   "describe <path>",
		Short: "Summarize a dataset or distribution",
		Long: `Compute descriptive statistics for a document: expectation, variance,
standard deviation, skewness, excess kurtosis, Shannon entropy, and range.

Datasets (observation lists) are summarized through their empirical PMF.
Pass --dist when the document is a values/probabilities distribution.`,
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

			summary, err := summarizeDocument(args[0], isDistribution)
			if err != nil {
				return err
			}

			if out == config.OutputJSON {
				return writeJSON(cmd.OutOrStdout(), summary)
			}

			report.WriteSummary(cmd.OutOrStdout(), summary)

			return nil
		},
	}

	cmd.Flags().BoolVar(&isDistribution, "dist", false, "Treat the document as a values/probabilities distribution")
	cmd.Flags().StringVar(&output, "output", "", "Output format: text, json (default: from config)")

	return cmd
}

// summarizeDocument loads the document at path and computes its summary.
func summarizeDocument(path string, isDistribution bool) (report.Summary, error) {
	if isDistribution {
		dist, err := dataset.LoadDistribution(path)
		if err != nil {
			return report.Summary{}, err
		}

		return summarize(path, dist.Values, dist.Probabilities, len(dist.Values))
	}

	ds, err := dataset.LoadDataset(path)
	if err != nil {
		return report.Summary{}, err
	}

	bins, err := prob.PMF(ds.Observations)
	if err != nil {
		return report.Summary{}, err
	}

	values := make([]float64, len(bins))
	probs := make([]float64, len(bins))

	for i, b := range bins {
		values[i] = b.Value
		probs[i] = b.P
	}

	return summarize(path, values, probs, len(ds.Observations))
}

// summarize computes the full statistic block over a discrete distribution.
func summarize(source string, values, probs []float64, n int) (report.Summary, error) {
	mean, err := prob.Expectation(values, probs)
	if err != nil {
		return report.Summary{}, err
	}

	variance, err := prob.Variance(values, probs)
	if err != nil {
		return report.Summary{}, err
	}

	stddev, err := prob.StdDev(values, probs)
	if err != nil {
		return report.Summary{}, err
	}

	entropy, err := prob.ShannonEntropy(probs)
	if err != nil {
		return report.Summary{}, err
	}

	skewness, err := shapeOrNil(prob.Skewness, values, probs)
	if err != nil {
		return report.Summary{}, err
	}

	kurtosis, err := shapeOrNil(prob.Kurtosis, values, probs)
	if err != nil {
		return report.Summary{}, err
	}

	return report.Summary{
		Source:   source,
		N:        n,
		Distinct: len(values),
		Mean:     mean,
		Variance: variance,
		StdDev:   stddev,
		Skewness: skewness,
		Kurtosis: kurtosis,
		Entropy:  entropy,
		Min:      slices.Min(values),
		Max:      slices.Max(values),
	}, nil
}

// shapeOrNil maps a degenerate distribution to nil so a constant dataset
// still produces a summary.
func shapeOrNil(fn func([]float64, []float64) (float64, error), values, probs []float64) (*float64, error) {
	v, err := fn(values, probs)
	if errors.Is(err, prob.ErrDegenerate) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &v, nil
}
