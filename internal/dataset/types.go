// Package dataset loads and saves the numeric document types the CLI and
// MCP surfaces feed into the engine: raw observation sets, discrete
// distributions, paired series for regression, and joint distribution
// tables. Documents are JSON or YAML, optionally LZ4-compressed.
package dataset

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/statfang/pkg/prob"
)

// ErrUnsupportedFormat reports a file extension no codec handles.
var ErrUnsupportedFormat = errors.New("unsupported document format")

// Dataset is an unordered multiset of real observations.
type Dataset struct {
	Observations []float64 `json:"observations" yaml:"observations"`
}

// Validate returns an error when the dataset is empty.
func (d *Dataset) Validate() error {
	if len(d.Observations) == 0 {
		return fmt.Errorf("%w: dataset has no observations", prob.ErrInvalidInput)
	}

	return nil
}

// Distribution is a discrete random variable in parallel-array form.
// The probability-axiom checks (sum within tolerance, entries in range)
// belong to the engine; Validate only enforces document shape.
type Distribution struct {
	Values        []float64 `json:"values" yaml:"values"`
	Probabilities []float64 `json:"probabilities" yaml:"probabilities"`
}

// Validate returns an error when the parallel arrays are empty or of
// unequal length.
func (d *Distribution) Validate() error {
	if len(d.Values) == 0 {
		return fmt.Errorf("%w: distribution has no values", prob.ErrInvalidInput)
	}

	if len(d.Values) != len(d.Probabilities) {
		return fmt.Errorf("%w: %d values against %d probabilities",
			prob.ErrInvalidInput, len(d.Values), len(d.Probabilities))
	}

	return nil
}

// XYSeries is a paired sample for regression and covariance inputs.
type XYSeries struct {
	X []float64 `json:"x" yaml:"x"`
	Y []float64 `json:"y" yaml:"y"`
}

// Validate returns an error when the series is empty or the pairing is
// broken.
func (s *XYSeries) Validate() error {
	if len(s.X) == 0 {
		return fmt.Errorf("%w: series has no points", prob.ErrInvalidInput)
	}

	if len(s.X) != len(s.Y) {
		return fmt.Errorf("%w: %d x values against %d y values",
			prob.ErrInvalidInput, len(s.X), len(s.Y))
	}

	return nil
}

// Joint is a two-dimensional distribution table with its marginals.
type Joint struct {
	Joint     [][]float64 `json:"joint" yaml:"joint"`
	MarginalX []float64   `json:"marginal_x" yaml:"marginal_x"`
	MarginalY []float64   `json:"marginal_y" yaml:"marginal_y"`
}

// Validate returns an error when the table dimensions do not match the
// marginals.
func (j *Joint) Validate() error {
	if len(j.Joint) == 0 || len(j.MarginalX) == 0 || len(j.MarginalY) == 0 {
		return fmt.Errorf("%w: empty joint distribution", prob.ErrInvalidInput)
	}

	if len(j.Joint) != len(j.MarginalX) {
		return fmt.Errorf("%w: %d joint rows against %d x marginals",
			prob.ErrInvalidInput, len(j.Joint), len(j.MarginalX))
	}

	for i, row := range j.Joint {
		if len(row) != len(j.MarginalY) {
			return fmt.Errorf("%w: joint row %d has %d columns against %d y marginals",
				prob.ErrInvalidInput, i, len(row), len(j.MarginalY))
		}
	}

	return nil
}
