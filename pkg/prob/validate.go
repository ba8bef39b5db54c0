package prob

import (
	"fmt"
	"math"
)

// Epsilon is the absolute tolerance applied when checking that a probability
// vector sums to 1.
const Epsilon = 1e-10

// ValidProbabilities reports whether probs sums to 1 within [Epsilon].
// It performs no negativity check on individual entries; callers that need a
// single probability validated use [CheckProbability].
func ValidProbabilities(probs []float64) bool {
	var sum float64

	for _, p := range probs {
		sum += p
	}

	return math.Abs(sum-1) <= Epsilon
}

// CheckProbability returns [ErrInvalidInput] unless p lies in [0, 1].
func CheckProbability(p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%w: probability %g outside [0, 1]", ErrInvalidInput, p)
	}

	return nil
}

// checkDiscrete validates the parallel-array form of a discrete random
// variable: equal lengths and a probability vector summing to 1.
func checkDiscrete(values, probs []float64) error {
	if len(values) != len(probs) {
		return fmt.Errorf("%w: %d values against %d probabilities",
			ErrInvalidInput, len(values), len(probs))
	}

	if !ValidProbabilities(probs) {
		return fmt.Errorf("%w: probabilities do not sum to 1", ErrInvalidInput)
	}

	return nil
}
