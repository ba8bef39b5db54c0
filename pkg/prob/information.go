package prob

import (
	"fmt"
	"math"
)

// ShannonEntropy returns −Σ p·log₂(p) in bits over the strictly positive
// entries of probs; 0·log 0 terms are skipped. The vector must pass
// [ValidProbabilities] or the result is [ErrInvalidInput].
func ShannonEntropy(probs []float64) (float64, error) {
	if !ValidProbabilities(probs) {
		return 0, fmt.Errorf("%w: probabilities do not sum to 1", ErrInvalidInput)
	}

	var entropy float64

	for _, p := range probs {
		if p <= 0 {
			continue
		}

		entropy -= p * math.Log2(p)
	}

	return entropy, nil
}

// MutualInformation returns Σ p(x,y)·log₂(p(x,y)/(p(x)·p(y))) in bits over
// the cells where the joint and both marginals are strictly positive.
// The joint table must be non-empty with len(joint) == len(marginalX) rows
// and len(marginalY) columns per row.
func MutualInformation(joint [][]float64, marginalX, marginalY []float64) (float64, error) {
	if len(joint) == 0 || len(marginalX) == 0 || len(marginalY) == 0 {
		return 0, fmt.Errorf("%w: empty joint distribution", ErrInvalidInput)
	}

	if len(joint) != len(marginalX) {
		return 0, fmt.Errorf("%w: %d joint rows against %d x marginals",
			ErrInvalidInput, len(joint), len(marginalX))
	}

	var info float64

	for i, row := range joint {
		if len(row) != len(marginalY) {
			return 0, fmt.Errorf("%w: joint row %d has %d columns against %d y marginals",
				ErrInvalidInput, i, len(row), len(marginalY))
		}

		for j, pxy := range row {
			if pxy <= 0 || marginalX[i] <= 0 || marginalY[j] <= 0 {
				continue
			}

			info += pxy * math.Log2(pxy/(marginalX[i]*marginalY[j]))
		}
	}

	return info, nil
}
