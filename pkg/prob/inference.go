package prob

import (
	"fmt"
	"math"
)

// Interval is a two-sided confidence interval.
type Interval struct {
	Lower float64
	Upper float64
}

// ConditionalProbability returns P(A|B) = P(A∩B) / P(B). Both scalars must
// lie in [0, 1]; pB == 0 and pAB > pB are [ErrInvalidInput] since either
// makes the quotient meaningless as a probability.
func ConditionalProbability(pAB, pB float64) (float64, error) {
	err := CheckProbability(pAB)
	if err != nil {
		return 0, err
	}

	err = CheckProbability(pB)
	if err != nil {
		return 0, err
	}

	if pB == 0 {
		return 0, fmt.Errorf("%w: conditioning on zero-probability event", ErrInvalidInput)
	}

	if pAB > pB {
		return 0, fmt.Errorf("%w: joint probability %g exceeds marginal %g",
			ErrInvalidInput, pAB, pB)
	}

	return pAB / pB, nil
}

// BayesTheorem returns P(A|B) = P(B|A)·P(A) / P(B). All three scalars must
// lie in [0, 1] and pB must be non-zero.
func BayesTheorem(pBgivenA, pA, pB float64) (float64, error) {
	for _, p := range []float64{pBgivenA, pA, pB} {
		err := CheckProbability(p)
		if err != nil {
			return 0, err
		}
	}

	if pB == 0 {
		return 0, fmt.Errorf("%w: conditioning on zero-probability event", ErrInvalidInput)
	}

	return pBgivenA * pA / pB, nil
}

// ChiSquare returns the goodness-of-fit statistic Σ (oᵢ−eᵢ)²/eᵢ. The two
// vectors must have equal lengths and every expected value must be non-zero.
func ChiSquare(observed, expected []float64) (float64, error) {
	if len(observed) != len(expected) {
		return 0, fmt.Errorf("%w: %d observed against %d expected",
			ErrInvalidInput, len(observed), len(expected))
	}

	var stat float64

	for i, o := range observed {
		e := expected[i]
		if e == 0 {
			return 0, fmt.Errorf("%w: zero expected frequency at index %d",
				ErrInvalidInput, i)
		}

		d := o - e
		stat += d * d / e
	}

	return stat, nil
}

// ConfidenceIntervalNormal returns the two-sided confidence interval for a
// normal mean: mean ± z·stddev/√n, where z is the normal quantile for the
// requested confidence level (z ≈ 1.95996 at 0.95). n must be positive and
// confidence must lie in the open interval (0, 1).
func ConfidenceIntervalNormal(mean, stddev float64, n int, confidence float64) (Interval, error) {
	if n <= 0 {
		return Interval{}, fmt.Errorf("%w: sample size %d", ErrInvalidInput, n)
	}

	if confidence <= 0 || confidence >= 1 {
		return Interval{}, fmt.Errorf("%w: confidence level %g outside (0, 1)",
			ErrInvalidInput, confidence)
	}

	z := math.Sqrt2 * math.Erfinv(confidence)
	margin := z * stddev / math.Sqrt(float64(n))

	return Interval{Lower: mean - margin, Upper: mean + margin}, nil
}
