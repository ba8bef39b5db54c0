package prob

import (
	"fmt"
	"math"
)

// Expectation returns the probability-weighted mean Σ values[i]·probs[i].
// Accumulation is plain double precision; no compensated summation.
func Expectation(values, probs []float64) (float64, error) {
	err := checkDiscrete(values, probs)
	if err != nil {
		return 0, err
	}

	var sum float64

	for i, v := range values {
		sum += v * probs[i]
	}

	return sum, nil
}

// Variance returns the second central moment Σ (values[i]−μ)²·probs[i].
func Variance(values, probs []float64) (float64, error) {
	mu, err := Expectation(values, probs)
	if err != nil {
		return 0, err
	}

	var sum float64

	for i, v := range values {
		d := v - mu
		sum += d * d * probs[i]
	}

	return sum, nil
}

// StdDev returns the square root of [Variance]. A zero variance yields 0,
// not an error.
func StdDev(values, probs []float64) (float64, error) {
	variance, err := Variance(values, probs)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(variance), nil
}

// Covariance returns Σ (x[i]−μx)·(y[i]−μy)·probs[i] for two random variables
// sharing one probability vector. x, y, and probs must have equal lengths.
func Covariance(x, y, probs []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d x values against %d y values",
			ErrInvalidInput, len(x), len(y))
	}

	muX, err := Expectation(x, probs)
	if err != nil {
		return 0, err
	}

	muY, err := Expectation(y, probs)
	if err != nil {
		return 0, err
	}

	var sum float64

	for i := range x {
		sum += (x[i] - muX) * (y[i] - muY) * probs[i]
	}

	return sum, nil
}

// Correlation returns the Pearson correlation coefficient
// Cov(x, y) / (σx·σy). A zero standard deviation on either side is
// [ErrDegenerate]: the inputs are individually valid but the quotient is
// undefined.
func Correlation(x, y, probs []float64) (float64, error) {
	cov, err := Covariance(x, y, probs)
	if err != nil {
		return 0, err
	}

	sigmaX, err := StdDev(x, probs)
	if err != nil {
		return 0, err
	}

	sigmaY, err := StdDev(y, probs)
	if err != nil {
		return 0, err
	}

	if sigmaX == 0 || sigmaY == 0 {
		return 0, fmt.Errorf("%w: zero standard deviation in correlation", ErrDegenerate)
	}

	return cov / (sigmaX * sigmaY), nil
}

// Skewness returns the third standardized central moment
// Σ ((values[i]−μ)/σ)³·probs[i]. A zero standard deviation is [ErrDegenerate].
func Skewness(values, probs []float64) (float64, error) {
	return standardizedMoment(values, probs, 3, 0)
}

// Kurtosis returns the excess kurtosis: the fourth standardized central
// moment minus 3, so the normal distribution reports 0. A zero standard
// deviation is [ErrDegenerate].
func Kurtosis(values, probs []float64) (float64, error) {
	const normalKurtosis = 3

	return standardizedMoment(values, probs, 4, normalKurtosis)
}

// standardizedMoment computes Σ ((v−μ)/σ)^order·p minus shift.
func standardizedMoment(values, probs []float64, order int, shift float64) (float64, error) {
	mu, err := Expectation(values, probs)
	if err != nil {
		return 0, err
	}

	sigma, err := StdDev(values, probs)
	if err != nil {
		return 0, err
	}

	if sigma == 0 {
		return 0, fmt.Errorf("%w: zero standard deviation in moment of order %d",
			ErrDegenerate, order)
	}

	var sum float64

	for i, v := range values {
		sum += math.Pow((v-mu)/sigma, float64(order)) * probs[i]
	}

	return sum - shift, nil
}
