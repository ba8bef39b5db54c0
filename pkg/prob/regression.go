package prob

import "fmt"

// LinearRegression fits y = slope·x + intercept by closed-form least squares.
// Empty or unequal-length inputs are [ErrInvalidInput]; a zero denominator
// n·Σx² − (Σx)² (all x identical) is [ErrDegenerate].
func LinearRegression(x, y []float64) (slope, intercept float64, err error) {
	if len(x) == 0 || len(y) == 0 {
		return 0, 0, fmt.Errorf("%w: empty regression input", ErrInvalidInput)
	}

	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("%w: %d x values against %d y values",
			ErrInvalidInput, len(x), len(y))
	}

	n := float64(len(x))

	var sumX, sumY, sumXY, sumXX float64

	for i, xi := range x {
		sumX += xi
		sumY += y[i]
		sumXY += xi * y[i]
		sumXX += xi * xi
	}

	den := n*sumXX - sumX*sumX
	if den == 0 {
		return 0, 0, fmt.Errorf("%w: zero least-squares denominator", ErrDegenerate)
	}

	slope = (n*sumXY - sumX*sumY) / den
	intercept = (sumY - slope*sumX) / n

	return slope, intercept, nil
}
