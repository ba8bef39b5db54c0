package prob

import (
	"fmt"
	"math"
)

// Factorial returns n! as a float64 by iterative product, with 0! = 1.
// Negative n is [ErrInvalidInput]. The result is exact through n = 170 and
// overflows to +Inf beyond; use [LogFactorial] for large n.
func Factorial(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial of negative %d", ErrInvalidInput, n)
	}

	result := 1.0

	for i := 2; i <= n; i++ {
		result *= float64(i)
	}

	return result, nil
}

// Combination returns n choose k via the factorial ratio n!/(k!·(n−k)!).
// k > n or a negative argument is [ErrInvalidInput]. Precision compounds
// from [Factorial]; use [LogCombination] for large n.
func Combination(n, k int) (float64, error) {
	err := checkChoose(n, k)
	if err != nil {
		return 0, err
	}

	nf, _ := Factorial(n)
	kf, _ := Factorial(k)
	nkf, _ := Factorial(n - k)

	return nf / (kf * nkf), nil
}

// Permutation returns the count of ordered k-arrangements n!/(n−k)!.
// k > n or a negative argument is [ErrInvalidInput].
func Permutation(n, k int) (float64, error) {
	err := checkChoose(n, k)
	if err != nil {
		return 0, err
	}

	nf, _ := Factorial(n)
	nkf, _ := Factorial(n - k)

	return nf / nkf, nil
}

// GaussSum returns 1 + 2 + … + n = n·(n+1)/2. Negative n is
// [ErrInvalidInput].
func GaussSum(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: Gauss sum of negative %d", ErrInvalidInput, n)
	}

	return float64(n) * float64(n+1) / 2, nil
}

// LogFactorial returns ln(n!) via the log-gamma function, remaining finite
// where [Factorial] overflows.
func LogFactorial(n int) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: factorial of negative %d", ErrInvalidInput, n)
	}

	lg, _ := math.Lgamma(float64(n) + 1)

	return lg, nil
}

// LogCombination returns ln(n choose k) in the log domain.
func LogCombination(n, k int) (float64, error) {
	err := checkChoose(n, k)
	if err != nil {
		return 0, err
	}

	ln, _ := LogFactorial(n)
	lk, _ := LogFactorial(k)
	lnk, _ := LogFactorial(n - k)

	return ln - lk - lnk, nil
}

// LogPermutation returns ln(n!/(n−k)!) in the log domain.
func LogPermutation(n, k int) (float64, error) {
	err := checkChoose(n, k)
	if err != nil {
		return 0, err
	}

	ln, _ := LogFactorial(n)
	lnk, _ := LogFactorial(n - k)

	return ln - lnk, nil
}

func checkChoose(n, k int) error {
	if n < 0 || k < 0 {
		return fmt.Errorf("%w: negative arguments n=%d k=%d", ErrInvalidInput, n, k)
	}

	if k > n {
		return fmt.Errorf("%w: k=%d exceeds n=%d", ErrInvalidInput, k, n)
	}

	return nil
}
