package prob

import (
	"cmp"
	"fmt"
	"slices"
)

// Bin pairs a distinct observed value with a probability. PMF and CDF results
// are ordered by ascending Value so cumulative sums are monotonic and
// meaningful; a sorted slice stands in for the unordered built-in map.
type Bin struct {
	Value float64
	P     float64
}

// PMF builds the empirical probability mass function of data: each distinct
// observation mapped to count/n, ascending by value. An empty dataset is
// [ErrInvalidInput].
func PMF(data []float64) ([]Bin, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty dataset", ErrInvalidInput)
	}

	counts := make(map[float64]int, len(data))

	for _, v := range data {
		counts[v]++
	}

	n := float64(len(data))
	bins := make([]Bin, 0, len(counts))

	for v, c := range counts {
		bins = append(bins, Bin{Value: v, P: float64(c) / n})
	}

	slices.SortFunc(bins, func(a, b Bin) int {
		return cmp.Compare(a.Value, b.Value)
	})

	return bins, nil
}

// CDF builds the empirical cumulative distribution function of data by
// accumulating the PMF in ascending value order. Each cumulative value is
// capped at 1 to absorb floating-point rounding.
func CDF(data []float64) ([]Bin, error) {
	bins, err := PMF(data)
	if err != nil {
		return nil, err
	}

	var cum float64

	for i := range bins {
		cum += bins[i].P
		bins[i].P = min(cum, 1.0)
	}

	return bins, nil
}
