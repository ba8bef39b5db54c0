package sample

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/statfang/pkg/prob"
)

// Kind identifies a supported continuous distribution family. The closed
// enum replaces string-tag dispatch so an unsupported family cannot reach
// [Generate] from typed code; user-facing strings go through [ParseKind].
type Kind int

const (
	// KindUniform is the uniform distribution on [p1, p2).
	KindUniform Kind = iota
	// KindNormal is the normal distribution with mean p1 and stddev p2.
	KindNormal
	// KindExponential is the exponential distribution with rate p1.
	KindExponential
)

// String returns the lower-case family name.
func (k Kind) String() string {
	switch k {
	case KindUniform:
		return "uniform"
	case KindNormal:
		return "normal"
	case KindExponential:
		return "exponential"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a user-supplied family name to its Kind. Unrecognized names
// wrap [prob.ErrInvalidInput].
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(name) {
	case "uniform":
		return KindUniform, nil
	case "normal":
		return KindNormal, nil
	case "exponential":
		return KindExponential, nil
	default:
		return 0, fmt.Errorf("%w: unknown distribution %q", prob.ErrInvalidInput, name)
	}
}

// Generate draws exactly n independent samples of the given kind. For
// KindUniform p1, p2 are the bounds; for KindNormal the mean and stddev; for
// KindExponential p1 is the rate and p2 is ignored. A negative n or an
// out-of-range kind wraps [prob.ErrInvalidInput].
func Generate(src Source, n int, kind Kind, p1, p2 float64) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative sample count %d", prob.ErrInvalidInput, n)
	}

	var draw func() float64

	switch kind {
	case KindUniform:
		draw = func() float64 { return Uniform(src, p1, p2) }
	case KindNormal:
		draw = func() float64 { return Normal(src, p1, p2) }
	case KindExponential:
		draw = func() float64 { return Exponential(src, p1) }
	default:
		return nil, fmt.Errorf("%w: unknown distribution kind %d", prob.ErrInvalidInput, int(kind))
	}

	samples := make([]float64, n)

	for i := range samples {
		samples[i] = draw()
	}

	return samples, nil
}
