// Package prob implements a discrete probability and statistics engine:
// probability-vector validation, moments, empirical distributions,
// information-theory measures, inference helpers, and combinatorics.
//
// Every operation is a pure function of its arguments and either returns a
// fully valid result or fails outright. Failures wrap one of two sentinel
// errors: [ErrInvalidInput] when caller-supplied data violates a checkable
// precondition, and [ErrDegenerate] when individually valid inputs combine
// into a mathematically undefined computation.
package prob

import "errors"

var (
	// ErrInvalidInput reports caller-supplied data that violates an
	// operation's preconditions: length mismatches, out-of-range
	// probabilities, non-summing probability vectors, empty datasets, or
	// zero denominators that are direct inputs.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerate reports a computation that is mathematically undefined
	// for an otherwise valid combination of inputs, such as a zero standard
	// deviation in correlation or a zero least-squares denominator in
	// regression.
	ErrDegenerate = errors.New("degenerate computation")
)
