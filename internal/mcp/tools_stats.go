package mcp

import (
	"context"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/statfang/pkg/prob"
)

// DescribeResult is the structured output of the statfang_describe tool.
// Skewness and Kurtosis are nil for degenerate distributions (zero standard
// deviation) and omitted from the JSON; pointers instead of NaN because
// encoding/json rejects NaN.
type DescribeResult struct {
	Expectation float64  `json:"expectation"`
	Variance    float64  `json:"variance"`
	StdDev      float64  `json:"std_dev"`
	Skewness    *float64 `json:"skewness,omitempty"`
	Kurtosis    *float64 `json:"kurtosis,omitempty"`
	EntropyBits float64  `json:"entropy_bits"`
}

// handleDescribe processes statfang_describe tool calls.
func handleDescribe(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input DescribeInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateArrays(input.Values, input.Probabilities)
	if err != nil {
		return errorResult(err)
	}

	res, err := describeDistribution(input.Values, input.Probabilities)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(res)
}

// describeDistribution computes the full summary for one distribution.
// Skewness and kurtosis need a nonzero standard deviation; a degenerate
// distribution omits them rather than failing the whole call.
func describeDistribution(values, probs []float64) (DescribeResult, error) {
	mean, err := prob.Expectation(values, probs)
	if err != nil {
		return DescribeResult{}, err
	}

	variance, err := prob.Variance(values, probs)
	if err != nil {
		return DescribeResult{}, err
	}

	stddev, err := prob.StdDev(values, probs)
	if err != nil {
		return DescribeResult{}, err
	}

	entropy, err := prob.ShannonEntropy(probs)
	if err != nil {
		return DescribeResult{}, err
	}

	res := DescribeResult{
		Expectation: mean,
		Variance:    variance,
		StdDev:      stddev,
		EntropyBits: entropy,
	}

	res.Skewness, err = shapeMoment(prob.Skewness, values, probs)
	if err != nil {
		return DescribeResult{}, fmt.Errorf("skewness: %w", err)
	}

	res.Kurtosis, err = shapeMoment(prob.Kurtosis, values, probs)
	if err != nil {
		return DescribeResult{}, fmt.Errorf("kurtosis: %w", err)
	}

	return res, nil
}

// shapeMoment maps a degenerate distribution to nil instead of an error.
func shapeMoment(fn func([]float64, []float64) (float64, error), values, probs []float64) (*float64, error) {
	v, err := fn(values, probs)
	if errors.Is(err, prob.ErrDegenerate) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &v, nil
}

// EntropyResult is the structured output of the statfang_entropy tool.
type EntropyResult struct {
	EntropyBits float64 `json:"entropy_bits"`
}

// handleEntropy processes statfang_entropy tool calls.
func handleEntropy(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input EntropyInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateArrays(input.Probabilities)
	if err != nil {
		return errorResult(err)
	}

	entropy, err := prob.ShannonEntropy(input.Probabilities)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(EntropyResult{EntropyBits: entropy})
}

// RegressResult is the structured output of the statfang_regress tool.
type RegressResult struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// handleRegress processes statfang_regress tool calls.
func handleRegress(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input RegressInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateArrays(input.X, input.Y)
	if err != nil {
		return errorResult(err)
	}

	slope, intercept, err := prob.LinearRegression(input.X, input.Y)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(RegressResult{Slope: slope, Intercept: intercept})
}

// ChiSquareResult is the structured output of the statfang_chisquare tool.
type ChiSquareResult struct {
	Statistic float64 `json:"statistic"`
}

// handleChiSquare processes statfang_chisquare tool calls.
func handleChiSquare(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input ChiSquareInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	err := validateArrays(input.Observed, input.Expected)
	if err != nil {
		return errorResult(err)
	}

	stat, err := prob.ChiSquare(input.Observed, input.Expected)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(ChiSquareResult{Statistic: stat})
}
