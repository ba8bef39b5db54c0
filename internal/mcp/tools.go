package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool name constants.
const (
	ToolNameDescribe  = "statfang_describe"
	ToolNameEntropy   = "statfang_entropy"
	ToolNameRegress   = "statfang_regress"
	ToolNameChiSquare = "statfang_chisquare"
	ToolNameSample    = "statfang_sample"
)

// Input size limits.
const (
	// MaxInputLength is the maximum number of elements accepted in any
	// input array.
	MaxInputLength = 1 << 20

	// MaxSampleCount is the maximum number of draws per statfang_sample call.
	MaxSampleCount = 10_000_000
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyInput indicates a required array parameter is empty.
	ErrEmptyInput = errors.New("input arrays are required and must not be empty")
	// ErrInputTooLarge indicates an input array exceeds the size limit.
	ErrInputTooLarge = errors.New("input exceeds maximum length")
	// ErrInvalidCount indicates the sample count is out of range.
	ErrInvalidCount = errors.New("count must be between 1 and the maximum sample count")
)

// Input types (auto-generate JSON schemas via struct tags).

// DescribeInput is the input schema for the statfang_describe tool.
type DescribeInput struct {
	Values        []float64 `json:"values"        jsonschema:"outcome values of the discrete distribution"`
	Probabilities []float64 `json:"probabilities" jsonschema:"probability of each outcome (must sum to 1)"`
}

// EntropyInput is the input schema for the statfang_entropy tool.
type EntropyInput struct {
	Probabilities []float64 `json:"probabilities" jsonschema:"probability of each outcome (must sum to 1)"`
}

// RegressInput is the input schema for the statfang_regress tool.
type RegressInput struct {
	X []float64 `json:"x" jsonschema:"independent variable observations"`
	Y []float64 `json:"y" jsonschema:"dependent variable observations (same length as x)"`
}

// ChiSquareInput is the input schema for the statfang_chisquare tool.
type ChiSquareInput struct {
	Observed []float64 `json:"observed" jsonschema:"observed frequencies"`
	Expected []float64 `json:"expected" jsonschema:"expected frequencies (same length, all positive)"`
}

// SampleInput is the input schema for the statfang_sample tool.
type SampleInput struct {
	Kind   string  `json:"kind"           jsonschema:"distribution kind: uniform, normal, or exponential"`
	Count  int     `json:"count"          jsonschema:"number of samples to draw"`
	Param1 float64 `json:"param1"         jsonschema:"first parameter (uniform: min, normal: mean, exponential: rate)"`
	Param2 float64 `json:"param2,omitempty" jsonschema:"second parameter (uniform: max, normal: stddev; unused for exponential)"`
	Seed   uint64  `json:"seed,omitempty" jsonschema:"optional seed for reproducible draws (0 means time-seeded)"`
}

// Output type (used as structured output for generic AddTool).

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}

// validateArrays checks common array input constraints.
func validateArrays(arrays ...[]float64) error {
	for _, arr := range arrays {
		if len(arr) == 0 {
			return ErrEmptyInput
		}

		if len(arr) > MaxInputLength {
			return fmt.Errorf("%w: %d elements (max %d)", ErrInputTooLarge, len(arr), MaxInputLength)
		}
	}

	return nil
}
