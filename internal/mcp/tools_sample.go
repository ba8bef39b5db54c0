package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/statfang/pkg/prob/sample"
)

// SampleResult is the structured output of the statfang_sample tool.
type SampleResult struct {
	Kind    string    `json:"kind"`
	Count   int       `json:"count"`
	Samples []float64 `json:"samples"`
}

// handleSample processes statfang_sample tool calls.
func handleSample(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	input SampleInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if input.Count < 1 || input.Count > MaxSampleCount {
		return errorResult(fmt.Errorf("%w: got %d", ErrInvalidCount, input.Count))
	}

	kind, err := sample.ParseKind(input.Kind)
	if err != nil {
		return errorResult(err)
	}

	src := sample.NewSource()
	if input.Seed != 0 {
		src = sample.NewSeededSource(input.Seed)
	}

	samples, err := sample.Generate(src, input.Count, kind, input.Param1, input.Param2)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(SampleResult{
		Kind:    kind.String(),
		Count:   len(samples),
		Samples: samples,
	})
}
