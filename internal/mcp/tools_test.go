package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultText extracts the first text content from a tool result.
func resultText(t *testing.T, result *mcpsdk.CallToolResult) string {
	t.Helper()

	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)

	return text.Text
}

func TestHandleDescribe_DieDistribution(t *testing.T) {
	t.Parallel()

	input := DescribeInput{
		Values:        []float64{1, 2, 3},
		Probabilities: []float64{0.2, 0.3, 0.5},
	}

	result, output, err := handleDescribe(context.Background(), nil, input)
	require.NoError(t, err)
	require.False(t, result.IsError)

	res, ok := output.Data.(DescribeResult)
	require.True(t, ok)
	assert.InDelta(t, 2.3, res.Expectation, 1e-12)
	assert.InDelta(t, 0.61, res.Variance, 1e-12)
	assert.Positive(t, res.EntropyBits)
}

func TestHandleDescribe_DegenerateOmitsShape(t *testing.T) {
	t.Parallel()

	input := DescribeInput{
		Values:        []float64{5},
		Probabilities: []float64{1},
	}

	result, output, err := handleDescribe(context.Background(), nil, input)
	require.NoError(t, err)
	require.False(t, result.IsError)

	res, ok := output.Data.(DescribeResult)
	require.True(t, ok)
	assert.InDelta(t, 5.0, res.Expectation, 1e-12)
	assert.Nil(t, res.Skewness)
	assert.Nil(t, res.Kurtosis)
	assert.NotContains(t, resultText(t, result), "skewness")
}

func TestHandleDescribe_EmptyInput(t *testing.T) {
	t.Parallel()

	result, _, err := handleDescribe(context.Background(), nil, DescribeInput{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "must not be empty")
}

func TestHandleDescribe_BadProbabilitySum(t *testing.T) {
	t.Parallel()

	input := DescribeInput{
		Values:        []float64{1, 2},
		Probabilities: []float64{0.5, 0.4},
	}

	result, _, err := handleDescribe(context.Background(), nil, input)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleEntropy_FairCoin(t *testing.T) {
	t.Parallel()

	input := EntropyInput{Probabilities: []float64{0.5, 0.5}}

	result, output, err := handleEntropy(context.Background(), nil, input)
	require.NoError(t, err)
	require.False(t, result.IsError)

	res, ok := output.Data.(EntropyResult)
	require.True(t, ok)
	assert.InDelta(t, 1.0, res.EntropyBits, 1e-12)

	var decoded EntropyResult
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &decoded))
	assert.InDelta(t, 1.0, decoded.EntropyBits, 1e-12)
}

func TestHandleRegress_PerfectLine(t *testing.T) {
	t.Parallel()

	input := RegressInput{
		X: []float64{1, 2, 3},
		Y: []float64{2, 4, 6},
	}

	result, output, err := handleRegress(context.Background(), nil, input)
	require.NoError(t, err)
	require.False(t, result.IsError)

	res, ok := output.Data.(RegressResult)
	require.True(t, ok)
	assert.InDelta(t, 2.0, res.Slope, 1e-12)
	assert.InDelta(t, 0.0, res.Intercept, 1e-12)
}

func TestHandleRegress_ConstantX(t *testing.T) {
	t.Parallel()

	input := RegressInput{
		X: []float64{4, 4, 4},
		Y: []float64{1, 2, 3},
	}

	result, _, err := handleRegress(context.Background(), nil, input)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleChiSquare_KnownStatistic(t *testing.T) {
	t.Parallel()

	input := ChiSquareInput{
		Observed: []float64{10, 20, 30},
		Expected: []float64{15, 15, 30},
	}

	result, output, err := handleChiSquare(context.Background(), nil, input)
	require.NoError(t, err)
	require.False(t, result.IsError)

	res, ok := output.Data.(ChiSquareResult)
	require.True(t, ok)
	assert.InDelta(t, 10.0/3.0, res.Statistic, 1e-12)
}

func TestHandleChiSquare_LengthMismatch(t *testing.T) {
	t.Parallel()

	input := ChiSquareInput{
		Observed: []float64{10, 20},
		Expected: []float64{15},
	}

	result, _, err := handleChiSquare(context.Background(), nil, input)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleSample_SeededReproducible(t *testing.T) {
	t.Parallel()

	input := SampleInput{
		Kind:   "uniform",
		Count:  16,
		Param1: 0,
		Param2: 1,
		Seed:   42,
	}

	_, first, err := handleSample(context.Background(), nil, input)
	require.NoError(t, err)

	_, second, err := handleSample(context.Background(), nil, input)
	require.NoError(t, err)

	firstRes, ok := first.Data.(SampleResult)
	require.True(t, ok)

	secondRes, ok := second.Data.(SampleResult)
	require.True(t, ok)

	assert.Equal(t, firstRes.Samples, secondRes.Samples)

	for _, v := range firstRes.Samples {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestHandleSample_UnknownKind(t *testing.T) {
	t.Parallel()

	input := SampleInput{Kind: "poisson", Count: 10}

	result, _, err := handleSample(context.Background(), nil, input)
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleSample_CountOutOfRange(t *testing.T) {
	t.Parallel()

	for _, count := range []int{0, -1, MaxSampleCount + 1} {
		result, _, err := handleSample(context.Background(), nil, SampleInput{Kind: "normal", Count: count})
		require.NoError(t, err)
		assert.True(t, result.IsError)
	}
}
