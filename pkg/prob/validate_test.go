package prob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidProbabilities(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidProbabilities([]float64{0.2, 0.3, 0.5}))
	assert.True(t, ValidProbabilities([]float64{1}))
	assert.False(t, ValidProbabilities([]float64{0.2, 0.3}))
	assert.False(t, ValidProbabilities(nil))
}

func TestValidProbabilities_Tolerance(t *testing.T) {
	t.Parallel()

	// Ten entries of 0.1 accumulate rounding error well inside Epsilon.
	probs := make([]float64, 10)
	for i := range probs {
		probs[i] = 0.1
	}

	assert.True(t, ValidProbabilities(probs))
	assert.False(t, ValidProbabilities([]float64{0.5, 0.5 + 1e-6}))
}

func TestValidProbabilities_NoNegativityCheck(t *testing.T) {
	t.Parallel()

	// Sum-only semantics: negative entries that still sum to 1 pass.
	assert.True(t, ValidProbabilities([]float64{-0.5, 1.5}))
}

func TestCheckProbability(t *testing.T) {
	t.Parallel()

	require.NoError(t, CheckProbability(0))
	require.NoError(t, CheckProbability(0.5))
	require.NoError(t, CheckProbability(1))

	require.ErrorIs(t, CheckProbability(-0.1), ErrInvalidInput)
	require.ErrorIs(t, CheckProbability(1.1), ErrInvalidInput)
}
