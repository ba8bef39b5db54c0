package prob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShannonEntropy_FairCoin(t *testing.T) {
	t.Parallel()

	got, err := ShannonEntropy([]float64{0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestShannonEntropy_UniformFour(t *testing.T) {
	t.Parallel()

	got, err := ShannonEntropy([]float64{0.25, 0.25, 0.25, 0.25})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got, 1e-12)
}

func TestShannonEntropy_Deterministic(t *testing.T) {
	t.Parallel()

	// Zero-probability entries are skipped, so a point mass has zero entropy.
	got, err := ShannonEntropy([]float64{1, 0, 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-12)
}

func TestShannonEntropy_InvalidVector(t *testing.T) {
	t.Parallel()

	_, err := ShannonEntropy([]float64{0.5, 0.4})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMutualInformation_Independent(t *testing.T) {
	t.Parallel()

	joint := [][]float64{
		{0.25, 0.25},
		{0.25, 0.25},
	}

	got, err := MutualInformation(joint, []float64{0.5, 0.5}, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.0, got, 1e-12)
}

func TestMutualInformation_PerfectlyCorrelated(t *testing.T) {
	t.Parallel()

	joint := [][]float64{
		{0.5, 0},
		{0, 0.5},
	}

	got, err := MutualInformation(joint, []float64{0.5, 0.5}, []float64{0.5, 0.5})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)
}

func TestMutualInformation_Empty(t *testing.T) {
	t.Parallel()

	_, err := MutualInformation(nil, []float64{1}, []float64{1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMutualInformation_DimensionMismatch(t *testing.T) {
	t.Parallel()

	joint := [][]float64{{0.5, 0.5}}

	_, err := MutualInformation(joint, []float64{0.5, 0.5}, []float64{0.5, 0.5})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = MutualInformation(joint, []float64{1}, []float64{1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
