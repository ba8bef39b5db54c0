package prob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRegression(t *testing.T) {
	t.Parallel()

	slope, intercept, err := LinearRegression([]float64{1, 2, 3}, []float64{2, 4, 6})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, slope, 1e-12)
	assert.InDelta(t, 0.0, intercept, 1e-12)
}

func TestLinearRegression_WithIntercept(t *testing.T) {
	t.Parallel()

	slope, intercept, err := LinearRegression([]float64{0, 1, 2}, []float64{1, 3, 5})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, slope, 1e-12)
	assert.InDelta(t, 1.0, intercept, 1e-12)
}

func TestLinearRegression_Empty(t *testing.T) {
	t.Parallel()

	_, _, err := LinearRegression(nil, nil)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLinearRegression_LengthMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := LinearRegression([]float64{1, 2}, []float64{1})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestLinearRegression_ConstantX(t *testing.T) {
	t.Parallel()

	_, _, err := LinearRegression([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrDegenerate)
	require.NotErrorIs(t, err, ErrInvalidInput)
}
