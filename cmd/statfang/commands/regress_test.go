package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/statfang/internal/report"
)

func TestRegress_PerfectLine(t *testing.T) {
	isolate(t)

	path := writeDoc(t, "series.json", `{"x": [1, 2, 3], "y": [2, 4, 6]}`)

	out, err := execCommand(t, NewRegressCommand(), path, "--output", "json")
	require.NoError(t, err)

	var result report.Regression
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 2.0, result.Slope, 1e-12)
	assert.InDelta(t, 0.0, result.Intercept, 1e-12)
	assert.Equal(t, 3, result.N)
}

func TestRegress_Text(t *testing.T) {
	isolate(t)

	path := writeDoc(t, "series.json", `{"x": [0, 1], "y": [1, 3]}`)

	out, err := execCommand(t, NewRegressCommand(), path)
	require.NoError(t, err)
	assert.Contains(t, out, "slope")
	assert.Contains(t, out, "y = ")
}

func TestRegress_ConstantX(t *testing.T) {
	isolate(t)

	path := writeDoc(t, "series.json", `{"x": [4, 4, 4], "y": [1, 2, 3]}`)

	_, err := execCommand(t, NewRegressCommand(), path)
	require.Error(t, err)
}

func TestRegress_LengthMismatch(t *testing.T) {
	isolate(t)

	path := writeDoc(t, "series.json", `{"x": [1, 2], "y": [1]}`)

	_, err := execCommand(t, NewRegressCommand(), path)
	require.Error(t, err)
}
