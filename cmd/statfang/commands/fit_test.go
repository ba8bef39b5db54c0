package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/statfang/internal/dataset"
	"github.com/Sumatoshi-tech/statfang/internal/report"
)

func TestFit_PerfectMatch(t *testing.T) {
	isolate(t)

	dataPath := writeDoc(t, "data.json", `{"observations": [1, 1, 2, 2]}`)
	distPath := writeDoc(t, "dist.json",
		`{"values": [1, 2], "probabilities": [0.5, 0.5]}`)

	out, err := execCommand(t, NewFitCommand(), dataPath, distPath, "--output", "json")
	require.NoError(t, err)

	var result report.ChiSquare
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 0.0, result.Statistic, 1e-12)
	assert.Equal(t, 2, result.Bins)
}

func TestFit_KnownStatistic(t *testing.T) {
	isolate(t)

	// 10 observations, expected split 50/50: observed 7/3 against 5/5
	// gives (7-5)^2/5 + (3-5)^2/5 = 1.6.
	dataPath := writeDoc(t, "data.json",
		`{"observations": [1, 1, 1, 1, 1, 1, 1, 2, 2, 2]}`)
	distPath := writeDoc(t, "dist.json",
		`{"values": [1, 2], "probabilities": [0.5, 0.5]}`)

	out, err := execCommand(t, NewFitCommand(), dataPath, distPath, "--output", "json")
	require.NoError(t, err)

	var result report.ChiSquare
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.InDelta(t, 1.6, result.Statistic, 1e-12)
}

func TestFit_ObservationOutsideReference(t *testing.T) {
	isolate(t)

	dataPath := writeDoc(t, "data.json", `{"observations": [1, 2, 9]}`)
	distPath := writeDoc(t, "dist.json",
		`{"values": [1, 2], "probabilities": [0.5, 0.5]}`)

	_, err := execCommand(t, NewFitCommand(), dataPath, distPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a value of the reference distribution")
}

func TestGoodnessOfFit_CountsPerValue(t *testing.T) {
	isolate(t)

	dist := &dataset.Distribution{
		Values:        []float64{1, 2, 3},
		Probabilities: []float64{0.25, 0.25, 0.5},
	}

	result, err := goodnessOfFit([]float64{1, 2, 3, 3}, dist)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, result.Statistic, 1e-12)
	assert.Equal(t, 3, result.Bins)
}
