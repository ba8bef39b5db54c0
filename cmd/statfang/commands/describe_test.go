package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/statfang/internal/report"
)

func TestDescribe_Dataset_Text(t *testing.T) {
	isolate(t)

	path := writeDoc(t, "data.json", `{"observations": [1, 2, 2, 3, 3, 3]}`)

	out, err := execCommand(t, NewDescribeCommand(), path)
	require.NoError(t, err)
	assert.Contains(t, out, "mean")
	assert.Contains(t, out, "entropy (bits)")
	assert.Contains(t, out, "6 observations")
}

func TestDescribe_Dataset_JSON(t *testing.T) {
	isolate(t)

	path := writeDoc(t, "data.json", `{"observations": [1, 2, 2, 3, 3, 3]}`)

	out, err := execCommand(t, NewDescribeCommand(), path, "--output", "json")
	require.NoError(t, err)

	var summary report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))

	assert.Equal(t, 6, summary.N)
	assert.Equal(t, 3, summary.Distinct)
	assert.InDelta(t, 7.0/3.0, summary.Mean, 1e-12)
	assert.InDelta(t, 1.0, summary.Min, 1e-12)
	assert.InDelta(t, 3.0, summary.Max, 1e-12)
}

func TestDescribe_Distribution(t *testing.T) {
	isolate(t)

	path := writeDoc(t, "dist.json",
		`{"values": [1, 2, 3], "probabilities": [0.2, 0.3, 0.5]}`)

	out, err := execCommand(t, NewDescribeCommand(), path, "--dist", "--output", "json")
	require.NoError(t, err)

	var summary report.Summary
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.InDelta(t, 2.3, summary.Mean, 1e-12)
	assert.InDelta(t, 0.61, summary.Variance, 1e-12)
}

func TestDescribe_ConstantDataset_ReportsNA(t *testing.T) {
	isolate(t)

	path := writeDoc(t, "data.json", `{"observations": [7, 7, 7]}`)

	out, err := execCommand(t, NewDescribeCommand(), path)
	require.NoError(t, err)
	assert.Contains(t, out, "n/a")
}

func TestDescribe_MissingFile(t *testing.T) {
	isolate(t)

	_, err := execCommand(t, NewDescribeCommand(), "no-such-file.json")
	require.Error(t, err)
}

func TestDescribe_BadDistribution(t *testing.T) {
	isolate(t)

	path := writeDoc(t, "dist.json",
		`{"values": [1, 2], "probabilities": [0.5, 0.4]}`)

	_, err := execCommand(t, NewDescribeCommand(), path, "--dist")
	require.Error(t, err)
}
