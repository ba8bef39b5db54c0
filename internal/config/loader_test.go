package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// No t.Parallel: the test pins CWD and HOME to keep the config search
	// away from real dotfiles.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, OutputText, cfg.Output)
	assert.Equal(t, DefaultSampleCount, cfg.Sample.Count)
	assert.Equal(t, DefaultPlotTheme, cfg.Plot.Theme)
	assert.Equal(t, DefaultPlotWidth, cfg.Plot.Width)
	assert.Equal(t, DefaultPlotHeight, cfg.Plot.Height)
	assert.Zero(t, cfg.Sample.Seed)
}

func TestLoad_ExplicitFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "statfang.yaml")
	content := "output: json\nsample:\n  count: 50\n  seed: 42\nplot:\n  theme: dark\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, cfg.Output)
	assert.Equal(t, 50, cfg.Sample.Count)
	assert.Equal(t, uint64(42), cfg.Sample.Seed)
	assert.Equal(t, "dark", cfg.Plot.Theme)
	// Unset values keep their defaults.
	assert.Equal(t, DefaultPlotWidth, cfg.Plot.Width)
}

func TestLoad_InvalidOutput(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "statfang.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: xml\n"), 0o600))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_InvalidSampleCount(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "statfang.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sample:\n  count: -5\n"), 0o600))

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := Config{Output: OutputText, Sample: SampleConfig{Count: 10}}
	require.NoError(t, valid.Validate())

	invalid := Config{Output: "csv", Sample: SampleConfig{Count: 10}}
	require.ErrorIs(t, invalid.Validate(), ErrInvalidConfig)
}
