package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMCPCommand_Shape(t *testing.T) {
	t.Parallel()

	cmd := NewMCPCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "mcp", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("debug"))
}

func TestInitMCPObservability(t *testing.T) {
	t.Parallel()

	providers, err := initMCPObservability(true)
	require.NoError(t, err)
	require.NotNil(t, providers.Logger)

	t.Cleanup(func() {
		_ = providers.Shutdown(t.Context())
	})
}
