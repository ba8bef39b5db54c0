// Package commands implements CLI command handlers for statfang.
package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/statfang/internal/config"
)

// resolveConfig loads the CLI configuration, honoring the root --config flag
// when the command runs under the real root. Commands executed standalone
// (tests) fall back to the default search path.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path = ""
	}

	return config.Load(path)
}

// resolveOutput picks the output format: the command's --output flag when
// set, the configured default otherwise.
func resolveOutput(flagValue string, cfg *config.Config) (string, error) {
	out := flagValue
	if out == "" {
		out = cfg.Output
	}

	if out != config.OutputText && out != config.OutputJSON {
		return "", fmt.Errorf("%w: output %q (want %q or %q)",
			config.ErrInvalidConfig, out, config.OutputText, config.OutputJSON)
	}

	return out, nil
}

// writeJSON renders v as indented JSON on w.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}

	return nil
}
