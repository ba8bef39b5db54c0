// Package main provides the entry point for the statfang CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/statfang/cmd/statfang/commands"
	"github.com/Sumatoshi-tech/statfang/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "statfang",
		Short: "Statfang - discrete probability and statistics engine",
		Long: `Statfang computes descriptive statistics, empirical distributions,
information measures, and regression fits for discrete data.

Commands:
  describe  Summarize a dataset or distribution
  sample    Draw pseudo-random samples
  regress   Fit a least-squares line to paired data
  fit       Chi-square goodness of fit against a reference distribution
  plot      Render distributions and fits as an HTML chart page
  mcp       Start the MCP server for AI agent integration`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./.statfang.yaml, ~/.statfang.yaml)")

	rootCmd.AddCommand(commands.NewDescribeCommand())
	rootCmd.AddCommand(commands.NewSampleCommand())
	rootCmd.AddCommand(commands.NewRegressCommand())
	rootCmd.AddCommand(commands.NewFitCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewMCPCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "statfang %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
