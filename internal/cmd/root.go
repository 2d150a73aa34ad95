// Package cmd implements the featmatrix command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crateci/featmatrix/internal/style"
)

var rootCmd = &cobra.Command{
	Use:   "featmatrix <cargo_file> <output_file>",
	Short: "Generate a CI build matrix from Cargo feature flags",
	Long: `Generate a GitHub Actions build matrix covering every combination of a
crate's optional features.

featmatrix reads the [features] table of the given Cargo.toml, computes
the power set of the declared features (excluding the implicit "default"
feature), and writes a single output line:

  matrix={"include": [{"features": "..."}, ...]}

ready for capture as a workflow output variable and expansion with
fromJSON in a matrix strategy.

Examples:
  featmatrix Cargo.toml matrix.out       # write (atomically, truncating)
  featmatrix Cargo.toml "$GITHUB_OUTPUT" --append`,
	Args:          cobra.ExactArgs(2),
	RunE:          runGenerate,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix(), err)
		return 1
	}
	return 0
}
