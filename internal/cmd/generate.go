package cmd

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/crateci/featmatrix/internal/manifest"
	"github.com/crateci/featmatrix/internal/matrix"
	"github.com/crateci/featmatrix/internal/util"
)

var appendOutput bool

func init() {
	rootCmd.Flags().BoolVar(&appendOutput, "append", false,
		"append to the output file instead of replacing it ($GITHUB_OUTPUT convention)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cargoPath, outPath := args[0], args[1]

	m, err := manifest.Load(cargoPath)
	if err != nil {
		return err
	}

	record, err := matrix.Build(m.Features()).Encode()
	if err != nil {
		return fmt.Errorf("encoding matrix: %w", err)
	}

	// The matrix is fully computed before the output path is touched, so
	// a bad manifest never leaves a truncated output file behind.
	if appendOutput {
		return appendRecord(outPath, record)
	}
	return util.AtomicWriteFile(outPath, record, 0644)
}

// appendRecord adds one record line to a shared output file such as
// $GITHUB_OUTPUT. An advisory lock keeps concurrent workflow steps from
// interleaving their writes.
func appendRecord(path string, record []byte) error {
	lock := flock.New(path)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("locking %s: %w", path, err)
	}
	defer func() { _ = lock.Unlock() }()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}

	if _, err := f.Write(append(record, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("appending to %s: %w", path, err)
	}
	return f.Close()
}
