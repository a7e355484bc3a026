// SPDX-License-Identifier: MIT

// Package cli provides the barray command: end-to-end scenarios, the law
// checker and an array inspector.
package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvarray/internal/view"
	"github.com/spf13/cobra"
)

// errLawsFailed makes `barray check` exit non-zero when a law fails.
var errLawsFailed = errors.New("some laws failed")

// newRootCmd assembles the command tree. Every call returns a fresh tree so
// tests can run commands side by side.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "barray",
		Short: "Bounded functional arrays",
		Long: `barray exercises immutable arrays indexed by integers, where every index
outside a declared range reads a fixed filler value.

Subcommands:
  - scenario   replay the documented end-to-end scenarios
  - check      verify the array laws on random inputs
  - show       build an array from flags and print a window of it`,
		SilenceUsage: true,
	}
	cmd.AddCommand(newScenarioCmd(), newCheckCmd(), newShowCmd())

	return cmd
}

// colorFor enables styling only when the command writes to a terminal.
func colorFor(cmd *cobra.Command) bool {
	return view.IsTTY(cmd.OutOrStdout())
}

// Execute runs the root command and exits with status 1 on error.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
