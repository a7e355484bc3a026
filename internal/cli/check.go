// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/katalvlaran/lvarray/internal/view"
	"github.com/katalvlaran/lvarray/lawcheck"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	opts := lawcheck.DefaultOptions()
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify the array laws on random inputs",
		Long: `Check every law of the array abstraction on random inputs.

Runs are reproducible: the same --seed prints the same report whatever
--parallel is. The command exits non-zero when any law fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := lawcheck.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if err := view.WriteReport(cmd.OutOrStdout(), rep, colorFor(cmd)); err != nil {
				return err
			}
			if !rep.OK() {
				return errLawsFailed
			}

			return nil
		},
	}
	cmd.Flags().Int64Var(&opts.Seed, "seed", opts.Seed, "base seed; 0 selects the fixed default")
	cmd.Flags().IntVarP(&opts.Trials, "trials", "n", opts.Trials, "random cases per law")
	cmd.Flags().IntVarP(&opts.Parallel, "parallel", "p", opts.Parallel, "number of laws checked concurrently")
	cmd.Flags().IntVar(&opts.MaxSpan, "max-span", opts.MaxSpan, "size of generated ranges")

	return cmd
}
