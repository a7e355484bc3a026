// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvarray/barray"
	"github.com/katalvlaran/lvarray/internal/view"
	"github.com/spf13/cobra"
)

// showFlags collects the flags of `barray show`.
type showFlags struct {
	filler int
	value  int
	first  int
	last   int
	sets   []string
	slice  string
	slide  string
	window string
	strict bool
}

func newShowCmd() *cobra.Command {
	var f showFlags
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Build an array from flags and print a window of it",
		Long: `Build const(value, first, last), apply the --set updates, optionally
--slice and --slide the result, then print every index of --window.

Example:
  barray show --first 1 --last 5 --set 3=99 --slice 2:4 --slide 2:10 --window 8:14`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := f.build()
			if err != nil {
				return err
			}
			wf, wl := f.first-1, f.last+1
			if f.window != "" {
				if wf, wl, err = parsePair(f.window, ':'); err != nil {
					return fmt.Errorf("--window: %w", err)
				}
			}
			if err := view.WriteWindow(cmd.OutOrStdout(), a, wf, wl); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), view.Muted(a.String(), colorFor(cmd)))

			return err
		},
	}
	cmd.Flags().IntVar(&f.filler, "filler", 0, "value read outside the declared range")
	cmd.Flags().IntVar(&f.value, "value", 0, "value stored on [first, last]")
	cmd.Flags().IntVar(&f.first, "first", 1, "first declared index")
	cmd.Flags().IntVar(&f.last, "last", 5, "last declared index")
	cmd.Flags().StringSliceVar(&f.sets, "set", nil, "point updates as INDEX=VALUE (repeatable)")
	cmd.Flags().StringVar(&f.slice, "slice", "", "restrict to FIRST:LAST after the updates")
	cmd.Flags().StringVar(&f.slide, "slide", "", "re-index as OLD:NEW after slicing")
	cmd.Flags().StringVar(&f.window, "window", "", "printed range FIRST:LAST (default first-1:last+1)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "panic on contract violations instead of staying total")

	return cmd
}

// build applies the flags in order: const, set, slice, slide.
func (f showFlags) build() (barray.Array[int], error) {
	if err := barray.ValidateRange(f.first, f.last); err != nil {
		return barray.Array[int]{}, err
	}
	opt := barray.WithLenient()
	if f.strict {
		opt = barray.WithStrict()
	}
	a := barray.Of(f.filler, opt).Const(f.value, f.first, f.last)

	for _, s := range f.sets {
		i, v, err := parsePair(s, '=')
		if err != nil {
			return a, fmt.Errorf("--set: %w", err)
		}
		a = a.Set(i, v)
	}
	if f.slice != "" {
		sf, sl, err := parsePair(f.slice, ':')
		if err != nil {
			return a, fmt.Errorf("--slice: %w", err)
		}
		a = barray.Slice(a, sf, sl)
	}
	if f.slide != "" {
		of, nf, err := parsePair(f.slide, ':')
		if err != nil {
			return a, fmt.Errorf("--slide: %w", err)
		}
		a = barray.Slide(a, of, nf)
	}

	return a, nil
}

// parsePair parses "X<sep>Y" into two ints.
func parsePair(s string, sep byte) (int, int, error) {
	left, right, ok := strings.Cut(s, string(sep))
	if !ok {
		return 0, 0, fmt.Errorf("%q: want X%cY", s, sep)
	}
	x, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", s, err)
	}

	return x, y, nil
}
