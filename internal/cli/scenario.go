// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/lvarray/barray"
	"github.com/spf13/cobra"
)

// scenario is a named, printable walk through the API.
type scenario struct {
	name  string
	short string
	run   func(w io.Writer) error
}

var scenarios = []scenario{
	{"slice-slide", "const, set, slice, then slide to a new origin", runSliceSlide},
	{"concat", "concatenate two constant arrays", runConcat},
}

func scenarioNames() []string {
	names := make([]string, 0, len(scenarios))
	for _, s := range scenarios {
		names = append(names, s.name)
	}

	return names
}

func newScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "scenario [name...]",
		Short:     "Replay the end-to-end scenarios",
		Long:      "Replay the end-to-end scenarios step by step. Without arguments every scenario runs.",
		ValidArgs: scenarioNames(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, s := range scenarios {
				if len(args) > 0 && !slices.Contains(args, s.name) {
					continue
				}
				fmt.Fprintf(w, "== %s: %s\n", s.name, s.short)
				if err := s.run(w); err != nil {
					return fmt.Errorf("scenario %s: %w", s.name, err)
				}
			}

			return nil
		},
	}

	return cmd
}

// expect fails a scenario step whose observed read differs from want.
func expect(step string, got, want int) error {
	if got != want {
		return fmt.Errorf("%s: got %d, want %d", step, got, want)
	}

	return nil
}

func runSliceSlide(w io.Writer) error {
	a := barray.Const(0, 1, 5)
	fmt.Fprintf(w, "a  = const(0, 1, 5)      %v\n", a)

	a2 := a.Set(3, 99)
	fmt.Fprintf(w, "a2 = set(a, 3, 99)       %v\n", a2)
	if err := expect("get(a2, 3)", a2.Get(3), 99); err != nil {
		return err
	}
	if err := expect("get(a2, 2)", a2.Get(2), 0); err != nil {
		return err
	}

	b := barray.Slice(a2, 2, 4)
	fmt.Fprintf(w, "b  = slice(a2, 2, 4)     %v  has_bounds(b, 2, 4)=%t\n", b, barray.HasBounds(b, 2, 4))
	if err := expect("get(b, 3)", b.Get(3), 99); err != nil {
		return err
	}

	c := barray.Slide(b, 2, 10)
	fmt.Fprintf(w, "c  = slide(b, 2, 10)     %v\n", c)

	return expect("get(c, 11)", c.Get(11), 99)
}

func runConcat(w io.Writer) error {
	a := barray.Const(1, 1, 3)
	b := barray.Const(2, 1, 3)
	c := barray.Concat(a, 1, 3, b, 1, 3, 6)
	fmt.Fprintf(w, "c = concat(const(1,1,3), 1, 3, const(2,1,3), 1, 3, 6)  %v\n", c)
	for i := 1; i <= 6; i++ {
		want := 1
		if i > 3 {
			want = 2
		}
		if err := expect(fmt.Sprintf("get(c, %d)", i), c.Get(i), want); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "has_bounds(c, 1, 6)=%t\n", barray.HasBounds(c, 1, 6))

	return nil
}
