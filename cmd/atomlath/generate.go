// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/atomlath/lattice"
	"github.com/katalvlaran/atomlath/snapshot"
)

func newGenerateCmd() *cobra.Command {
	var (
		reps   []int
		a      float64
		noise  float64
		seed   int64
		output string
	)
	kinds := make([]string, 0, len(lattice.Kinds()))
	for _, k := range lattice.Kinds() {
		kinds = append(kinds, string(k))
	}
	cmd := &cobra.Command{
		Use:       "generate <" + strings.Join(kinds, "|") + ">",
		Short:     "Write a crystal snapshot",
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(reps) != 3 {
				return errors.Newf("--reps needs three values, got %d", len(reps))
			}
			if a <= 0 || noise < 0 {
				return errors.Newf("--a must be positive and --noise not negative")
			}
			opts := []lattice.Option{
				lattice.WithRepetitions(reps[0], reps[1], reps[2]),
				lattice.WithLatticeConstant(a),
			}
			if noise > 0 {
				opts = append(opts, lattice.WithNoise(noise), lattice.WithSeed(seed))
			}
			sys, err := lattice.System(lattice.Kind(args[0]), opts...)
			if err != nil {
				return err
			}
			snap, err := snapshot.FromSystem(sys)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				fh, err := os.Create(output)
				if err != nil {
					return errors.Wrapf(err, "create %s", output)
				}
				defer fh.Close()
				w = fh
			}
			return snapshot.Write(w, snap)
		},
	}
	f := cmd.Flags()
	f.IntSliceVar(&reps, "reps", []int{3, 3, 3}, "unit cell repetitions along x,y,z")
	f.Float64Var(&a, "a", 1, "lattice constant")
	f.Float64Var(&noise, "noise", 0, "gaussian displacement sigma")
	f.Int64Var(&seed, "seed", 1, "noise seed")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
