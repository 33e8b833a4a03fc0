// SPDX-License-Identifier: MIT

package bondorder

import (
	"math"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atomlath/box"
	"github.com/katalvlaran/atomlath/fft3"
)

// CorrelationOptions configures the radial bond-order correlation function.
type CorrelationOptions struct {
	Low, Cut  float64 // radial range [Low, Cut)
	Bins      int
	Normalize bool // divide by the isotropic ℓ=0 reference

	UseFFT      bool
	Grid        [3]int            // grid nodes per lattice vector for UseFFT
	Transformer fft3.Transformer // optional; its Shape overrides Grid
}

// CorrelationResult is G_ℓ(r) per ℓ on bin centers R.
type CorrelationResult struct {
	R      []float64
	Values map[int][]float64
	Pairs  []float64 // isotropic reference Σ|Y00|² per bin
}

// y00sq is |Y_00|² = 1/4π, the isotropic weight of one pair.
var y00sq = 1 / (4 * math.Pi)

// Correlation accumulates C_ℓ(r) = Σ_{a≠b} Re Σ_m Y_ℓm(a)·conj(Y_ℓm(b)) over
// ordered bond pairs whose midpoints are r apart, and the matching ℓ=0
// reference C_0(r). Both paths share the post-processing:
//
//	normalized:   C_ℓ / (2ℓ+1) / C_0
//	unnormalized: 4π·C_ℓ / (2ℓ+1) / (4π r² · B · Δr)
//
// Empty bins are zero. The gridded path snaps midpoints to the nearest
// node, so both paths agree exactly when midpoints already sit on nodes.
func Correlation(b *box.Box, bonds []Bond, ls []int, o CorrelationOptions) (*CorrelationResult, error) {
	if err := checkL(ls); err != nil {
		return nil, err
	}
	if o.Bins < 1 || o.Cut <= o.Low || o.Low < 0 {
		return nil, errors.Wrapf(ErrInvalidHistogram, "bins=%d range=[%g,%g)", o.Bins, o.Low, o.Cut)
	}
	if len(bonds) == 0 {
		return nil, ErrNoBonds
	}
	fillHarmonics(bonds, ls)

	var (
		raw map[int][]float64
		ref []float64
		err error
	)
	if o.UseFFT {
		raw, ref, err = correlateGrid(b, bonds, ls, o)
	} else {
		raw, ref = correlateDirect(b, bonds, ls, o)
	}
	if err != nil {
		return nil, err
	}

	delta := (o.Cut - o.Low) / float64(o.Bins)
	res := &CorrelationResult{R: make([]float64, o.Bins), Values: map[int][]float64{}, Pairs: ref}
	for i := range res.R {
		res.R[i] = o.Low + delta*(float64(i)+0.5)
	}
	nb := float64(len(bonds))
	for _, l := range ls {
		out := make([]float64, o.Bins)
		for i, c := range raw[l] {
			c /= float64(2*l + 1)
			switch {
			case o.Normalize && ref[i] > 0:
				out[i] = c / ref[i]
			case !o.Normalize && res.R[i] > 0:
				out[i] = c / (res.R[i] * res.R[i] * nb * delta) // 4π cancels
			}
		}
		res.Values[l] = out
	}
	return res, nil
}

func binOf(r float64, o CorrelationOptions) int {
	if r < o.Low || r >= o.Cut {
		return -1
	}
	k := int(math.Floor((r - o.Low) / ((o.Cut - o.Low) / float64(o.Bins))))
	if k >= o.Bins {
		return -1
	}
	return k
}

// correlateDirect visits every unordered pair once and counts it twice.
// Complexity: O(B² · Σ(2ℓ+1)).
func correlateDirect(b *box.Box, bonds []Bond, ls []int, o CorrelationOptions) (map[int][]float64, []float64) {
	raw := make(map[int][]float64, len(ls))
	for _, l := range ls {
		raw[l] = make([]float64, o.Bins)
	}
	ref := make([]float64, o.Bins)
	for a := 0; a < len(bonds); a++ {
		for c := a + 1; c < len(bonds); c++ {
			_, r := b.Distance(bonds[a].Mid, bonds[c].Mid)
			k := binOf(r, o)
			if k < 0 {
				continue
			}
			for _, l := range ls {
				raw[l][k] += 2 * dot(bonds[a].Harmonic[l], bonds[c].Harmonic[l])
			}
			ref[k] += 2 * y00sq
		}
	}
	return raw, ref
}

// correlateGrid computes the circular autocorrelation of the gridded
// harmonic fields: |FFT|², summed over m, transformed back.
//
// Stage 1: snap midpoints to nodes.
// Stage 2: per (ℓ, m) field, forward transform and accumulate |F|².
// Stage 3: inverse transform and bin every node offset by its
// minimum-image length; the zero offset holds self pairs and is skipped.
func correlateGrid(b *box.Box, bonds []Bond, ls []int, o CorrelationOptions) (map[int][]float64, []float64, error) {
	tr := o.Transformer
	if tr == nil {
		if o.Grid[0] < 1 || o.Grid[1] < 1 || o.Grid[2] < 1 {
			return nil, nil, errors.Wrapf(ErrInvalidHistogram, "grid %v", o.Grid)
		}
		p, err := fft3.NewPlan(o.Grid[0], o.Grid[1], o.Grid[2])
		if err != nil {
			return nil, nil, err
		}
		tr = p
	}
	n := tr.Shape()
	size := n[0] * n[1] * n[2]

	node := make([]int, len(bonds))
	for k := range bonds {
		node[k] = fractionalIndex(b, bonds[k].Mid, n)
	}

	autocorrelate := func(value func(k int) complex128, acc []complex128) error {
		field := make([]complex128, size)
		for k := range bonds {
			field[node[k]] += value(k)
		}
		if err := tr.Forward(field); err != nil {
			return err
		}
		for g := range field {
			acc[g] += complex(real(field[g])*real(field[g])+imag(field[g])*imag(field[g]), 0)
		}
		return nil
	}

	spectra := make(map[int][]complex128, len(ls))
	for _, l := range ls {
		acc := make([]complex128, size)
		for m := 0; m <= 2*l; m++ {
			mm := m
			if err := autocorrelate(func(k int) complex128 { return bonds[k].Harmonic[l][mm] }, acc); err != nil {
				return nil, nil, err
			}
		}
		spectra[l] = acc
	}
	iso := make([]complex128, size)
	y00 := complex(math.Sqrt(y00sq), 0)
	if err := autocorrelate(func(int) complex128 { return y00 }, iso); err != nil {
		return nil, nil, err
	}

	for _, acc := range spectra {
		if err := tr.Inverse(acc); err != nil {
			return nil, nil, err
		}
	}
	if err := tr.Inverse(iso); err != nil {
		return nil, nil, err
	}

	raw := make(map[int][]float64, len(ls))
	for _, l := range ls {
		raw[l] = make([]float64, o.Bins)
	}
	ref := make([]float64, o.Bins)
	for i := 0; i < n[0]; i++ {
		for j := 0; j < n[1]; j++ {
			for k := 0; k < n[2]; k++ {
				if i == 0 && j == 0 && k == 0 {
					continue
				}
				f := r3.Vec{
					X: float64(minImage(i, n[0])) / float64(n[0]),
					Y: float64(minImage(j, n[1])) / float64(n[1]),
					Z: float64(minImage(k, n[2])) / float64(n[2]),
				}
				bin := binOf(r3.Norm(b.FromFractional(f)), o)
				if bin < 0 {
					continue
				}
				g := (i*n[1]+j)*n[2] + k
				for _, l := range ls {
					raw[l][bin] += real(spectra[l][g])
				}
				ref[bin] += real(iso[g])
			}
		}
	}
	// bins without pairs only hold transform round-off
	for k := range ref {
		if math.Round(ref[k]/y00sq) == 0 {
			ref[k] = 0
			for _, l := range ls {
				raw[l][k] = 0
			}
		}
	}
	return raw, ref, nil
}

func minImage(i, n int) int {
	if 2*i > n {
		return i - n
	}
	return i
}

// fractionalIndex snaps p to the nearest node of an n grid.
func fractionalIndex(b *box.Box, p r3.Vec, n [3]int) int {
	f := b.ToFractional(b.Remap(p))
	var idx [3]int
	for a, c := range [3]float64{f.X, f.Y, f.Z} {
		k := int(math.Round(c*float64(n[a]))) % n[a]
		if k < 0 {
			k += n[a]
		}
		idx[a] = k
	}
	return (idx[0]*n[1]+idx[1])*n[2] + idx[2]
}
