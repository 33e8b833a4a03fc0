// SPDX-License-Identifier: MIT

package bondorder

import (
	"math"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/atomlath/atoms"
)

// EntropyOptions configures the local pair entropy.
type EntropyOptions struct {
	Sigma  float64 // gaussian smearing of g(r)
	Rho    float64 // number density; 0 uses the local density
	RStart float64 // integration start, > 0
	RStop  float64 // integration end; 0 uses each atom's cutoff
	H      float64 // integration step
	KB     float64 // Boltzmann constant in the caller's units
}

// DefaultEntropyOptions uses σ=0.2, r ∈ [0.001, cutoff], h=0.001, kB=1.
func DefaultEntropyOptions() EntropyOptions {
	return EntropyOptions{Sigma: 0.2, RStart: 0.001, H: 0.001, KB: 1}
}

// Entropy sets each atom's local pair entropy
//
//	s = −2π ρ k_B ∫ (g ln g − g + 1) r² dr
//
// with g(r) = Σ_j exp(−(r−r_ij)²/2σ²) / (4π ρ r² sqrt(2πσ²)), integrated by
// the trapezoidal rule. The local density is n / (4/3 π rc³).
// Complexity: O(N · k · (RStop−RStart)/H).
func Entropy(sys *atoms.System, o EntropyOptions) error {
	if o.Sigma <= 0 || o.H <= 0 || o.RStart <= 0 {
		return errors.Wrapf(ErrBadEntropyRange, "sigma=%g h=%g rstart=%g", o.Sigma, o.H, o.RStart)
	}
	list := sys.Atoms()
	norm := math.Sqrt(2 * math.Pi * o.Sigma * o.Sigma)
	for i := range list {
		a := &list[i]
		n := a.Neighbors.Len()
		if n == 0 {
			if a.Ghost {
				continue
			}
			return errors.Wrapf(ErrNoNeighbors, "atom %d (id %d)", i, a.ID)
		}
		rstop := o.RStop
		if rstop == 0 {
			rstop = a.Cutoff
		}
		if rstop <= o.RStart {
			return errors.Wrapf(ErrBadEntropyRange, "atom %d: rstop %g <= rstart %g", i, rstop, o.RStart)
		}
		rho := o.Rho
		if rho == 0 {
			rho = float64(n) / (4.0 / 3.0 * math.Pi * a.Cutoff * a.Cutoff * a.Cutoff)
		}

		steps := int((rstop - o.RStart) / o.H)
		var integral float64
		for k := 0; k <= steps; k++ {
			r := o.RStart + float64(k)*o.H
			var g float64
			for _, nb := range a.Neighbors.Entries() {
				d := r - nb.Distance
				g += math.Exp(-d * d / (2 * o.Sigma * o.Sigma))
			}
			g /= 4 * math.Pi * rho * r * r * norm

			f := 1.0 - g
			if g > 0 {
				f += g * math.Log(g)
			}
			f *= r * r
			if k == 0 || k == steps {
				f *= 0.5
			}
			integral += f
		}
		a.Entropy = -2 * math.Pi * rho * o.KB * integral * o.H
	}
	return nil
}

// AverageEntropy sets AvgEntropy = (own + Σ neighbors) / (n+1).
func AverageEntropy(sys *atoms.System) {
	list := sys.Atoms()
	for i := range list {
		sum := list[i].Entropy
		for _, nb := range list[i].Neighbors.Entries() {
			sum += list[nb.Index].Entropy
		}
		list[i].AvgEntropy = sum / float64(list[i].Neighbors.Len()+1)
	}
}

// AverageEntropySwitch weights neighbors by the switching function
// (1 − (r/ra)^n) / (1 − (r/ra)^m); the atom itself has weight one.
func AverageEntropySwitch(sys *atoms.System, ra float64, m, n int) error {
	if ra <= 0 || m <= 0 || n <= 0 {
		return errors.Wrapf(ErrBadEntropyRange, "ra=%g m=%d n=%d", ra, m, n)
	}
	list := sys.Atoms()
	for i := range list {
		sum, wsum := list[i].Entropy, 1.0
		for _, nb := range list[i].Neighbors.Entries() {
			w := switching(nb.Distance/ra, m, n)
			sum += w * list[nb.Index].Entropy
			wsum += w
		}
		list[i].AvgEntropy = sum / wsum
	}
	return nil
}

func switching(x float64, m, n int) float64 {
	den := 1 - math.Pow(x, float64(m))
	if math.Abs(den) < 1e-12 {
		return float64(n) / float64(m) // limit at x = 1
	}
	return (1 - math.Pow(x, float64(n))) / den
}
