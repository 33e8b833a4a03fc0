// SPDX-License-Identifier: MIT

package bondorder

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/atomlath/wigner"
)

// power is Σ_m |q_ℓm|².
func power(qlm []complex128) float64 {
	var s float64
	for _, q := range qlm {
		s += real(q)*real(q) + imag(q)*imag(q)
	}
	return s
}

// qInvariant is sqrt(4π/(2ℓ+1) · Σ_m |q_ℓm|²).
func qInvariant(l int, qlm []complex128) float64 {
	return math.Sqrt(4 * math.Pi / float64(2*l+1) * power(qlm))
}

// wInvariant returns w_ℓ and ŵ_ℓ = w_ℓ / (Σ|q_ℓm|²)^(3/2).
// The sum runs over m2 ≥ m1 and doubles the off-diagonal terms, which is
// exact for even ℓ; odd-ℓ w_ℓ vanish by symmetry.
// Complexity: O(ℓ²).
func wInvariant(l int, qlm []complex128, threeJ wigner.Func) (w, wn float64) {
	var sum complex128
	for m1 := -l; m1 <= l; m1++ {
		for m2 := m1; m2 <= l; m2++ {
			m3 := -m1 - m2
			if m3 < -l || m3 > l {
				continue
			}
			c := threeJ(l, l, l, m1, m2, m3)
			if c == 0 {
				continue
			}
			term := complex(c, 0) * qlm[m1+l] * qlm[m2+l] * qlm[m3+l]
			if m1 != m2 {
				term *= 2
			}
			sum += term
		}
	}
	w = real(sum)
	p := power(qlm)
	if p > 0 {
		wn = w / math.Pow(p, 1.5)
	}
	return w, wn
}

// dot is Re Σ_m a_m conj(b_m).
func dot(a, b []complex128) float64 {
	var s float64
	for m := range a {
		s += real(a[m] * cmplx.Conj(b[m]))
	}
	return s
}

// similarity is the normalized dot product; 0 when either vector vanishes.
func similarity(a, b []complex128) float64 {
	na, nb := math.Sqrt(power(a)), math.Sqrt(power(b))
	if na == 0 || nb == 0 {
		return 0
	}
	return dot(a, b) / (na * nb)
}
