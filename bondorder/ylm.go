// SPDX-License-Identifier: MIT

package bondorder

import (
	"math"
	"math/cmplx"
)

// plm is the associated Legendre function P_ℓ^m(x), 0 ≤ m ≤ ℓ, |x| ≤ 1,
// with the Condon–Shortley phase, by upward recurrence in ℓ.
func plm(l, m int, x float64) float64 {
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}
	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (x*float64(2*ll-1)*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm, pmmp1 = pmmp1, pll
	}
	return pll
}

// Ylm is the spherical harmonic Y_ℓ^m(θ, φ), polar angle θ, azimuth φ.
// Negative m follows Y_ℓ^{-m} = (−1)^m conj(Y_ℓ^m).
func Ylm(l, m int, polar, azimuth float64) complex128 {
	am := m
	if am < 0 {
		am = -am
	}
	lr, _ := math.Lgamma(float64(l-am) + 1)
	lp, _ := math.Lgamma(float64(l+am) + 1)
	norm := math.Sqrt(float64(2*l+1) / (4 * math.Pi) * math.Exp(lr-lp))
	y := complex(norm*plm(l, am, math.Cos(polar)), 0) * cmplx.Exp(complex(0, float64(am)*azimuth))
	if m < 0 {
		y = cmplx.Conj(y)
		if am%2 != 0 {
			y = -y
		}
	}
	return y
}
