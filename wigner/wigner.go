// SPDX-License-Identifier: MIT

// Package wigner evaluates Wigner 3j symbols for integer angular momenta.
//
// ThreeJ uses the Racah closed form with log-factorials, which stays accurate
// well past the ℓ ≤ 12 range needed by bond-order parameters.
//
// Complexity: O(min(j1, j2)) per symbol.
package wigner

import "math"

// Func is the signature shared by ThreeJ and any injected replacement.
type Func func(j1, j2, j3, m1, m2, m3 int) float64

// ThreeJ returns (j1 j2 j3; m1 m2 m3), or 0 when a selection rule fails:
// m1+m2+m3 ≠ 0, |mi| > ji, or the triangle condition.
func ThreeJ(j1, j2, j3, m1, m2, m3 int) float64 {
	if m1+m2+m3 != 0 {
		return 0
	}
	if abs(m1) > j1 || abs(m2) > j2 || abs(m3) > j3 {
		return 0
	}
	if j3 < abs(j1-j2) || j3 > j1+j2 {
		return 0
	}

	// triangle coefficient and the m-dependent prefactor, in logs
	logPre := 0.5 * (lf(j1+j2-j3) + lf(j1-j2+j3) + lf(-j1+j2+j3) - lf(j1+j2+j3+1) +
		lf(j1+m1) + lf(j1-m1) + lf(j2+m2) + lf(j2-m2) + lf(j3+m3) + lf(j3-m3))

	kmin := max(0, j2-j3-m1, j1-j3+m2)
	kmax := min(j1+j2-j3, j1-m1, j2+m2)

	var sum float64
	for k := kmin; k <= kmax; k++ {
		term := math.Exp(logPre - lf(k) - lf(j3-j2+k+m1) - lf(j3-j1+k-m2) -
			lf(j1+j2-j3-k) - lf(j1-k-m1) - lf(j2-k+m2))
		if k%2 != 0 {
			term = -term
		}
		sum += term
	}
	if abs(j1-j2-m3)%2 != 0 {
		sum = -sum
	}
	return sum
}

// lf is ln(n!).
func lf(n int) float64 {
	v, _ := math.Lgamma(float64(n) + 1)
	return v
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
