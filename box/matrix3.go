// SPDX-License-Identifier: MIT

package box

import (
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/mat"
)

// mat3 is a row-major 3×3 matrix.
type mat3 [3][3]float64

// inverse is computed once per box with a pivoted LU from gonum; any
// failure, ill conditioning included, is reported as ErrSingular.
func (a mat3) inverse() (mat3, error) {
	var inv mat3
	m := mat.NewDense(3, 3, []float64{
		a[0][0], a[0][1], a[0][2],
		a[1][0], a[1][1], a[1][2],
		a[2][0], a[2][1], a[2][2],
	})
	var d mat.Dense
	if err := d.Inverse(m); err != nil {
		return inv, errors.Mark(errors.Wrap(err, "box: lattice inverse"), ErrSingular)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			inv[i][j] = d.At(i, j)
		}
	}
	return inv, nil
}

// det is the triple product of the rows.
func (a mat3) det() float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// transpose swaps rows and columns.
func (a mat3) transpose() mat3 {
	var t mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[j][i] = a[i][j]
		}
	}
	return t
}
