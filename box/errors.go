// SPDX-License-Identifier: MIT

package box

import "github.com/cockroachdb/errors"

var (
	// ErrDegenerateBox indicates a lattice with a zero-length vector or a
	// vanishing volume; no periodic image can be defined for it.
	ErrDegenerateBox = errors.New("box: degenerate lattice")

	// ErrSingular is returned when the lattice matrix cannot be inverted.
	ErrSingular = errors.New("box: lattice matrix is singular")
)
