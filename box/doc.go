// SPDX-License-Identifier: MIT

// Package box models a periodic simulation cell and the minimum-image
// displacement between two points inside it.
//
// What:
//
//   - Box stores three lattice vectors (rows) and derives the edge lengths,
//     the column matrix rot (cartesian = rot · fractional) and its inverse.
//   - Orthogonal boxes wrap displacements directly in cartesian space.
//   - Triclinic boxes go through fractional coordinates: d → rotinv·d, wrap
//     each axis by one period if it is beyond one half, then back via rot.
//   - Remap folds a point into the primary cell.
//
// Complexity:
//
//   - New:          O(1) (3×3 Doolittle LU inverse).
//   - Displacement: O(1), no allocation.
//   - Remap:        O(1).
//
// Options:
//
//   - WithTriclinic: force the fractional pipeline for a diagonal box.
//   - WithEpsilon:   tolerance used to detect off-diagonal terms and degeneracy.
//
// Errors:
//
//   - ErrDegenerateBox: zero-length vector or vanishing volume.
//   - ErrSingular:      the lattice matrix could not be inverted.
package box
