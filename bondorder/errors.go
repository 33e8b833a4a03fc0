// SPDX-License-Identifier: MIT

package bondorder

import "github.com/cockroachdb/errors"

var (
	// ErrNoNeighbors indicates a zero weight sum for a real atom.
	ErrNoNeighbors = errors.New("bondorder: atom has no contributing neighbors")

	// ErrNotComputed indicates a request for an ℓ that Compute never ran.
	ErrNotComputed = errors.New("bondorder: order parameter not computed")

	// ErrInvalidL indicates a negative ℓ.
	ErrInvalidL = errors.New("bondorder: invalid l")

	// ErrNoBonds indicates an empty bond set.
	ErrNoBonds = errors.New("bondorder: no bonds")

	// ErrInvalidHistogram indicates a bad correlation range, bin count or grid.
	ErrInvalidHistogram = errors.New("bondorder: invalid histogram")

	// ErrOddNeighborCount indicates centrosymmetry with an odd neighbor count.
	ErrOddNeighborCount = errors.New("bondorder: neighbor count must be even")

	// ErrTooFewNeighbors indicates a table shorter than the requested count.
	ErrTooFewNeighbors = errors.New("bondorder: too few neighbors")

	// ErrBadEntropyRange indicates an invalid entropy integration setup.
	ErrBadEntropyRange = errors.New("bondorder: invalid entropy range")
)
