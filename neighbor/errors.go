// SPDX-License-Identifier: MIT

package neighbor

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidCutoff indicates a cutoff radius <= 0.
	ErrInvalidCutoff = errors.New("neighbor: cutoff must be positive")

	// ErrInsufficientNeighbors means an atom has fewer staged candidates
	// than the strategy needs. Atoms processed before it keep their tables.
	ErrInsufficientNeighbors = errors.New("neighbor: insufficient candidates")

	// ErrNotConverged means SANN consumed every candidate without closing
	// the shell; a larger prefactor usually helps.
	ErrNotConverged = errors.New("neighbor: sann did not converge")

	// ErrNoTessellator is returned by a Voronoi build without a Tessellator.
	ErrNoTessellator = errors.New("neighbor: no tessellator configured")

	// ErrExternal wraps failures of the Voronoi collaborator.
	ErrExternal = errors.New("neighbor: tessellator failed")

	// ErrInvalidCount indicates a by-number count below one.
	ErrInvalidCount = errors.New("neighbor: count must be positive")

	// ErrUnknownMethod indicates an unsupported Method value.
	ErrUnknownMethod = errors.New("neighbor: unknown method")
)
