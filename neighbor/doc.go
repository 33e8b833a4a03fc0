// SPDX-License-Identifier: MIT

// Package neighbor fills the per-atom neighbor tables of an atoms.System.
//
// What:
//
//   - Cutoff:   every pair closer than a fixed radius, brute force or via a
//     periodic cell list (same result set).
//   - ByNumber: the k nearest candidates of each host atom.
//   - SANN:     solid-angle based nearest neighbors, parameter free.
//   - Adaptive: padding × mean of the first nlimit distances.
//   - Voronoi:  faces of an external tessellation, weighted by area^α.
//
// Every build resets all tables first. Strategies other than Cutoff fill the
// host side only; Symmetrize adds the missing reverse entries.
//
// The three candidate-based strategies start from a staging pass: all
// atoms within prefactor·(V/N)^(1/3), sorted by distance.
//
// Options:
//
//   - WithMethod, WithCutoff, WithCells, WithFilter, WithAtoms.
//   - WithPrefactor (1.2), WithCount (12), WithPadding (1.2), WithNLimit (6).
//   - WithAlpha (1), WithTessellator.
//
// Errors:
//
//   - ErrInvalidCutoff:         non-positive cutoff.
//   - ErrInsufficientNeighbors: fewer staged candidates than required.
//   - ErrNotConverged:          SANN ran out of candidates.
//   - ErrNoTessellator:         Voronoi build without a Tessellator.
//   - ErrExternal:              the tessellator failed.
//   - atoms.ErrCapacityExceeded and atoms.ErrBoxUnset pass through.
//
// Complexity:
//
//   - Brute: O(N²). Cells: O(N·ρ·r³).
//   - Staging adds O(c log c) per atom for c candidates.
package neighbor
