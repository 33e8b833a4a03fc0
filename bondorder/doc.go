// SPDX-License-Identifier: MIT

// Package bondorder computes Steinhardt bond-orientational order parameters
// and the descriptors derived from them.
//
// What:
//
//   - Compute: q_ℓm from neighbor directions, rotational invariants q_ℓ,
//     w_ℓ and the normalized ŵ_ℓ.
//   - Average: one-hop averaged Lechner–Dellago variants.
//   - Bonds, Global: bond-resolved and system-wide q_ℓ/w_ℓ.
//   - Correlation: radial bond-order correlation function, direct O(B²)
//     or through a 3-D FFT autocorrelation.
//   - FindSolids: solid/liquid labelling from q6·q6 connections.
//   - Disorder, Centrosymmetry, Entropy and their neighbor averages.
//
// Normalization:
//
//   Sums over neighbors are divided by the total neighbor weight, except
//   when the table came from a Voronoi build (atoms.AreaNormalized): the
//   weights are then area fractions that already sum to one.
//
// Errors:
//
//   - ErrNoNeighbors:       a real atom without contributing neighbors.
//   - ErrNotComputed:       ℓ requested before Compute.
//   - ErrNoBonds:           Global on an empty bond set.
//   - ErrInvalidHistogram:  bad correlation range or grid.
//   - ErrOddNeighborCount:  centrosymmetry with odd n.
//   - ErrTooFewNeighbors:   centrosymmetry table shorter than n.
//   - ErrBadEntropyRange:   entropy integration range or width invalid.
//
// Complexity:
//
//   - Compute: O(N·k·Σ(2ℓ+1)) plus O(ℓ²) per w_ℓ.
//   - Correlation direct: O(B²); gridded: O(G log G) per (ℓ, m).
package bondorder
