// SPDX-License-Identifier: MIT

// Package atoms holds the particle arena that every analysis reads and
// writes: positions, species, ghost flags, the neighbor table and all
// per-atom derived quantities.
//
// What:
//
//   - System owns a contiguous []Atom; atoms are addressed by integer
//     handles (their index), never by pointers kept across a reorder.
//   - Real atoms always precede ghost atoms. Set and Append re-partition.
//   - Each Atom carries a capped neighbor Table. Exceeding the cap is an
//     explicit ErrCapacityExceeded, never a silent overwrite.
//   - The neighbor normalization mode (count vs Voronoi area) is stored
//     with the neighbor table and consumed by the bond-order engine.
//
// Errors:
//
//   - ErrBoxUnset:          a distance query before SetBox.
//   - ErrIndexOutOfRange:   a handle outside [0, Len()).
//   - ErrCapacityExceeded:  a neighbor table is full.
//   - ErrDuplicateNeighbor: the same neighbor inserted twice.
package atoms
