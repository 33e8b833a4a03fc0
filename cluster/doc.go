// SPDX-License-Identifier: MIT

// Package cluster groups eligible atoms into connected clusters over the
// neighbor graph.
//
// What:
//
//   - An atom is eligible when it is real and its Condition flag is set
//     (FindSolids sets Condition for solid atoms).
//   - Two eligible atoms are linked when one lists the other as a neighbor
//     no farther than the cutoff; a zero cutoff uses the host's own cutoff.
//   - Find floods each component from an explicit work stack and numbers
//     clusters 1..K in seed order.
//   - FindIterative is the historical single-pass labelling. It seeds ids
//     from atom IDs; a fresh neighbor takes the host's id and a labeled one
//     hands its id back, so a cluster reached from two seeds can end up
//     split. Kept for comparison with
//     older results; use Find for correct components.
//   - Largest marks members of the most populated cluster and computes
//     surface flags.
//
// Complexity:
//
//   - Find, FindIterative: O(N + E).
//   - Largest: O(N + E).
package cluster
