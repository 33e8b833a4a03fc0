// SPDX-License-Identifier: MIT

// Package cna labels local crystal structure with common neighbor analysis.
//
// What:
//
//   - Classify: fcc, hcp and icosahedral environments from a 12-atom shell,
//     then bcc from a 14-atom shell for atoms still unlabeled. Shell cutoffs
//     come from a lattice constant (MethodFixed) or from the shell's own
//     distances (MethodAdaptive).
//   - ClassifyDiamond: cubic and hexagonal diamond from the 12 second
//     neighbors reached through the 4 first neighbors, then their first and
//     second neighbor shells.
//
// Both reset labels first and read only the staged candidates, so committed
// neighbor tables survive a classification.
//
// Signatures:
//
//	fcc 12×(4,2,1,1)   hcp 6×(4,2,1,1)+6×(4,2,2,0)
//	ico 12×(5,5,2,2)   bcc 6×(4,4,2,2)+8×(6,6,2,2)
//
// Atoms with too few candidates for a shell stay Unknown.
package cna
