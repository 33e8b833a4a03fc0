// SPDX-License-Identifier: MIT

// Package lattice generates periodic crystal snapshots: simple cubic, bcc,
// fcc, hcp and cubic diamond, optionally perturbed with seeded gaussian
// noise. The generators back the tests of every analysis package and the
// CLI "generate" command.
//
// Options:
//
//   - WithRepetitions(nx, ny, nz): unit cells along each axis (default 3×3×3).
//   - WithLatticeConstant(a):      cubic edge, or hcp nearest-neighbor distance.
//   - WithNoise(sigma):            gaussian displacement per coordinate.
//   - WithSeed / WithRand:         RNG for noise; required when sigma > 0.
//   - WithType(t):                 species written on every atom.
//
// Errors:
//
//   - ErrUnknownKind:    Generate called with an unsupported kind.
//   - ErrBadSize:        a repetition count below one.
//   - ErrNeedRandSource: noise requested without an RNG.
package lattice
