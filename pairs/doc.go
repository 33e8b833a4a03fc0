// SPDX-License-Identifier: MIT

// Package pairs histograms pair distances and bond angles of an
// atoms.System.
//
// What:
//
//   - Distances: counts of pair distances in [Low, Cut] over Bins equal bins.
//     Without a type filter every unordered pair is counted once; with
//     Partial set, ordered (center type → second type) pairs are counted.
//   - When the cutoff sphere fits inside the cell (Cut < ½ of every face
//     height) and no filter applies, each pair is scanned once through the
//     minimum image ("halftimes"). Otherwise the periodic images that can
//     reach the cutoff are enumerated explicitly per center atom.
//   - The center range is split into Workers chunks of equal size (±1).
//     Each worker fills a private histogram; an errgroup join precedes the
//     merge, so results do not depend on the worker count.
//   - Angles: bond angles between every pair of committed neighbors.
//   - RDF: normalizes a distance histogram into g(r).
//
// Errors:
//
//   - ErrBadRange:   Low < 0 or Cut <= Low (or high <= low for angles).
//   - ErrBadBins:    Bins < 1.
//   - ErrBadDensity: non-positive density or center count in RDF.
//   - atoms.ErrBoxUnset passes through.
//
// Complexity:
//
//   - Distances: O(N²·I/W) for I images per pair and W workers.
//   - Angles: O(N·k²).
package pairs
