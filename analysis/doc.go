// SPDX-License-Identifier: MIT

// Package analysis runs the configured structure analysis over one system.
//
// What:
//
//   - Run executes, in order: neighbors, bond order (plus averaged, global,
//     disorder, centrosymmetry, entropy), solids, structure, clusters,
//     histograms and, when a store is attached, persistence.
//   - Each step is timed into the metrics recorder and logged; ctx is
//     checked between steps, never inside one.
//   - Report.WriteText renders a stable plain-text summary.
//
// Options:
//
//   - WithLogger, WithMetrics, WithStore, WithTessellator, WithLabel.
//
// Errors:
//
//   - ErrUnknownMethod, ErrUnknownFilter: config strings not understood.
//   - Step errors pass through wrapped with the step name; a cancelled ctx
//     returns ctx.Err().
package analysis
