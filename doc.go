// SPDX-License-Identifier: MIT

// Package atomlath analyses the local structure of atoms in a periodic box:
// who neighbors whom, how ordered each environment is, which crystal it
// resembles, and how ordered atoms group together.
//
// What is inside:
//
//	box/        : orthogonal and triclinic cells, minimum-image distances
//	atoms/      : atom arena with capped neighbor tables and integer handles
//	neighbor/   : cutoff, by-number, SANN, adaptive and Voronoi neighbor lists
//	bondorder/  : Steinhardt q_ℓ/w_ℓ, averages, global order, correlation,
//	              solids, disorder, centrosymmetry, entropy
//	cna/        : common neighbor analysis (fcc, hcp, bcc, ico, diamond)
//	cluster/    : connected clusters of eligible atoms
//	pairs/      : pair-distance and bond-angle histograms on a worker pool
//	lattice/    : perfect and noisy crystals for tests and demos
//	wigner/ fft3/ voronoi/ : math collaborators
//
// Around the core:
//
//	config/ logger/ metrics/ resultdb/ snapshot/ analysis/ cmd/atomlath/
//
// Data flow:
//
//	box → atoms → neighbor ─┬─→ bondorder ─→ cluster
//	                        └─→ cna
//	box → atoms → pairs
//
// Quick start:
//
//	sys, _ := lattice.System(lattice.FCC, lattice.WithRepetitions(4, 4, 4))
//	_ = neighbor.BuildCutoff(sys, 0.8)
//	_ = bondorder.Compute(sys, []int{4, 6})
//	q6, _ := bondorder.QValues(sys, 6, false)
package atomlath
