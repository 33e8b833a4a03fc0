// SPDX-License-Identifier: MIT

package cluster

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/atomlath/atoms"
)

// ErrNegativeCutoff indicates a cutoff below zero.
var ErrNegativeCutoff = errors.New("cluster: cutoff must not be negative")

func eligible(a *atoms.Atom) bool { return a.Condition && !a.Ghost }

// linked reports whether entry n of host a joins its cluster.
func linked(list []atoms.Atom, a *atoms.Atom, n atoms.Neighbor, cutoff float64) bool {
	rc := cutoff
	if rc == 0 {
		rc = a.Cutoff
	}
	return eligible(&list[n.Index]) && n.Distance <= rc
}

func reset(list []atoms.Atom) {
	for i := range list {
		list[i].Cluster = atoms.Unassigned
		list[i].InLargest = false
	}
}

// Find labels every eligible real atom with its component id, 1..K, and
// returns K.
//
// Stage 1: clear ids.
// Stage 2: for each unlabeled eligible atom, push it and flood: pop,
// label unlabeled linked neighbors, push them.
func Find(sys *atoms.System, cutoff float64) (int, error) {
	if cutoff < 0 {
		return 0, errors.Wrapf(ErrNegativeCutoff, "cutoff %g", cutoff)
	}
	list := sys.Atoms()
	reset(list)

	id := 0
	var stack []int
	for seed := 0; seed < sys.RealCount(); seed++ {
		if !eligible(&list[seed]) || list[seed].Cluster != atoms.Unassigned {
			continue
		}
		id++
		list[seed].Cluster = id
		stack = append(stack[:0], seed)
		for len(stack) > 0 {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, n := range list[u].Neighbors.Entries() {
				if list[n.Index].Cluster != atoms.Unassigned || !linked(list, &list[u], n, cutoff) {
					continue
				}
				list[n.Index].Cluster = id
				stack = append(stack, n.Index)
			}
		}
	}
	return id, nil
}

// FindIterative is the single forward pass: an unlabeled eligible atom takes
// its own ID. An unlabeled linked neighbor inherits the host's id, while a
// labeled one hands its id back to the host. Ghost neighbors are never
// linked. It returns the number of distinct ids, which depends on handle
// order.
func FindIterative(sys *atoms.System, cutoff float64) (int, error) {
	if cutoff < 0 {
		return 0, errors.Wrapf(ErrNegativeCutoff, "cutoff %g", cutoff)
	}
	list := sys.Atoms()
	reset(list)

	for i := 0; i < sys.RealCount(); i++ {
		a := &list[i]
		if !eligible(a) {
			continue
		}
		if a.Cluster == atoms.Unassigned {
			a.Cluster = a.ID
		}
		for _, n := range a.Neighbors.Entries() {
			if !linked(list, a, n, cutoff) {
				continue
			}
			if b := &list[n.Index]; b.Cluster == atoms.Unassigned {
				b.Cluster = a.Cluster
			} else {
				a.Cluster = b.Cluster
			}
		}
	}

	ids := map[int]struct{}{}
	for i := 0; i < sys.RealCount(); i++ {
		if list[i].Cluster != atoms.Unassigned {
			ids[list[i].Cluster] = struct{}{}
		}
	}
	return len(ids), nil
}

// Components lists member handles per cluster id, in first-seen order.
func Components(sys *atoms.System) [][]int {
	order := map[int]int{}
	var comps [][]int
	for i := 0; i < sys.RealCount(); i++ {
		c := sys.At(i).Cluster
		if c == atoms.Unassigned {
			continue
		}
		k, ok := order[c]
		if !ok {
			k = len(comps)
			order[c] = k
			comps = append(comps, nil)
		}
		comps[k] = append(comps[k], i)
	}
	return comps
}

// Largest finds the most populated cluster (first seen wins a tie), sets
// InLargest on its members and recomputes Surface for every real atom:
// a solid atom is surface when a non-ghost neighbor is not solid, a
// non-solid atom always is. Returns the size and id, or (0, Unassigned).
func Largest(sys *atoms.System) (size, id int) {
	id = atoms.Unassigned
	for _, comp := range Components(sys) {
		if len(comp) > size {
			size = len(comp)
			id = sys.At(comp[0]).Cluster
		}
	}

	list := sys.Atoms()
	for i := 0; i < sys.RealCount(); i++ {
		a := &list[i]
		a.InLargest = id != atoms.Unassigned && a.Cluster == id
		a.Surface = !a.Solid
		if a.Solid {
			for _, n := range a.Neighbors.Entries() {
				b := &list[n.Index]
				if !b.Ghost && !b.Solid {
					a.Surface = true
					break
				}
			}
		}
	}
	return size, id
}
