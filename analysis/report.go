// SPDX-License-Identifier: MIT

package analysis

import (
	"fmt"
	"io"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/atomlath/bondorder"
	"github.com/katalvlaran/atomlath/pairs"
)

// Step is one timed pipeline stage.
type Step struct {
	Name     string
	Duration time.Duration
}

// OrderSummary holds system means of the per-atom invariants for one ℓ.
type OrderSummary struct {
	L      int
	Q, WN  float64
	AQ     float64
	HasAvg bool
}

// StructureCount is the number of atoms carrying one label.
type StructureCount struct {
	Name  string
	Count int
}

// Report is what Run found.
type Report struct {
	RunID  uuid.UUID
	Atoms  int
	Ghosts int
	Method string

	MeanNeighbors float64
	MeanCutoff    float64

	Order  []OrderSummary
	Global *bondorder.GlobalResult

	MeanDisorder       float64
	MeanCentrosymmetry float64
	MeanEntropy        float64

	Solids     int
	Structures []StructureCount

	Clusters    int
	LargestSize int
	LargestID   int

	Pairs      *pairs.Histogram
	Angles     []int
	AngleRange [2]float64 // radians

	Steps []Step
}

// StepNames lists the executed steps in order.
func (r *Report) StepNames() []string {
	out := make([]string, len(r.Steps))
	for i, s := range r.Steps {
		out[i] = s.Name
	}
	return out
}

// WriteText renders the report without timings.
func (r *Report) WriteText(w io.Writer) error {
	p := &printer{w: w}
	p.f("atoms: %d (ghosts %d)\n", r.Atoms, r.Ghosts)
	p.f("neighbors: %s, mean %.2f, mean cutoff %.4f\n", r.Method, r.MeanNeighbors, r.MeanCutoff)

	if len(r.Order) > 0 {
		p.f("bond order:\n")
		for _, o := range r.Order {
			p.f("  l=%d Q=%.4f W=%.4f", o.L, o.Q, o.WN)
			if o.HasAvg {
				p.f(" AQ=%.4f", o.AQ)
			}
			p.f("\n")
		}
	}
	if r.Global != nil {
		ls := make([]int, 0, len(r.Global.Q))
		for l := range r.Global.Q {
			ls = append(ls, l)
		}
		sort.Ints(ls)
		p.f("global:\n")
		for _, l := range ls {
			p.f("  l=%d Q=%.4f W=%.4f\n", l, r.Global.Q[l], r.Global.WN[l])
		}
	}
	if r.MeanDisorder != 0 {
		p.f("disorder: %.4f\n", r.MeanDisorder)
	}
	if r.MeanCentrosymmetry != 0 {
		p.f("centrosymmetry: %.4f\n", r.MeanCentrosymmetry)
	}
	if r.MeanEntropy != 0 {
		p.f("entropy: %.4f\n", r.MeanEntropy)
	}
	if r.Solids > 0 {
		p.f("solids: %d\n", r.Solids)
	}
	if len(r.Structures) > 0 {
		p.f("structure:\n")
		for _, s := range r.Structures {
			p.f("  %-10s %d\n", s.Name, s.Count)
		}
	}
	if r.Clusters > 0 {
		p.f("clusters: %d, largest %d (id %d)\n", r.Clusters, r.LargestSize, r.LargestID)
	}
	if h := r.Pairs; h != nil {
		p.f("pair histogram: low %.4f cut %.4f bins %d\n", h.Low, h.Cut, len(h.Counts))
		wd := h.Width()
		for k, c := range h.Counts {
			lo := h.Low + float64(k)*wd
			p.f("  [%.4f, %.4f) %d\n", lo, lo+wd, c)
		}
	}
	if len(r.Angles) > 0 {
		p.f("angle histogram: bins %d\n", len(r.Angles))
		wd := (r.AngleRange[1] - r.AngleRange[0]) / float64(len(r.Angles))
		for k, c := range r.Angles {
			if c == 0 {
				continue
			}
			p.f("  %.1f %d\n", (r.AngleRange[0]+(float64(k)+0.5)*wd)*180/math.Pi, c)
		}
	}
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) f(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
