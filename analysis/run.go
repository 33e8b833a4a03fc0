// SPDX-License-Identifier: MIT

package analysis

import (
	"bytes"
	"context"
	"math"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/bondorder"
	"github.com/katalvlaran/atomlath/cluster"
	"github.com/katalvlaran/atomlath/cna"
	"github.com/katalvlaran/atomlath/config"
	"github.com/katalvlaran/atomlath/logger"
	"github.com/katalvlaran/atomlath/neighbor"
	"github.com/katalvlaran/atomlath/pairs"
	"github.com/katalvlaran/atomlath/resultdb"
)

var (
	// ErrUnknownMethod indicates a neighbor or CNA method string not understood.
	ErrUnknownMethod = errors.New("analysis: unknown method")

	// ErrUnknownFilter indicates a filter string not understood.
	ErrUnknownFilter = errors.New("analysis: unknown filter")
)

// Step names.
const (
	StepNeighbors = "neighbors"
	StepBondOrder = "bond_order"
	StepSolids    = "solids"
	StepStructure = "structure"
	StepCluster   = "cluster"
	StepHistogram = "histogram"
	StepStore     = "store"
)

// Run analyses sys according to cfg.
//
// Stage 1: resolve options and validate cfg.
// Stage 2: run each enabled step, timing and logging it.
// Stage 3: persist the run when a store is attached.
func Run(ctx context.Context, sys *atoms.System, cfg *config.Config, opts ...Option) (*Report, error) {
	r := &runner{log: zap.NewNop().Sugar()}
	for _, fn := range opts {
		fn(r)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := sys.Box(); err != nil {
		return nil, err
	}

	rep := &Report{Atoms: sys.RealCount(), Ghosts: sys.GhostCount(), Method: cfg.Neighbors.Method}
	r.log.Infow("analysis started", logger.FieldAtoms, rep.Atoms, logger.FieldGhosts, rep.Ghosts,
		logger.FieldMethod, rep.Method)

	steps := []struct {
		name    string
		enabled bool
		fn      func() error
	}{
		{StepNeighbors, true, func() error { return r.neighbors(sys, cfg, rep) }},
		{StepBondOrder, len(orderSet(cfg)) > 0, func() error { return r.bondOrder(sys, cfg, rep) }},
		{StepSolids, cfg.Solids.Enabled, func() error { return r.solids(sys, cfg, rep) }},
		{StepStructure, cfg.Structure.CNA || cfg.Structure.Diamond, func() error { return r.structure(sys, cfg, rep) }},
		{StepCluster, cfg.Cluster.Enabled, func() error { return r.clusters(sys, cfg, rep) }},
		{StepHistogram, cfg.Histogram.Cut > 0 || cfg.Histogram.AngleBins > 0, func() error { return r.histograms(sys, cfg, rep) }},
		{StepStore, r.store != nil, func() error { return r.save(ctx, sys, cfg, rep) }},
	}
	for _, st := range steps {
		if !st.enabled {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()
		err := st.fn()
		elapsed := time.Since(start)
		r.rec.Observe(st.name, elapsed, err)
		if err != nil {
			r.log.Errorw("analysis step failed", logger.FieldStep, st.name, logger.FieldError, err)
			return nil, errors.Wrapf(err, "analysis: %s", st.name)
		}
		r.log.Debugw("analysis step done", logger.FieldStep, st.name, logger.FieldDurationMS, elapsed.Milliseconds())
		rep.Steps = append(rep.Steps, Step{Name: st.name, Duration: elapsed})
	}

	if r.rec != nil {
		r.rec.Runs.Inc()
		r.rec.Atoms.Add(float64(rep.Atoms))
		for _, s := range rep.Structures {
			r.rec.Structures.WithLabelValues(s.Name).Set(float64(s.Count))
		}
	}
	r.log.Infow("analysis finished", "steps", len(rep.Steps))
	return rep, nil
}

// orderSet is the sorted union of the configured ℓ values and the ℓ needed
// by solids and disorder.
func orderSet(cfg *config.Config) []int {
	seen := map[int]bool{}
	var ls []int
	add := func(l int) {
		if !seen[l] {
			seen[l] = true
			ls = append(ls, l)
		}
	}
	for _, l := range cfg.BondOrder.L {
		add(l)
	}
	if cfg.Solids.Enabled || cfg.BondOrder.Disorder {
		add(cfg.Solids.L)
	}
	sort.Ints(ls)
	return ls
}

func parseFilter(s string) (neighbor.Filter, error) {
	switch s {
	case "", "none":
		return neighbor.FilterNone, nil
	case "same":
		return neighbor.FilterSameType, nil
	case "cross":
		return neighbor.FilterCrossType, nil
	}
	return 0, errors.Wrapf(ErrUnknownFilter, "%q", s)
}

func (r *runner) neighbors(sys *atoms.System, cfg *config.Config, rep *Report) error {
	nc := cfg.Neighbors
	method, ok := neighbor.ParseMethod(nc.Method)
	if !ok {
		return errors.Wrapf(ErrUnknownMethod, "neighbors %q", nc.Method)
	}
	filter, err := parseFilter(nc.Filter)
	if err != nil {
		return err
	}
	opts := []neighbor.Option{
		neighbor.WithMethod(method),
		neighbor.WithCells(nc.Cells),
		neighbor.WithFilter(filter),
		neighbor.WithPrefactor(nc.Prefactor),
		neighbor.WithCount(nc.Count),
		neighbor.WithPadding(nc.Padding),
		neighbor.WithNLimit(nc.NLimit),
		neighbor.WithAlpha(nc.Alpha),
	}
	if method == neighbor.MethodCutoff {
		rc := nc.Cutoff
		if rc == 0 {
			b, _ := sys.Box()
			rc = neighbor.GuessRadius(b, sys.Len(), nc.Prefactor)
			r.log.Debugw("derived cutoff from density", "cutoff", rc)
		}
		opts = append(opts, neighbor.WithCutoff(rc))
	}
	if r.tessellator != nil {
		opts = append(opts, neighbor.WithTessellator(r.tessellator))
	}
	if err := neighbor.Build(sys, opts...); err != nil {
		return err
	}
	if nc.Symmetric && method != neighbor.MethodCutoff {
		if err := neighbor.Symmetrize(sys); err != nil {
			return err
		}
	}

	n := sys.RealCount()
	if n > 0 {
		var count, cut float64
		for i := 0; i < n; i++ {
			count += float64(sys.At(i).Neighbors.Len())
			cut += sys.At(i).Cutoff
		}
		rep.MeanNeighbors = count / float64(n)
		rep.MeanCutoff = cut / float64(n)
	}
	return nil
}

func (r *runner) bondOrder(sys *atoms.System, cfg *config.Config, rep *Report) error {
	bc := cfg.BondOrder
	ls := orderSet(cfg)
	if err := bondorder.Compute(sys, ls); err != nil {
		return err
	}
	if bc.Averaged {
		if err := bondorder.Average(sys, ls); err != nil {
			return err
		}
	}
	for _, l := range ls {
		o := OrderSummary{L: l, HasAvg: bc.Averaged}
		o.Q = realMean(sys, func(a *atoms.Atom) float64 { return a.Q[l] })
		o.WN = realMean(sys, func(a *atoms.Atom) float64 { return a.WN[l] })
		if bc.Averaged {
			o.AQ = realMean(sys, func(a *atoms.Atom) float64 { return a.AQ[l] })
		}
		rep.Order = append(rep.Order, o)
	}

	if bc.Global {
		bonds, err := bondorder.Bonds(sys, nil)
		if err != nil {
			return err
		}
		g, err := bondorder.Global(bonds, ls)
		if err != nil {
			return err
		}
		rep.Global = g
	}
	if bc.Disorder {
		if err := bondorder.Disorder(sys, cfg.Solids.L); err != nil {
			return err
		}
		bondorder.AverageDisorder(sys)
		rep.MeanDisorder = realMean(sys, func(a *atoms.Atom) float64 { return a.Disorder })
	}
	if bc.Centrosymmetry > 0 {
		if err := bondorder.Centrosymmetry(sys, bc.Centrosymmetry); err != nil {
			return err
		}
		rep.MeanCentrosymmetry = realMean(sys, func(a *atoms.Atom) float64 { return a.Centrosymmetry })
	}
	if bc.Entropy {
		eo := bondorder.EntropyOptions{
			Sigma:  bc.EntropySigma,
			Rho:    bc.EntropyRho,
			RStart: bc.EntropyRStart,
			RStop:  bc.EntropyRStop,
			H:      bc.EntropyStep,
			KB:     bc.EntropyKB,
		}
		if err := bondorder.Entropy(sys, eo); err != nil {
			return err
		}
		bondorder.AverageEntropy(sys)
		rep.MeanEntropy = realMean(sys, func(a *atoms.Atom) float64 { return a.Entropy })
	}
	return nil
}

func (r *runner) solids(sys *atoms.System, cfg *config.Config, rep *Report) error {
	sc := cfg.Solids
	o := bondorder.SolidOptions{L: sc.L, Threshold: sc.Threshold, AvgThreshold: sc.AvgThreshold, MinConnections: sc.MinConnections}
	if sc.Criterion == "fraction" {
		o.Criterion = bondorder.CriterionFraction
	}
	if sc.Compare == "less" {
		o.Compare = bondorder.CompareLess
	}
	n, err := bondorder.FindSolids(sys, o)
	if err != nil {
		return err
	}
	rep.Solids = n
	r.log.Infow("solids labelled", logger.FieldCount, n)
	return nil
}

func (r *runner) structure(sys *atoms.System, cfg *config.Config, rep *Report) error {
	sc := cfg.Structure
	var (
		counts cna.Counts
		err    error
	)
	if sc.Diamond {
		counts, err = cna.ClassifyDiamond(sys)
	} else {
		opts := []cna.Option{}
		switch sc.Method {
		case "adaptive":
		case "fixed":
			opts = append(opts, cna.WithMethod(cna.MethodFixed), cna.WithLatticeConstant(sc.LatticeConstant))
		default:
			return errors.Wrapf(ErrUnknownMethod, "structure %q", sc.Method)
		}
		counts, err = cna.Classify(sys, opts...)
	}
	if err != nil {
		return err
	}
	for k, c := range counts {
		rep.Structures = append(rep.Structures, StructureCount{Name: cna.Structure(k).String(), Count: c})
	}
	return nil
}

func (r *runner) clusters(sys *atoms.System, cfg *config.Config, rep *Report) error {
	if !cfg.Solids.Enabled {
		for i := 0; i < sys.RealCount(); i++ {
			sys.At(i).Condition = true
		}
	}
	find := cluster.Find
	if cfg.Cluster.Iterative {
		find = cluster.FindIterative
	}
	k, err := find(sys, cfg.Cluster.Cutoff)
	if err != nil {
		return err
	}
	rep.Clusters = k
	rep.LargestSize, rep.LargestID = cluster.Largest(sys)
	return nil
}

func (r *runner) histograms(sys *atoms.System, cfg *config.Config, rep *Report) error {
	hc := cfg.Histogram
	if hc.Cut > 0 {
		h, err := pairs.Distances(sys, pairs.Options{
			Cut:        hc.Cut,
			Low:        hc.Low,
			Bins:       hc.Bins,
			Workers:    hc.Workers,
			Partial:    hc.Partial,
			CenterType: hc.CenterType,
			SecondType: hc.SecondType,
		})
		if err != nil {
			return err
		}
		rep.Pairs = &h
	}
	if hc.AngleBins > 0 {
		rep.AngleRange = [2]float64{0, math.Pi}
		counts, err := pairs.Angles(sys, 0, math.Pi, hc.AngleBins)
		if err != nil {
			return err
		}
		rep.Angles = counts
	}
	return nil
}

func (r *runner) save(ctx context.Context, sys *atoms.System, cfg *config.Config, rep *Report) error {
	var buf bytes.Buffer
	if err := config.Encode(&buf, cfg); err != nil {
		return err
	}
	var hists []resultdb.Histogram
	if h := rep.Pairs; h != nil {
		hists = append(hists, resultdb.Histogram{Name: "pairs", Low: h.Low, High: h.Cut, Counts: h.Counts})
	}
	if len(rep.Angles) > 0 {
		hists = append(hists, resultdb.Histogram{Name: "angles", Low: rep.AngleRange[0], High: rep.AngleRange[1], Counts: rep.Angles})
	}
	id, err := r.store.SaveRun(ctx, resultdb.Run{Label: r.label, Method: cfg.Neighbors.Method, Config: buf.String()}, sys, hists)
	if err != nil {
		return err
	}
	rep.RunID = id
	r.log.Infow("run stored", logger.FieldRunID, id.String())
	return nil
}

func realMean(sys *atoms.System, fn func(*atoms.Atom) float64) float64 {
	vals := sys.Collect(fn)
	if len(vals) == 0 {
		return 0
	}
	var s float64
	for _, v := range vals {
		s += v
	}
	return s / float64(len(vals))
}
