// SPDX-License-Identifier: MIT

package analysis_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/katalvlaran/atomlath/analysis"
	"github.com/katalvlaran/atomlath/atoms"
	"github.com/katalvlaran/atomlath/config"
	"github.com/katalvlaran/atomlath/lattice"
	"github.com/katalvlaran/atomlath/metrics"
	"github.com/katalvlaran/atomlath/neighbor"
	"github.com/katalvlaran/atomlath/resultdb"
)

func fcc(t *testing.T) *atoms.System {
	t.Helper()
	s, err := lattice.System(lattice.FCC, lattice.WithRepetitions(4, 4, 4))
	require.NoError(t, err)
	return s
}

func fccConfig() *config.Config {
	cfg := config.Default()
	cfg.Neighbors.Cutoff = 0.8
	cfg.Cluster.Enabled = true
	cfg.Histogram.Cut = 1.2
	cfg.Histogram.Bins = 4
	cfg.Histogram.Workers = 2
	return cfg
}

func TestRun_GoldenFCC(t *testing.T) {
	rep, err := analysis.Run(context.Background(), fcc(t), fccConfig(), analysis.WithLogger(zaptest.NewLogger(t).Sugar()))
	require.NoError(t, err)
	assert.Equal(t, []string{"neighbors", "bond_order", "structure", "cluster", "histogram"}, rep.StepNames())

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "fcc", buf.Bytes())
}

func TestRun_MetricsAndStore(t *testing.T) {
	ctx := context.Background()
	rec := metrics.New("test")
	store, err := resultdb.Open(filepath.Join(t.TempDir(), "runs.db"), nil)
	require.NoError(t, err)
	defer store.Close()

	cfg := fccConfig()
	cfg.Histogram.AngleBins = 18
	rep, err := analysis.Run(ctx, fcc(t), cfg,
		analysis.WithMetrics(rec), analysis.WithStore(store), analysis.WithLabel("fcc-4"))
	require.NoError(t, err)
	assert.Contains(t, rep.StepNames(), "store")

	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Runs))
	assert.Equal(t, 256.0, testutil.ToFloat64(rec.Atoms))
	assert.Equal(t, 256.0, testutil.ToFloat64(rec.Structures.WithLabelValues("fcc")))

	runs, err := store.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, rep.RunID, runs[0].ID)
	assert.Equal(t, "fcc-4", runs[0].Label)
	assert.Contains(t, runs[0].Config, "[neighbors]")

	hists, err := store.LoadHistograms(ctx, rep.RunID)
	require.NoError(t, err)
	require.Len(t, hists, 2)
	assert.Equal(t, "angles", hists[0].Name)
	assert.Equal(t, rep.Pairs.Counts, hists[1].Counts)
}

func TestRun_SolidsAndDescriptors(t *testing.T) {
	cfg := fccConfig()
	cfg.Solids.Enabled = true
	cfg.BondOrder.Global = true
	cfg.BondOrder.Disorder = true
	cfg.BondOrder.Centrosymmetry = 12
	cfg.Structure.CNA = false
	cfg.Histogram.Cut = 0

	sys := fcc(t)
	rep, err := analysis.Run(context.Background(), sys, cfg)
	require.NoError(t, err)
	assert.Equal(t, 256, rep.Solids)
	assert.Equal(t, 1, rep.Clusters)
	assert.Equal(t, 256, rep.LargestSize)
	require.NotNil(t, rep.Global)
	assert.InDelta(t, 0.57452, rep.Global.Q[6], 1e-4)
	assert.InDelta(t, 0, rep.MeanCentrosymmetry, 1e-9)
	assert.InDelta(t, 0, rep.MeanDisorder, 1e-9)
	assert.True(t, sys.At(0).InLargest)
}

func TestRun_PartialHistogramAndEntropyKnobs(t *testing.T) {
	cfg := fccConfig()
	cfg.Structure.CNA = false
	cfg.Histogram.Partial = true
	cfg.Histogram.CenterType = 1
	cfg.Histogram.SecondType = 1
	cfg.BondOrder.Entropy = true

	rep, err := analysis.Run(context.Background(), fcc(t), cfg)
	require.NoError(t, err)
	require.NotNil(t, rep.Pairs)
	assert.True(t, rep.Pairs.Ordered)
	assert.Equal(t, []int{0, 0, 3072, 1536}, rep.Pairs.Counts)
	require.Less(t, rep.MeanEntropy, 0.0)

	cfg.BondOrder.EntropyKB = 2
	doubled, err := analysis.Run(context.Background(), fcc(t), cfg)
	require.NoError(t, err)
	assert.InDelta(t, 2*rep.MeanEntropy, doubled.MeanEntropy, 1e-9)
}

func TestRun_Errors(t *testing.T) {
	ctx := context.Background()

	cfg := fccConfig()
	cfg.Neighbors.Method = "voronoi"
	_, err := analysis.Run(ctx, fcc(t), cfg)
	assert.True(t, errors.Is(err, neighbor.ErrNoTessellator), "got %v", err)

	cfg = fccConfig()
	cfg.Neighbors.Method = "delaunay"
	_, err = analysis.Run(ctx, fcc(t), cfg)
	assert.True(t, errors.Is(err, config.ErrInvalid), "got %v", err)

	_, err = analysis.Run(ctx, atoms.NewSystem(), fccConfig())
	assert.ErrorIs(t, err, atoms.ErrBoxUnset)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = analysis.Run(cancelled, fcc(t), fccConfig())
	assert.ErrorIs(t, err, context.Canceled)
}
