// SPDX-License-Identifier: MIT

package analysis

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/atomlath/metrics"
	"github.com/katalvlaran/atomlath/resultdb"
	"github.com/katalvlaran/atomlath/voronoi"
)

type runner struct {
	log         *zap.SugaredLogger
	rec         *metrics.Recorder
	store       *resultdb.Store
	tessellator voronoi.Tessellator
	label       string
}

// Option customizes Run.
type Option func(*runner)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.SugaredLogger) Option { return func(r *runner) { r.log = l } }

// WithMetrics records step durations and failures into rec.
func WithMetrics(rec *metrics.Recorder) Option { return func(r *runner) { r.rec = rec } }

// WithStore saves the finished run into s.
func WithStore(s *resultdb.Store) Option { return func(r *runner) { r.store = s } }

// WithTessellator supplies the Voronoi collaborator for method "voronoi".
func WithTessellator(t voronoi.Tessellator) Option { return func(r *runner) { r.tessellator = t } }

// WithLabel names the run in the store.
func WithLabel(label string) Option { return func(r *runner) { r.label = label } }
