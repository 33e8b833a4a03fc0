// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for analysis pipeline steps.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder groups the pipeline collectors registered on one registry.
type Recorder struct {
	registry *prometheus.Registry

	StepDuration *prometheus.HistogramVec
	StepFailures *prometheus.CounterVec
	Atoms        prometheus.Counter
	Runs         prometheus.Counter
	Structures   *prometheus.GaugeVec
}

// New registers the collectors on a fresh registry under namespace.
func New(namespace string) *Recorder {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Recorder{
		registry: reg,
		StepDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "step_duration_seconds",
			Help:      "Time spent in one analysis step",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1, 10, 60},
		}, []string{"step"}),
		StepFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "step_failures_total",
			Help:      "Analysis steps that returned an error",
		}, []string{"step"}),
		Atoms: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "atoms_processed_total",
			Help:      "Real atoms passed through the pipeline",
		}),
		Runs: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed analysis runs",
		}),
		Structures: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "structure_atoms",
			Help:      "Atoms per structure label in the last run",
		}, []string{"structure"}),
	}
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one step outcome. A nil Recorder is a no-op.
func (r *Recorder) Observe(step string, elapsed time.Duration, err error) {
	if r == nil {
		return
	}
	r.StepDuration.WithLabelValues(step).Observe(elapsed.Seconds())
	if err != nil {
		r.StepFailures.WithLabelValues(step).Inc()
	}
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
