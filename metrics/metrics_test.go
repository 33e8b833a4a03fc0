// SPDX-License-Identifier: MIT

package metrics_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atomlath/metrics"
)

func TestObserve(t *testing.T) {
	r := metrics.New("test")
	r.Observe("neighbors", 10*time.Millisecond, nil)
	r.Observe("cna", time.Millisecond, errors.New("boom"))
	r.Atoms.Add(108)

	assert.Equal(t, 2, testutil.CollectAndCount(r.StepDuration))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.StepFailures.WithLabelValues("cna")))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.StepFailures.WithLabelValues("neighbors")))
	assert.Equal(t, 108.0, testutil.ToFloat64(r.Atoms))

	var nilRecorder *metrics.Recorder
	nilRecorder.Observe("noop", time.Second, nil)
}

func TestHandler(t *testing.T) {
	r := metrics.New("atomlath")
	r.Runs.Inc()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "atomlath_runs_total 1"))
}
