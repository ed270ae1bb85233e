package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sbinet/hadrx/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveCallCountsInvocations(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)

	rec.ObserveCall(3, 0.001)
	rec.ObserveCall(5, 0.002)

	families, err := reg.Gather()
	require.NoError(t, err)
	byName := map[string]bool{}
	for _, mf := range families {
		byName[mf.GetName()] = true
	}
	assert.True(t, byName["hadrx_reaction_calls_total"])
	assert.True(t, byName["hadrx_reaction_branches"])
	assert.True(t, byName["hadrx_reaction_call_duration_seconds"])
}

func TestObserveErrorCountsByKind(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewPrometheusRecorder(reg)

	rec.ObserveError("PrecomputedParametrizationInvalid")
	rec.ObserveError("PrecomputedParametrizationInvalid")
	rec.ObserveError("MissingStringProvider")

	count := testutil.CollectAndCount(rec.ErrorCounter())
	assert.Equal(t, 2, count)
}

func TestIndependentRegistriesDoNotCollide(t *testing.T) {
	recA := metrics.NewPrometheusRecorder(prometheus.NewRegistry())
	recB := metrics.NewPrometheusRecorder(prometheus.NewRegistry())
	recA.ObserveCall(1, 0.001)
	recB.ObserveCall(2, 0.001)
}
