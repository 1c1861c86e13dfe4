package metrics_test

import (
	"testing"
	"time"

	"fulfillment/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_NilSafe(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ItemTransitioned("Cocinero", "PREPARING")
		m.TransitionRejected("unauthorized")
		m.StoreOrderCreated("checkout", true)
		m.JobFinished("reconcile", time.Second, false)
	})

	noop := metrics.New(nil)
	assert.NotPanics(t, func() { noop.ItemTransitioned("", "") })
}

func TestMetrics_Counts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ItemTransitioned("Cocinero", "PREPARING")
	m.ItemTransitioned("Cocinero", "PREPARING")
	m.StoreOrderCreated("checkout", false)
	m.JobFinished("reconcile", 10*time.Millisecond, true)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)

	count, err := testutil.GatherAndCount(reg, "fulfillment_item_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = testutil.GatherAndCount(reg, "fulfillment_job_executions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
