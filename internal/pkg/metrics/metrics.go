// Package metrics holds the prometheus collectors of the fulfillment pipeline.
// All methods are nil-safe so collaborators can run without a registry.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	transitions   *prometheus.CounterVec
	rejections    *prometheus.CounterVec
	storeOrders   *prometheus.CounterVec
	jobDuration   *prometheus.HistogramVec
	jobExecutions *prometheus.CounterVec
}

// New registers the collectors on reg. A nil registerer yields a no-op Metrics.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}
	m := &Metrics{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fulfillment_item_transitions_total",
			Help: "Applied order item status transitions.",
		}, []string{"stage", "to"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fulfillment_item_transition_rejections_total",
			Help: "Rejected order item status transitions by reason.",
		}, []string{"reason"}),
		storeOrders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fulfillment_store_orders_total",
			Help: "Per-store order creations by checkout path and result.",
		}, []string{"path", "result"}),
		jobDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fulfillment_job_duration_seconds",
			Help:    "Duration of scheduled jobs in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"job"}),
		jobExecutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fulfillment_job_executions_total",
			Help: "Scheduled job executions by result.",
		}, []string{"job", "result"}),
	}
	reg.MustRegister(m.transitions, m.rejections, m.storeOrders, m.jobDuration, m.jobExecutions)
	return m
}

func (m *Metrics) ItemTransitioned(stage, to string) {
	if m == nil || m.transitions == nil {
		return
	}
	m.transitions.WithLabelValues(normalize(stage), normalize(to)).Inc()
}

func (m *Metrics) TransitionRejected(reason string) {
	if m == nil || m.rejections == nil {
		return
	}
	m.rejections.WithLabelValues(normalize(reason)).Inc()
}

func (m *Metrics) StoreOrderCreated(path string, ok bool) {
	if m == nil || m.storeOrders == nil {
		return
	}
	m.storeOrders.WithLabelValues(normalize(path), result(ok)).Inc()
}

func (m *Metrics) JobFinished(job string, took time.Duration, ok bool) {
	if m == nil || m.jobDuration == nil {
		return
	}
	m.jobDuration.WithLabelValues(normalize(job)).Observe(took.Seconds())
	m.jobExecutions.WithLabelValues(normalize(job), result(ok)).Inc()
}

func result(ok bool) string {
	if ok {
		return "success"
	}
	return "failure"
}

func normalize(label string) string {
	if label == "" {
		return "unknown"
	}
	return label
}
