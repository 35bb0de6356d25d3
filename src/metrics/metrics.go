package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the submission counters exposed on /metrics.
type Metrics struct {
	SubmissionsCreated *prometheus.CounterVec
	SubmissionsViewed  prometheus.Counter
	NotifyFailures     prometheus.Counter
}

// New registers the counters on reg. Pass prometheus.NewRegistry() in tests.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SubmissionsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quicktech",
			Name:      "submissions_created_total",
			Help:      "Form submissions stored, by type.",
		}, []string{"type"}),
		SubmissionsViewed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quicktech",
			Name:      "submissions_viewed_total",
			Help:      "Mark-as-viewed operations that hit an existing submission.",
		}),
		NotifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quicktech",
			Name:      "submission_notify_failures_total",
			Help:      "Notification tasks that could not be enqueued.",
		}),
	}
	reg.MustRegister(m.SubmissionsCreated, m.SubmissionsViewed, m.NotifyFailures)
	return m
}
