package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	leadsAssigned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_assigned_total",
			Help: "Total number of leads assigned to recruiters",
		},
	)

	leadsImported = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_imported_total",
			Help: "Total number of bulk-imported lead rows by result",
		},
		[]string{"result"},
	)

	followUpsAdded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_followups_total",
			Help: "Total number of follow-up notes appended",
		},
	)
)

func RecordAssignment() {
	leadsAssigned.Inc()
}

func RecordImport(inserted, skipped int) {
	leadsImported.WithLabelValues("inserted").Add(float64(inserted))
	leadsImported.WithLabelValues("skipped").Add(float64(skipped))
}

func RecordFollowUp() {
	followUpsAdded.Inc()
}
