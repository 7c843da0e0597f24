package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RidesRequestedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxihail", Name: "rides_requested_total", Help: "Total number of rides requested"})
	RidesAcceptedTotal  = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxihail", Name: "rides_accepted_total", Help: "Total number of rides accepted"})
	RidesCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxihail", Name: "rides_completed_total", Help: "Total number of rides completed"})

	AcceptConflictsTotal = promauto.NewCounter(prometheus.CounterOpts{Namespace: "taxihail", Name: "accept_conflicts_total", Help: "Accept attempts rejected because the ride or driver was already taken"})

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "taxihail",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency distribution",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
