package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	OutcomePersisted  = "persisted"
	OutcomeLoggedOnly = "logged_only"
	OutcomeRejected   = "rejected"
)

var (
	RideRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "ride_request", Name: "ride_requests_total", Help: "Ride request submissions by outcome."},
		[]string{"outcome"},
	)
	ListFailures = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "ride_request", Name: "ride_request_list_failures_total", Help: "Listing queries that failed at the store."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RideRequests)
	reg.MustRegister(ListFailures)
}
