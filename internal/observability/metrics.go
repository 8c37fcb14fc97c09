package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "manor", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "manor", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	GatewayRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "manor", Name: "gateway_requests_total", Help: "Outbound payment gateway requests."},
		[]string{"operation", "status"},
	)
	GatewayLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "manor", Name: "gateway_request_duration_seconds",
			Help:    "Outbound payment gateway request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
	CacheEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "manor", Name: "cache_events_total", Help: "Cache hits/misses/sets/dels."},
		[]string{"cache", "event"}, // event: hit|miss|set|del
	)
	BookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "manor", Name: "booking_transitions_total", Help: "Booking status transitions."},
		[]string{"to"},
	)
)

func MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(HTTPRequests, HTTPLatency, GatewayRequests, GatewayLatency, CacheEvents, BookingTransitions)
}

func ObserveCache(cache, event string) {
	CacheEvents.WithLabelValues(cache, event).Inc()
}

func ObserveGateway(operation, status string) {
	GatewayRequests.WithLabelValues(operation, status).Inc()
}
