package orderevents

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventPublishRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_event_publish_retries_total",
			Help: "Total number of order event publish retry attempts",
		},
		[]string{"topic", "event_type", "result"},
	)

	EventPublishDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "order_event_publish_duration_seconds",
			Help:    "Duration of order event publishing including retries",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"topic", "event_type", "result"},
	)
)
