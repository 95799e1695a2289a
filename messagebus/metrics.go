package messagebus

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	messagesEnqueued = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hopsan",
			Subsystem: "messagebus",
			Name:      "messages_enqueued_total",
			Help:      "Total messages pushed onto a bus, labeled by bus name and severity.",
		},
		[]string{"bus", "severity"},
	)

	messagesDropped = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "hopsan",
			Subsystem: "messagebus",
			Name:      "messages_dropped_total",
			Help:      "Total messages discarded because a bus was at capacity.",
		},
		[]string{"bus"},
	)
)

func init() {
	prometheus.MustRegister(messagesEnqueued, messagesDropped)
}
