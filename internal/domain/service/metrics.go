package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics
var (
	notificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shift_notifications_total",
			Help: "Total number of shift notifications by channel and status",
		},
		[]string{"channel", "status"},
	)

	dispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shift_dispatch_duration_seconds",
			Help:    "Duration of shift notification dispatches",
			Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30},
		},
		[]string{"result"},
	)
)

const (
	channelInbox = "inbox"
	channelEmail = "email"
)
