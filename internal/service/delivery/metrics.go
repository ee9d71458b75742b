package delivery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StatusTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "delivery_status_transitions_total",
		Help: "Total number of applied delivery status transitions",
	},
	[]string{"from", "to"},
)
