package routeplan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RoutesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routes_generated_total",
			Help: "Total number of route generation runs, by time slot",
		},
		[]string{"time_slot"},
	)

	StopsPlannedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stops_planned_total",
			Help: "Total number of stops placed into generated routes, by kind",
		},
		[]string{"kind"},
	)

	StopsSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stops_skipped_total",
			Help: "Total number of stops dropped during extraction, by reason",
		},
		[]string{"reason"},
	)

	RouteGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "route_generation_duration_seconds",
			Help:    "Duration of route generation runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)
)
