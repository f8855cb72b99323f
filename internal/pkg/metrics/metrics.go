// Package metrics exposes the service's Prometheus instrumentation.
//
// Counters and gauges are registered on the default registry and served by
// the HTTP adapter's /metrics endpoint. The domain layer stays free of
// instrumentation; recording happens at the adapter and job boundaries.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	allocationsPlanned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gasfleet",
		Name:      "allocations_planned_total",
		Help:      "Number of allocations committed by planning runs.",
	})

	ordersUnallocated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gasfleet",
		Name:      "orders_unallocated_total",
		Help:      "Number of orders planning runs could not place on any truck.",
	})

	loadingRejections = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gasfleet",
		Name:      "loading_rejections_total",
		Help:      "Number of loading confirmations rejected by capacity validation.",
	})

	fleetUtilizationPct = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gasfleet",
		Name:      "fleet_utilization_pct",
		Help:      "Fleet-wide weight utilization of the most recent planning run or rollup, in percent.",
	})
)

// RecordPlanningRun records the outcome of one allocation planning run.
func RecordPlanningRun(allocated, unallocated int, utilizationPct float64) {
	allocationsPlanned.Add(float64(allocated))
	ordersUnallocated.Add(float64(unallocated))
	fleetUtilizationPct.Set(utilizationPct)
}

// RecordLoadingRejection records a loading confirmation that failed validation.
func RecordLoadingRejection() {
	loadingRejections.Inc()
}

// SetFleetUtilization publishes the latest fleet-wide utilization figure.
func SetFleetUtilization(pct float64) {
	fleetUtilizationPct.Set(pct)
}
