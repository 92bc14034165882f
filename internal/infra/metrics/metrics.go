// Package metrics provides observability for the consistency engine.
// It tracks saga outcomes: compensations, partial successions, and
// orphaned households left behind by reported-but-not-rolled-back
// cleanup failures.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Engine holds the engine's Prometheus collectors. Constructed once
// against an injected registry so tests can use isolated registries.
type Engine struct {
	HouseholdsCreated    prometheus.Counter
	CompensationsIssued  prometheus.Counter
	CompensationsFailed  prometheus.Counter
	PartialSuccessions   prometheus.Counter
	TransfersExecuted    prometheus.Counter
	OrphanedHouseholds   prometheus.Counter
	HeadNameSyncFailures prometheus.Counter
	OperationDuration    *prometheus.HistogramVec
}

// New registers all engine metrics on the given registerer.
func New(reg prometheus.Registerer) *Engine {
	factory := promauto.With(reg)

	return &Engine{
		HouseholdsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "hokhau_households_created_total",
			Help: "Total number of households created with their head",
		}),
		CompensationsIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "hokhau_compensations_issued_total",
			Help: "Total number of compensating household deletes issued after a failed head creation",
		}),
		CompensationsFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "hokhau_compensations_failed_total",
			Help: "Total number of compensating deletes that failed, leaving an orphaned household",
		}),
		PartialSuccessions: factory.NewCounter(prometheus.CounterOpts{
			Name: "hokhau_partial_successions_total",
			Help: "Total number of successions where the promotion step failed after the edit committed",
		}),
		TransfersExecuted: factory.NewCounter(prometheus.CounterOpts{
			Name: "hokhau_transfers_executed_total",
			Help: "Total number of committed citizen transfers",
		}),
		OrphanedHouseholds: factory.NewCounter(prometheus.CounterOpts{
			Name: "hokhau_orphaned_households_total",
			Help: "Total number of empty source households whose cleanup delete failed",
		}),
		HeadNameSyncFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "hokhau_head_name_sync_failures_total",
			Help: "Total number of best-effort head-name projections that failed",
		}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hokhau_operation_duration_seconds",
			Help:    "Duration of engine operations by name",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
	}
}

// ObserveOperation records the duration of a named engine operation.
func (m *Engine) ObserveOperation(operation string, seconds float64) {
	m.OperationDuration.WithLabelValues(operation).Observe(seconds)
}
