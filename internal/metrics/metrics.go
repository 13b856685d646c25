// Package metrics exposes Prometheus collectors for the bill lifecycle.
// Collectors register on the default registry; the host application decides
// how (or whether) to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Transitions counts lifecycle operations by operation name and
	// outcome ("ok" or "error").
	Transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billflow_transitions_total",
		Help: "Bill lifecycle operations by operation and outcome.",
	}, []string{"operation", "outcome"})

	// BillsCreated counts bills successfully created.
	BillsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "billflow_bills_created_total",
		Help: "Bills successfully created.",
	})

	// BillsDeleted counts bills removed from the store.
	BillsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "billflow_bills_deleted_total",
		Help: "Bills deleted from the store.",
	})
)

// RecordTransition increments the transition counter for op with an
// outcome derived from err.
func RecordTransition(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	Transitions.WithLabelValues(op, outcome).Inc()
}
