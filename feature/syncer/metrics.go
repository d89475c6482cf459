package syncer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// syncRequests counts sync calls.
	// Labels: mode (upsert, overwrite), result (success, error)
	syncRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "partflow",
		Subsystem: "sync",
		Name:      "requests_total",
		Help:      "Total sync calls by mode and result",
	}, []string{"mode", "result"})

	// syncRows counts rows touched by merges.
	// Labels: table, action (updated, appended, discarded)
	syncRows = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "partflow",
		Subsystem: "sync",
		Name:      "rows_total",
		Help:      "Rows updated, appended or discarded per table",
	}, []string{"table", "action"})

	// schemaMigrations counts header changes.
	// Labels: table, kind (initialized, rule, generic, failed)
	schemaMigrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "partflow",
		Name:      "schema_migrations_total",
		Help:      "Schema migrations applied per table",
	}, []string{"table", "kind"})
)

func recordSummary(table string, updated, appended, discarded int) {
	if updated > 0 {
		syncRows.WithLabelValues(table, "updated").Add(float64(updated))
	}
	if appended > 0 {
		syncRows.WithLabelValues(table, "appended").Add(float64(appended))
	}
	if discarded > 0 {
		syncRows.WithLabelValues(table, "discarded").Add(float64(discarded))
	}
}
