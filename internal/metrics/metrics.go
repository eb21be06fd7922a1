package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is nil-safe: a nil receiver turns every increment into a no-op so
// tests can construct the service without a registry.
type Metrics struct {
	passesCreated *prometheus.CounterVec
	importRows    *prometheus.CounterVec
	conflicts     *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		passesCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "passes_created_total",
			Help: "Passes created, by category.",
		}, []string{"category"}),
		importRows: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pass_import_rows_total",
			Help: "Bulk import rows processed, by outcome.",
		}, []string{"status"}),
		conflicts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pass_uniqueness_conflicts_total",
			Help: "Rejected writes that collided on cnic or (category, pass_id).",
		}, []string{"kind"}),
	}
}

func (m *Metrics) IncPassCreated(category string) {
	if m == nil {
		return
	}

	m.passesCreated.WithLabelValues(category).Inc()
}

func (m *Metrics) IncImportRow(status string) {
	if m == nil {
		return
	}

	m.importRows.WithLabelValues(status).Inc()
}

func (m *Metrics) IncConflict(kind string) {
	if m == nil {
		return
	}

	m.conflicts.WithLabelValues(kind).Inc()
}
