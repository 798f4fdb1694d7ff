// Package metrics exposes Prometheus counters for invoice ingestion and billing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mess-bill/internal/domain"
)

const namespace = "messbill"

// Metrics implements usecase.Recorder.
type Metrics struct {
	invoicesAccepted prometheus.Counter
	invoicesRejected prometheus.Counter
	invoiceRows      prometheus.Counter
	billsComputed    prometheus.Counter
	perStudent       prometheus.Gauge
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		invoicesAccepted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_accepted_total",
			Help:      "Invoice uploads ingested into a ledger.",
		}),
		invoicesRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoices_rejected_total",
			Help:      "Invoice uploads skipped because no amount column was found.",
		}),
		invoiceRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "invoice_rows_total",
			Help:      "Ledger rows produced from accepted invoice uploads.",
		}),
		billsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bills_computed_total",
			Help:      "Bills computed.",
		}),
		perStudent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_per_student_amount",
			Help:      "Per-student amount of the most recently computed bill.",
		}),
	}
	reg.MustRegister(m.invoicesAccepted, m.invoicesRejected, m.invoiceRows, m.billsComputed, m.perStudent)
	return m
}

func (m *Metrics) InvoiceAccepted(_ string, rows int) {
	m.invoicesAccepted.Inc()
	m.invoiceRows.Add(float64(rows))
}

func (m *Metrics) InvoiceRejected(_ string) {
	m.invoicesRejected.Inc()
}

func (m *Metrics) BillComputed(summary domain.BillSummary) {
	m.billsComputed.Inc()
	m.perStudent.Set(summary.PerStudentAmount)
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
