package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	RequestsApprovedTotal prometheus.Counter
	PaymentsRecordedTotal *prometheus.CounterVec
	LoansOverdueTotal     prometheus.Counter
	ExpensesRecordedTotal prometheus.Counter
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "microloan_ledger_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		RequestsApprovedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "microloan_ledger_requests_approved_total",
				Help: "Total number of loan requests approved into loans.",
			},
		),
		PaymentsRecordedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "microloan_ledger_payments_recorded_total",
				Help: "Total number of payment registration attempts by outcome.",
			},
			[]string{"status"},
		),
		LoansOverdueTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "microloan_ledger_loans_overdue_total",
				Help: "Total number of loans transitioned to OVERDUE.",
			},
		),
		ExpensesRecordedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "microloan_ledger_expenses_recorded_total",
				Help: "Total number of expenses recorded.",
			},
		),
	}
)

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordPayment(status string) {
	Business.PaymentsRecordedTotal.WithLabelValues(status).Inc()
}

func RecordRequestApproved() {
	Business.RequestsApprovedTotal.Inc()
}

func RecordLoanOverdue() {
	Business.LoansOverdueTotal.Inc()
}

func RecordExpense() {
	Business.ExpensesRecordedTotal.Inc()
}
