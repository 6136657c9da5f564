package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Entry metrics
	EntriesCreated *prometheus.CounterVec
	EntriesDeleted prometheus.Counter
	CashInAmount   prometheus.Histogram

	// Expense metrics
	ExpensesCreated    prometheus.Counter
	ExpensesReimbursed prometheus.Counter

	// Reconciliation metrics
	ReconciliationsCreated prometheus.Counter
	ReconciliationBalanced *prometheus.CounterVec
	DiscrepancyAmount      prometheus.Histogram

	// POS flow metrics
	FlowsStarted   prometheus.Counter
	FlowsCompleted *prometheus.CounterVec

	// Payment sync metrics
	PaymentSyncAttempts *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Audit metrics
	AuditLogsCreated *prometheus.CounterVec
}

// EntryCreated counts a created entry by type.
func (m *Metrics) EntryCreated(entryType string) {
	m.EntriesCreated.WithLabelValues(entryType).Inc()
}

// EntryDeleted counts a deleted entry.
func (m *Metrics) EntryDeleted() {
	m.EntriesDeleted.Inc()
}

// CashInRecorded observes a cash-in payment amount.
func (m *Metrics) CashInRecorded(amount decimal.Decimal) {
	m.CashInAmount.Observe(amount.InexactFloat64())
}

// ExpenseCreated counts a created expense.
func (m *Metrics) ExpenseCreated() {
	m.ExpensesCreated.Inc()
}

// ExpenseReimbursed counts an expense marked reimbursed.
func (m *Metrics) ExpenseReimbursed() {
	m.ExpensesReimbursed.Inc()
}

// ReconciliationRecorded counts a reconciliation, its outcome, and
// observes the absolute discrepancy.
func (m *Metrics) ReconciliationRecorded(balanced bool, discrepancy decimal.Decimal) {
	m.ReconciliationsCreated.Inc()

	outcome := "balanced"
	if !balanced {
		outcome = "discrepancy"
	}
	m.ReconciliationBalanced.WithLabelValues(outcome).Inc()

	m.DiscrepancyAmount.Observe(discrepancy.Abs().InexactFloat64())
}

// FlowStarted counts a started POS flow.
func (m *Metrics) FlowStarted() {
	m.FlowsStarted.Inc()
}

// FlowFinished counts a finished POS flow by outcome.
func (m *Metrics) FlowFinished(outcome string) {
	m.FlowsCompleted.WithLabelValues(outcome).Inc()
}

// PaymentSyncAttempted counts a payment sync attempt by result.
func (m *Metrics) PaymentSyncAttempted(result string) {
	m.PaymentSyncAttempts.WithLabelValues(result).Inc()
}

// AuditLogged counts an audit row by action and status.
func (m *Metrics) AuditLogged(action, status string) {
	m.AuditLogsCreated.WithLabelValues(action, status).Inc()
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Entry metrics
		EntriesCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashfloat_entries_created_total",
				Help: "Total number of cash entries created by type",
			},
			[]string{"type"},
		),
		EntriesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashfloat_entries_deleted_total",
			Help: "Total number of cash entries deleted",
		}),
		CashInAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cashfloat_cash_in_amount",
			Help:    "Cash-in payment amounts",
			Buckets: []float64{10, 50, 100, 250, 500, 1000, 5000},
		}),

		// Expense metrics
		ExpensesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashfloat_expenses_created_total",
			Help: "Total number of expenses created",
		}),
		ExpensesReimbursed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashfloat_expenses_reimbursed_total",
			Help: "Total number of out-of-pocket expenses marked reimbursed",
		}),

		// Reconciliation metrics
		ReconciliationsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashfloat_reconciliations_created_total",
			Help: "Total number of reconciliations recorded",
		}),
		ReconciliationBalanced: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashfloat_reconciliation_results_total",
				Help: "Reconciliation results by outcome",
			},
			[]string{"outcome"},
		),
		DiscrepancyAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "cashfloat_discrepancy_amount",
			Help:    "Absolute reconciliation discrepancy amounts",
			Buckets: []float64{0.01, 0.5, 1, 5, 10, 50, 100},
		}),

		// POS flow metrics
		FlowsStarted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cashfloat_flows_started_total",
			Help: "Total number of POS flows started",
		}),
		FlowsCompleted: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashfloat_flows_completed_total",
				Help: "Total number of POS flows finished by outcome",
			},
			[]string{"outcome"},
		),

		// Payment sync metrics
		PaymentSyncAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashfloat_payment_sync_total",
				Help: "Total payment sync attempts by result",
			},
			[]string{"result"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashfloat_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "cashfloat_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Audit metrics
		AuditLogsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cashfloat_audit_logs_total",
				Help: "Total audit logs created",
			},
			[]string{"action", "status"},
		),
	}
}
