package usecase

import "github.com/shopspring/decimal"

// nopMetrics discards every observation. Constructors substitute it for a
// nil MetricsRecorder so call sites never nil-check.
type nopMetrics struct{}

func (nopMetrics) EntryCreated(string)                          {}
func (nopMetrics) EntryDeleted()                                {}
func (nopMetrics) CashInRecorded(decimal.Decimal)               {}
func (nopMetrics) ExpenseCreated()                              {}
func (nopMetrics) ExpenseReimbursed()                           {}
func (nopMetrics) ReconciliationRecorded(bool, decimal.Decimal) {}
func (nopMetrics) FlowStarted()                                 {}
func (nopMetrics) FlowFinished(string)                          {}
func (nopMetrics) PaymentSyncAttempted(string)                  {}
func (nopMetrics) AuditLogged(string, string)                   {}

func ensureMetrics(m MetricsRecorder) MetricsRecorder {
	if m == nil {
		return nopMetrics{}
	}

	return m
}
