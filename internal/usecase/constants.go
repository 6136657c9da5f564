package usecase

import "time"

const (
	// DefaultListLimit applies when a list request carries no limit.
	DefaultListLimit = 50

	// MaxListLimit caps any list request.
	MaxListLimit = 500

	// IdempotencyKeyTTL is how long idempotency keys are retained.
	IdempotencyKeyTTL = 24 * time.Hour

	// FlowSessionTTL is how long an abandoned POS flow survives before
	// the store reaps it.
	FlowSessionTTL = 30 * time.Minute

	// PaymentSyncAttempts bounds retries against the external payment
	// system before the sync degrades to a warning.
	PaymentSyncAttempts = 3
)
