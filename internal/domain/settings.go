package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the typed configuration aggregate for one shop: tax rate,
// the sales-people list shown on the POS, the QuickBooks connection, and
// the opening balances that anchor every balance computation. It is loaded
// whole with explicit defaults and saved whole with an explicit operation.
type Settings struct {
	UpdatedAt             time.Time
	OpeningDate           time.Time
	QuickBooksRealmID     string
	QuickBooksDepositRef  string
	SalesPeople           []string
	TaxRate               decimal.Decimal
	OpeningRegister       decimal.Decimal
	OpeningDeposit        decimal.Decimal
}

// DefaultSettings returns the configuration a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		TaxRate:         decimal.Zero,
		SalesPeople:     []string{},
		OpeningRegister: decimal.Zero,
		OpeningDeposit:  decimal.Zero,
	}
}

// OpeningBalance returns the opening balances as a Balance pair.
func (s Settings) OpeningBalance() Balance {
	return Balance{Register: s.OpeningRegister, Deposit: s.OpeningDeposit}
}

// Validate checks the aggregate before a save.
func (s *Settings) Validate() error {
	if s.TaxRate.IsNegative() {
		return ErrInvalidAmount
	}

	if s.OpeningRegister.IsNegative() || s.OpeningDeposit.IsNegative() {
		return ErrInvalidAmount
	}

	return nil
}
