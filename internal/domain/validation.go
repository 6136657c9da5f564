package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrAmountTooLarge   = errors.New("amount exceeds maximum allowed")
	ErrAmountPrecision  = errors.New("amount has more than two decimal places")
	ErrTextTooLong      = errors.New("text field exceeds maximum length")
	ErrInvalidDateRange = errors.New("start date is after end date")
)

// Validation constants
const (
	MaxCategoryLength    = 100
	MaxDescriptionLength = 255
	MaxNotesLength       = 1000
	MaxCashAmount        = "1000000" // no single drawer event moves a million
)

// ValidateAmount checks a money amount: positive, at most two decimal
// places, below the sanity ceiling.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if !amount.Equal(amount.Round(2)) {
		return ErrAmountPrecision
	}

	maxAmount, _ := decimal.NewFromString(MaxCashAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum is %s", ErrAmountTooLarge, MaxCashAmount)
	}

	return nil
}

// ValidateCategory checks a category string.
func ValidateCategory(category string) error {
	category = strings.TrimSpace(category)

	if category == "" {
		return ErrMissingCategory
	}

	if len(category) > MaxCategoryLength {
		return fmt.Errorf("%w: category exceeds %d characters", ErrTextTooLong, MaxCategoryLength)
	}

	return nil
}

// ValidateText checks an optional free-text field against a length cap.
func ValidateText(text string, maxLen int) error {
	if len(text) > maxLen {
		return fmt.Errorf("%w: exceeds %d characters", ErrTextTooLong, maxLen)
	}

	return nil
}

// ValidateDateRange checks an optional date range.
func ValidateDateRange(start, end *time.Time) error {
	if start != nil && end != nil && start.After(*end) {
		return ErrInvalidDateRange
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 500
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
