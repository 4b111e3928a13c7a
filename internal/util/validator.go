package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// amounts are capped to keep fat-finger entries out of the books
var maxAmount = decimal.RequireFromString("10000000")

// ParseAmount parses a required monetary field. The amount must be a valid
// non-negative decimal within the cap.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("amount is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount must be non-negative, got %s", d)
	}
	if d.GreaterThan(maxAmount) {
		return decimal.Zero, fmt.Errorf("amount too large, got %s", d)
	}
	return d, nil
}

// ParseOptionalAmount parses an optional monetary field. Absent or blank
// input normalizes to null, not zero: both contribute zero to sums but only
// an explicit "0" round-trips as a zero entry.
func ParseOptionalAmount(s string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(s) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

// ParseDate parses a calendar date in YYYY-MM-DD form. Malformed dates are
// rejected loudly; nothing silently drops a bad filter bound.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return t, nil
}

// RequireName validates a required string field (e.g. ledger name): it must
// be non-empty after trimming.
func RequireName(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%s is required", field)
	}
	return s, nil
}
