package domain

import (
	"fmt"
	"strings"

	"github.com/FinRoots/finance_tracker_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// miliunitFactor converts decimal currency amounts to the canonical
// fixed-point integer representation (three implied decimal digits).
var miliunitFactor = decimal.NewFromInt(1000)

// ParseAmountToMiliunits parses a decimal amount string ("12.3", "-15.50")
// and converts it to miliunits, rounding half away from zero.
func ParseAmountToMiliunits(raw string) (int64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("empty amount: %w", apperrors.ErrParse)
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", raw, apperrors.ErrParse)
	}
	// decimal.Round rounds half away from zero, which is the rounding rule
	// fixed for miliunit conversion.
	return d.Mul(miliunitFactor).Round(0).IntPart(), nil
}

// MiliunitsToDecimal converts a miliunit amount back to its decimal value.
func MiliunitsToDecimal(amount int64) decimal.Decimal {
	return decimal.NewFromInt(amount).Div(miliunitFactor)
}

// FormatMiliunits renders a miliunit amount as a plain decimal string with
// two fractional digits, e.g. 12300 -> "12.30". Display only; the integer
// miliunit representation stays canonical.
func FormatMiliunits(amount int64) string {
	return MiliunitsToDecimal(amount).StringFixed(2)
}
