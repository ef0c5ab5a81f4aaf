package output

import (
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount as USD with 2 decimals. Values are
// rounded through decimal so formatters and the float64 engine agree on
// cents. Kept here so it can be reused by multiple formatters and unit
// tested in isolation.
func FormatCurrency(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}

// FormatPercentage formats a fraction-of-100 value (e.g. 78.4) with one
// decimal and a trailing percent sign.
func FormatPercentage(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(1) + "%"
}

// FormatRate formats a fractional rate (0.07) as a percentage (7.0%).
func FormatRate(rate float64) string {
	return decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
