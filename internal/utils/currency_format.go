package utils

import (
	"github.com/shopspring/decimal"
)

// DisplayPrecision is the number of decimal places shown for converted amounts.
const DisplayPrecision = 2

// FormatWithPrecision formats an amount with the given precision, keeping trailing zeros.
// Example: amount 9 with precision 2 returns "9.00"
// Example: amount 12.3456 with precision 2 returns "12.35"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatForDisplay formats an amount with DisplayPrecision decimal places.
func FormatForDisplay(amount decimal.Decimal) string {
	return FormatWithPrecision(amount, DisplayPrecision)
}
