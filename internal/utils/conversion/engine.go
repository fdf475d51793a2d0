// Package conversion holds the pure arithmetic behind currency conversion.
// Every amount is normalised through the rate table's base currency.
package conversion

import (
	"strings"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	"github.com/SscSPs/currency_companion_app/internal/utils"
	"github.com/shopspring/decimal"
)

// MaxAmountLength bounds the typed amount, matching what the input fields accept.
const MaxAmountLength = 32

// ParseAmount parses user input. Blank, non-numeric, over-long or exponent input reports ok=false.
func ParseAmount(input string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" || len(trimmed) > MaxAmountLength {
		return decimal.Zero, false
	}
	// exponents like 1e10000000 expand to millions of digits once formatted
	if strings.ContainsAny(trimmed, "eE") {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// Convert converts the typed amount from one currency to another using rates.
// Identity conversions return the input unchanged. Blank or non-numeric input, or a
// code missing from rates, yields a Conversion with Empty set rather than an error.
func Convert(input string, from, to string, rates domain.RateTable) domain.Conversion {
	conv := domain.Conversion{
		From:      from,
		To:        to,
		Input:     input,
		RatesAsOf: rates.FetchedAt,
	}
	conv.UnitRate, conv.HasUnitRate = UnitRate(from, to, rates)

	amount, ok := ParseAmount(input)
	if !ok {
		conv.Empty = true
		return conv
	}
	conv.Amount = amount

	if from == to {
		conv.Result = amount
		conv.Display = strings.TrimSpace(input)
		return conv
	}

	result, ok := convertThroughBase(amount, from, to, rates)
	if !ok {
		conv.Empty = true
		return conv
	}
	conv.Result = result
	conv.Display = utils.FormatForDisplay(result)
	return conv
}

func convertThroughBase(amount decimal.Decimal, from, to string, rates domain.RateTable) (decimal.Decimal, bool) {
	inBase := amount
	if from != rates.Base {
		fromRate, ok := rates.Rate(from)
		if !ok || fromRate.IsZero() {
			return decimal.Zero, false
		}
		inBase = amount.Div(fromRate)
	}
	if to == rates.Base {
		return inBase, true
	}
	toRate, ok := rates.Rate(to)
	if !ok {
		return decimal.Zero, false
	}
	return inBase.Mul(toRate), true
}

// UnitRate returns how many units of to one unit of from buys, unrounded.
// ok is false while either rate is unknown, which is the case before any table loads.
func UnitRate(from, to string, rates domain.RateTable) (decimal.Decimal, bool) {
	if rates.IsEmpty() {
		return decimal.Zero, false
	}
	fromRate, ok := rates.Rate(from)
	if !ok || fromRate.IsZero() {
		return decimal.Zero, false
	}
	toRate, ok := rates.Rate(to)
	if !ok {
		return decimal.Zero, false
	}
	return toRate.Div(fromRate), true
}
