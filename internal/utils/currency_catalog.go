package utils

import (
	"strings"
	"unicode"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
)

const flagURLTemplate = "https://flagcdn.com/w80/%s.png"

var currencyNames = map[string]string{
	"USD": "US Dollar",
	"EUR": "Euro",
	"GBP": "British Pound",
	"JPY": "Japanese Yen",
	"CAD": "Canadian Dollar",
	"AUD": "Australian Dollar",
	"CNY": "Chinese Yuan",
	"INR": "Indian Rupee",
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "C$",
	"AUD": "A$",
	"CNY": "¥",
	"INR": "₹",
}

// popularCodes is the display order of the popular currencies grid.
var popularCodes = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CNY", "INR"}

// PopularCurrencies returns the static popular currency list in display order.
func PopularCurrencies() []domain.Currency {
	currencies := make([]domain.Currency, len(popularCodes))
	for i, code := range popularCodes {
		currencies[i] = CurrencyFromCode(code)
	}
	return currencies
}

// CurrencyName returns the display name for code, or the code itself when unknown.
func CurrencyName(code string) string {
	if name, ok := currencyNames[code]; ok {
		return name
	}
	return code
}

// CurrencySymbol returns the symbol for code, or the code itself when unknown.
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}

// FlagURL guesses a flag image for code: EUR maps to the EU flag, anything else
// to the country named by the first two letters of the code.
func FlagURL(code string) string {
	if len(code) < 2 {
		return ""
	}
	country := strings.ToLower(code[:2])
	if code == "EUR" {
		country = "eu"
	}
	return strings.Replace(flagURLTemplate, "%s", country, 1)
}

// CurrencyFromCode builds the currency metadata for a rate table key.
func CurrencyFromCode(code string) domain.Currency {
	return domain.Currency{
		Code:    code,
		Name:    CurrencyName(code),
		Symbol:  CurrencySymbol(code),
		FlagURL: FlagURL(code),
	}
}

// NormalizeCurrencyCode trims and upper-cases a user supplied code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsCurrencyCode reports whether s looks like a 3-letter alphabetic code, in any case.
func IsCurrencyCode(s string) bool {
	if len(s) != domain.CurrencyCodeLength {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// SwapCurrencies exchanges the source and target codes of a pair.
func SwapCurrencies(from, to string) (string, string) {
	return to, from
}
