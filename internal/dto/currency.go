package dto

import (
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
	FlagURL string `json:"flagUrl,omitempty"`
}

// ListCurrenciesParams holds the query parameters for listing currencies.
type ListCurrenciesParams struct {
	Query string `form:"q"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:    curr.Code,
		Name:    curr.Name,
		Symbol:  curr.Symbol,
		FlagURL: curr.FlagURL,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
