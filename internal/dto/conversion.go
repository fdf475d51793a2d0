package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertRequest holds the query parameters of a conversion.
// Amount is kept as typed so blank or non-numeric input can yield an empty result instead of an error.
type ConvertRequest struct {
	Amount string `form:"amount" json:"amount" binding:"max=32"`
	From   string `form:"from" json:"from" binding:"required,currencycode"`
	To     string `form:"to" json:"to" binding:"required,currencycode"`
}

// ConversionResponse defines the structure returned for a conversion.
type ConversionResponse struct {
	From            string           `json:"from"`
	To              string           `json:"to"`
	Amount          string           `json:"amount"`
	ConvertedAmount string           `json:"convertedAmount"`
	Empty           bool             `json:"empty"`
	UnitRate        *decimal.Decimal `json:"unitRate,omitempty"`
	UnitRateText    string           `json:"unitRateText,omitempty"`
	RatesAsOf       time.Time        `json:"ratesAsOf"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(conv *domain.Conversion) ConversionResponse {
	resp := ConversionResponse{
		From:            conv.From,
		To:              conv.To,
		Amount:          conv.Input,
		ConvertedAmount: conv.Display,
		Empty:           conv.Empty,
		RatesAsOf:       conv.RatesAsOf,
	}
	if conv.HasUnitRate {
		unitRate := conv.UnitRate
		resp.UnitRate = &unitRate
		resp.UnitRateText = fmt.Sprintf("1 %s = %s %s", conv.From, unitRate.String(), conv.To)
	}
	return resp
}
