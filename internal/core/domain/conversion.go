package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Conversion is the outcome of converting an amount between two currencies.
// When Empty is set the input amount was blank or not a number and no figures are present.
type Conversion struct {
	From        string
	To          string
	Input       string
	Amount      decimal.Decimal
	Result      decimal.Decimal
	Display     string
	Empty       bool
	UnitRate    decimal.Decimal
	HasUnitRate bool
	RatesAsOf   time.Time
}
