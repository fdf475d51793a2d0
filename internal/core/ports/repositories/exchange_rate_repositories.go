package repositories

import (
	"context"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
)

// ExchangeRateProvider defines how the latest rate table is obtained from an upstream source.
type ExchangeRateProvider interface {
	// FetchLatestRates retrieves the full rate table expressed against baseCode.
	FetchLatestRates(ctx context.Context, baseCode string) (domain.RateTable, error)
}
