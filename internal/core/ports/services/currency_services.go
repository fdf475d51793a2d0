package services

import (
	"context"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code from the loaded rate table.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves the currencies derived from the loaded rate table,
	// filtered by code or name when query is not empty.
	ListCurrencies(ctx context.Context, query string) ([]domain.Currency, error)

	// PopularCurrencies returns the static list of popular currencies.
	PopularCurrencies(ctx context.Context) []domain.Currency
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// RateStoreReaderSvc defines read operations on the rate store
type RateStoreReaderSvc interface {
	// Snapshot returns the current state of the store.
	Snapshot(ctx context.Context) domain.RateSnapshot

	// Table returns the loaded rate table or apperrors.ErrRatesUnavailable if none has loaded.
	Table(ctx context.Context) (domain.RateTable, error)
}

// RateStoreWriterSvc defines the operations that (re)load the rate store
type RateStoreWriterSvc interface {
	// Initialize performs the initial fetch.
	Initialize(ctx context.Context) (domain.RateSnapshot, error)

	// Refresh re-fetches the rate table on demand.
	Refresh(ctx context.Context) (domain.RateSnapshot, error)
}

// RateStoreSvcFacade combines all rate store service interfaces
type RateStoreSvcFacade interface {
	RateStoreReaderSvc
	RateStoreWriterSvc
}
