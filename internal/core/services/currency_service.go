package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/utils"
)

// CurrencyService derives the currency list from the rate store's current table.
type CurrencyService struct {
	BaseService
	rates portssvc.RateStoreReaderSvc
}

// NewCurrencyService creates a CurrencyService reading from rates.
func NewCurrencyService(rates portssvc.RateStoreReaderSvc) *CurrencyService {
	return &CurrencyService{rates: rates}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	code := utils.NormalizeCurrencyCode(currencyCode)
	if !utils.IsCurrencyCode(code) {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	if !table.Has(code) {
		return nil, fmt.Errorf("%w: currency '%s'", apperrors.ErrNotFound, code)
	}

	currency := utils.CurrencyFromCode(code)
	return &currency, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context, query string) ([]domain.Currency, error) {
	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(query))
	currencies := make([]domain.Currency, 0, len(table.Rates))
	for _, code := range table.Codes() {
		currency := utils.CurrencyFromCode(code)
		if needle != "" &&
			!strings.Contains(strings.ToLower(currency.Code), needle) &&
			!strings.Contains(strings.ToLower(currency.Name), needle) {
			continue
		}
		currencies = append(currencies, currency)
	}
	return currencies, nil
}

func (s *CurrencyService) PopularCurrencies(ctx context.Context) []domain.Currency {
	return utils.PopularCurrencies()
}
