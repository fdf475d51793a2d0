package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/dto"
	"github.com/SscSPs/currency_companion_app/internal/utils"
	"github.com/SscSPs/currency_companion_app/internal/utils/conversion"
)

const maxCodeSuggestions = 3

// ConversionService converts amounts against the rate store's current table.
type ConversionService struct {
	BaseService
	rates portssvc.RateStoreReaderSvc
}

// NewConversionService creates a ConversionService reading from rates.
func NewConversionService(rates portssvc.RateStoreReaderSvc) *ConversionService {
	return &ConversionService{rates: rates}
}

var _ portssvc.ConversionSvcFacade = (*ConversionService)(nil)

// Convert converts req.Amount. Only codes present in the loaded table are accepted,
// which keeps the selected pair inside the table once it is non-empty.
func (s *ConversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*domain.Conversion, error) {
	from := utils.NormalizeCurrencyCode(req.From)
	to := utils.NormalizeCurrencyCode(req.To)
	if !utils.IsCurrencyCode(from) || !utils.IsCurrencyCode(to) {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}

	table, err := s.rates.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to convert in service: %w", err)
	}

	for _, code := range []string{from, to} {
		if table.Has(code) {
			continue
		}
		msg := fmt.Sprintf("currency code '%s' is not available", code)
		if suggestions := utils.SuggestCurrencyCodes(code, table.Codes(), maxCodeSuggestions); len(suggestions) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(suggestions, ", "))
		}
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, msg)
	}

	conv := conversion.Convert(req.Amount, from, to, table)
	s.LogDebug(ctx, "Converted amount",
		slog.String("from", from),
		slog.String("to", to),
		slog.Bool("empty", conv.Empty),
		slog.String("display", conv.Display))
	return &conv, nil
}
