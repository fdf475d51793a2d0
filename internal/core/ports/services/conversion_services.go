package services

import (
	"context"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	"github.com/SscSPs/currency_companion_app/internal/dto"
)

// ConversionSvcFacade defines currency conversion against the current rate table
type ConversionSvcFacade interface {
	// Convert converts req.Amount from req.From to req.To.
	Convert(ctx context.Context, req dto.ConvertRequest) (*domain.Conversion, error)
}
