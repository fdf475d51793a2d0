package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_companion_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
)

const (
	initialFetchErrorMessage = "Failed to fetch exchange rates. Please try again later."
	refreshErrorMessage      = "Failed to refresh rates"
)

// rateStoreService holds the latest rate table fetched from the provider.
// There is no caching or polling: the table only changes on Initialize or Refresh.
type rateStoreService struct {
	BaseService
	provider portsrepo.ExchangeRateProvider
	baseCode string
	now      func() time.Time

	mu       sync.RWMutex
	snapshot domain.RateSnapshot
}

// RateStoreOption is a functional option for configuring the rate store
type RateStoreOption func(*rateStoreService)

// WithRateStoreClock overrides the clock used to stamp fetch attempts
func WithRateStoreClock(now func() time.Time) RateStoreOption {
	return func(s *rateStoreService) {
		s.now = now
	}
}

// WithBaseCurrency overrides the base currency the provider is asked for
func WithBaseCurrency(code string) RateStoreOption {
	return func(s *rateStoreService) {
		s.baseCode = code
	}
}

// NewRateStoreService creates a rate store backed by provider. The store starts in the loading state.
func NewRateStoreService(provider portsrepo.ExchangeRateProvider, options ...RateStoreOption) portssvc.RateStoreSvcFacade {
	svc := &rateStoreService{
		provider: provider,
		baseCode: domain.BaseCurrencyCode,
		now:      time.Now,
		snapshot: domain.RateSnapshot{Status: domain.RateStatusLoading},
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.RateStoreSvcFacade = (*rateStoreService)(nil)

// Initialize performs the fetch issued when a client first comes up.
func (s *rateStoreService) Initialize(ctx context.Context) (domain.RateSnapshot, error) {
	return s.load(ctx, initialFetchErrorMessage)
}

// Refresh re-fetches on demand with the same success and failure contract as Initialize.
func (s *rateStoreService) Refresh(ctx context.Context) (domain.RateSnapshot, error) {
	return s.load(ctx, refreshErrorMessage)
}

func (s *rateStoreService) load(ctx context.Context, failureMessage string) (domain.RateSnapshot, error) {
	attemptAt := s.now()

	s.mu.Lock()
	s.snapshot.Status = domain.RateStatusLoading
	s.snapshot.Error = ""
	s.snapshot.LastAttemptAt = attemptAt
	s.mu.Unlock()

	s.LogInfo(ctx, "Fetching exchange rates", slog.String("base", s.baseCode))
	table, err := s.provider.FetchLatestRates(ctx, s.baseCode)
	if err == nil && table.IsEmpty() {
		err = fmt.Errorf("provider returned no rates for base '%s'", s.baseCode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		// keep whatever table was loaded before
		s.snapshot.Status = domain.RateStatusError
		s.snapshot.Error = failureMessage
		s.LogError(ctx, err, "Failed to fetch exchange rates",
			slog.String("base", s.baseCode),
			slog.Bool("has_previous_table", s.snapshot.HasTable()))
		return s.snapshot, fmt.Errorf("%w: %w", apperrors.ErrRatesUnavailable, err)
	}

	s.snapshot = domain.RateSnapshot{
		Status:        domain.RateStatusLoaded,
		Table:         table,
		LastAttemptAt: attemptAt,
	}
	s.LogInfo(ctx, "Exchange rates loaded",
		slog.String("base", table.Base),
		slog.Int("currency_count", len(table.Rates)))
	return s.snapshot, nil
}

// Snapshot returns the current state of the store.
func (s *rateStoreService) Snapshot(ctx context.Context) domain.RateSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Table returns the loaded rate table, or apperrors.ErrRatesUnavailable if nothing has loaded yet.
func (s *rateStoreService) Table(ctx context.Context) (domain.RateTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.snapshot.HasTable() {
		if s.snapshot.Status == domain.RateStatusLoading {
			return domain.RateTable{}, fmt.Errorf("%w: exchange rates are still loading", apperrors.ErrRatesUnavailable)
		}
		return domain.RateTable{}, fmt.Errorf("%w: %s", apperrors.ErrRatesUnavailable, s.snapshot.Error)
	}
	return s.snapshot.Table, nil
}
