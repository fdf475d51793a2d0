package handlers_test

import (
	"context"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateStoreService ---
type MockRateStoreService struct {
	mock.Mock
}

func (m *MockRateStoreService) Snapshot(ctx context.Context) domain.RateSnapshot {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateSnapshot)
}
func (m *MockRateStoreService) Table(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable), args.Error(1)
}
func (m *MockRateStoreService) Initialize(ctx context.Context) (domain.RateSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateSnapshot), args.Error(1)
}
func (m *MockRateStoreService) Refresh(ctx context.Context) (domain.RateSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateSnapshot), args.Error(1)
}

var _ portssvc.RateStoreSvcFacade = (*MockRateStoreService)(nil)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) ListCurrencies(ctx context.Context, query string) ([]domain.Currency, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}
func (m *MockCurrencyService) PopularCurrencies(ctx context.Context) []domain.Currency {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Currency)
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, req dto.ConvertRequest) (*domain.Conversion, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

var _ portssvc.ConversionSvcFacade = (*MockConversionService)(nil)

// --- Mock AssistantService ---
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) ListMessages(ctx context.Context, sessionID string) ([]domain.Message, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Message), args.Error(1)
}
func (m *MockAssistantService) StartSession(ctx context.Context) (*domain.Session, []domain.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Session), args.Get(1).([]domain.Message), args.Error(2)
}
func (m *MockAssistantService) SendMessage(ctx context.Context, sessionID string, text string) (*domain.Message, error) {
	args := m.Called(ctx, sessionID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}
func (m *MockAssistantService) Subscribe(ctx context.Context, sessionID string) (<-chan domain.Message, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.Message), args.Error(1)
}
func (m *MockAssistantService) Unsubscribe(sessionID string, ch <-chan domain.Message) {
	m.Called(sessionID, ch)
}

var _ portssvc.AssistantSvcFacade = (*MockAssistantService)(nil)

// --- Mock SettingsService ---
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetSettings(ctx context.Context) (domain.SettingsFlags, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SettingsFlags), args.Error(1)
}
func (m *MockSettingsService) ToggleSetting(ctx context.Context, flag domain.SettingFlag) (domain.SettingsFlags, error) {
	args := m.Called(ctx, flag)
	return args.Get(0).(domain.SettingsFlags), args.Error(1)
}
func (m *MockSettingsService) ClearData(ctx context.Context, confirmed bool) (string, error) {
	args := m.Called(ctx, confirmed)
	return args.String(0), args.Error(1)
}

var _ portssvc.SettingsSvcFacade = (*MockSettingsService)(nil)
