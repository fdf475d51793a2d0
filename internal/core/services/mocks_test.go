package services_test

import (
	"context"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_companion_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateProvider ---
type MockExchangeRateProvider struct {
	mock.Mock
}

func (m *MockExchangeRateProvider) FetchLatestRates(ctx context.Context, baseCode string) (domain.RateTable, error) {
	args := m.Called(ctx, baseCode)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

var _ portsrepo.ExchangeRateProvider = (*MockExchangeRateProvider)(nil)

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (domain.SettingsFlags, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.SettingsFlags), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.SettingsFlags) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) ToggleSetting(ctx context.Context, flag domain.SettingFlag) (domain.SettingsFlags, error) {
	args := m.Called(ctx, flag)
	return args.Get(0).(domain.SettingsFlags), args.Error(1)
}

var _ portsrepo.SettingsRepositoryFacade = (*MockSettingsRepository)(nil)

// --- Mock RateStoreReader ---
type MockRateStoreReader struct {
	mock.Mock
}

func (m *MockRateStoreReader) Snapshot(ctx context.Context) domain.RateSnapshot {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateSnapshot)
}

func (m *MockRateStoreReader) Table(ctx context.Context) (domain.RateTable, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.RateTable), args.Error(1)
}

func testRateTable() domain.RateTable {
	return domain.NewRateTable("USD", map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"EUR": decimal.RequireFromString("0.92"),
		"GBP": decimal.RequireFromString("0.79"),
		"JPY": decimal.RequireFromString("151.5"),
		"UAH": decimal.RequireFromString("39.2"),
	}, testNow)
}
