package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type RateStoreServiceTestSuite struct {
	suite.Suite
	mockProvider *MockExchangeRateProvider
	service      portssvc.RateStoreSvcFacade
}

func (suite *RateStoreServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockExchangeRateProvider)
	suite.service = services.NewRateStoreService(suite.mockProvider,
		services.WithRateStoreClock(func() time.Time { return testNow }))
}

func (suite *RateStoreServiceTestSuite) TestStartsLoading() {
	ctx := context.Background()

	snapshot := suite.service.Snapshot(ctx)
	suite.Equal(domain.RateStatusLoading, snapshot.Status)
	suite.False(snapshot.HasTable())

	_, err := suite.service.Table(ctx)
	suite.ErrorIs(err, apperrors.ErrRatesUnavailable)
}

func (suite *RateStoreServiceTestSuite) TestInitialize_Success() {
	ctx := context.Background()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(testRateTable(), nil).Once()

	snapshot, err := suite.service.Initialize(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.RateStatusLoaded, snapshot.Status)
	suite.Empty(snapshot.Error)
	suite.Equal(testNow, snapshot.LastAttemptAt)

	table, err := suite.service.Table(ctx)
	suite.Require().NoError(err)
	suite.Len(table.Rates, 5)
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateStoreServiceTestSuite) TestInitialize_FailureSetsMessage() {
	ctx := context.Background()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(domain.RateTable{}, errors.New("dial tcp: timeout")).Once()

	snapshot, err := suite.service.Initialize(ctx)

	suite.ErrorIs(err, apperrors.ErrRatesUnavailable)
	suite.Equal(domain.RateStatusError, snapshot.Status)
	suite.Equal("Failed to fetch exchange rates. Please try again later.", snapshot.Error)
	suite.False(snapshot.HasTable())

	_, err = suite.service.Table(ctx)
	suite.ErrorIs(err, apperrors.ErrRatesUnavailable)
}

func (suite *RateStoreServiceTestSuite) TestRefreshAfterFailedFetch_Recovers() {
	ctx := context.Background()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(domain.RateTable{}, errors.New("503")).Once()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(testRateTable(), nil).Once()

	_, err := suite.service.Initialize(ctx)
	suite.Require().Error(err)

	snapshot, err := suite.service.Refresh(ctx)

	suite.Require().NoError(err)
	suite.Equal(domain.RateStatusLoaded, snapshot.Status)
	suite.Empty(snapshot.Error)
	suite.True(snapshot.Table.Rates["EUR"].Equal(decimal.RequireFromString("0.92")))
	suite.mockProvider.AssertExpectations(suite.T())
}

func (suite *RateStoreServiceTestSuite) TestRefreshFailure_KeepsPreviousTable() {
	ctx := context.Background()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(testRateTable(), nil).Once()
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(domain.RateTable{}, errors.New("boom")).Once()

	_, err := suite.service.Initialize(ctx)
	suite.Require().NoError(err)

	snapshot, err := suite.service.Refresh(ctx)

	suite.ErrorIs(err, apperrors.ErrRatesUnavailable)
	suite.Equal(domain.RateStatusError, snapshot.Status)
	suite.Equal("Failed to refresh rates", snapshot.Error)
	suite.True(snapshot.HasTable())

	table, err := suite.service.Table(ctx)
	suite.Require().NoError(err)
	suite.Len(table.Rates, 5)
}

func (suite *RateStoreServiceTestSuite) TestEmptyTableIsAFailure() {
	ctx := context.Background()
	empty := domain.NewRateTable("USD", nil, testNow)
	suite.mockProvider.On("FetchLatestRates", ctx, "USD").Return(empty, nil).Once()

	snapshot, err := suite.service.Initialize(ctx)

	suite.ErrorIs(err, apperrors.ErrRatesUnavailable)
	suite.Equal(domain.RateStatusError, snapshot.Status)
}

func (suite *RateStoreServiceTestSuite) TestWithBaseCurrency() {
	ctx := context.Background()
	provider := new(MockExchangeRateProvider)
	provider.On("FetchLatestRates", ctx, "EUR").Return(testRateTable(), nil).Once()
	svc := services.NewRateStoreService(provider, services.WithBaseCurrency("EUR"))

	_, err := svc.Initialize(ctx)

	suite.NoError(err)
	provider.AssertExpectations(suite.T())
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchLatestRates", mock.Anything, mock.Anything)
}

func TestRateStoreService(t *testing.T) {
	suite.Run(t, new(RateStoreServiceTestSuite))
}
