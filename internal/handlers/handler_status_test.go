package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	"github.com/SscSPs/currency_companion_app/internal/dto"
	"github.com/SscSPs/currency_companion_app/internal/handlers"
	"github.com/SscSPs/currency_companion_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StatusHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockRateService *MockRateStoreService
}

func (suite *StatusHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockRateService = new(MockRateStoreService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterStatusRoutes(v1, suite.mockRateService)
}

func (suite *StatusHandlerTestSuite) getStatus() dto.StatusResponse {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/status", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Require().Equal(http.StatusOK, w.Code)
	var body dto.StatusResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (suite *StatusHandlerTestSuite) TestStatus_RatesLoaded() {
	fetchedAt := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	suite.mockRateService.On("Snapshot", mock.Anything).Return(loadedSnapshot(fetchedAt)).Once()

	body := suite.getStatus()

	suite.Equal(config.AppName, body.Service)
	suite.Equal(config.AppVersion, body.Version)
	suite.Equal(domain.RateStatusLoaded, body.RatesStatus)
	suite.Equal(2, body.CurrencyCount)
	suite.Require().NotNil(body.RatesAsOf)
	suite.True(fetchedAt.Equal(*body.RatesAsOf))
	suite.mockRateService.AssertExpectations(suite.T())
}

func (suite *StatusHandlerTestSuite) TestStatus_StillLoading() {
	suite.mockRateService.On("Snapshot", mock.Anything).Return(domain.RateSnapshot{Status: domain.RateStatusLoading}).Once()

	body := suite.getStatus()

	suite.Equal(domain.RateStatusLoading, body.RatesStatus)
	suite.Nil(body.RatesAsOf)
	suite.Zero(body.CurrencyCount)
}

func TestStatusHandler(t *testing.T) {
	suite.Run(t, new(StatusHandlerTestSuite))
}
