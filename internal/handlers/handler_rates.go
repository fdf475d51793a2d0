package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/dto"
	"github.com/SscSPs/currency_companion_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to the exchange rate table.
type rateHandler struct {
	rateService portssvc.RateStoreSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateStoreSvcFacade) *rateHandler {
	return &rateHandler{
		rateService: rs,
	}
}

// RegisterRateRoutes registers routes related to exchange rates.
func RegisterRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateStoreSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.GET("", h.getRates)
		rates.POST("/refresh", h.refreshRates)
	}
}

// getRates godoc
// @Summary Get the current exchange rate table
// @Description Returns the rate store status together with the last loaded table, if any
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RateSnapshotResponse
// @Router /rates [get]
func (h *rateHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snapshot := h.rateService.Snapshot(c.Request.Context())

	logger.Debug("Rate snapshot retrieved", slog.String("status", string(snapshot.Status)))
	c.JSON(http.StatusOK, dto.ToRateSnapshotResponse(snapshot))
}

// refreshRates godoc
// @Summary Refresh exchange rates
// @Description Re-fetches the rate table from the upstream provider. On failure the previous table is kept.
// @Tags rates
// @Produce json
// @Success 200 {object} dto.RateSnapshotResponse
// @Failure 503 {object} dto.RateSnapshotResponse "Upstream unavailable"
// @Failure 500 {object} map[string]string "Failed to refresh rates"
// @Router /rates/refresh [post]
func (h *rateHandler) refreshRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to refresh exchange rates")

	snapshot, err := h.rateService.Refresh(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrRatesUnavailable) {
			logger.Warn("Exchange rate refresh failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, dto.ToRateSnapshotResponse(snapshot))
		} else {
			logger.Error("Failed to refresh exchange rates", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh rates"})
		}
		return
	}

	logger.Info("Exchange rates refreshed", slog.Int("currency_count", len(snapshot.Table.Rates)))
	c.JSON(http.StatusOK, dto.ToRateSnapshotResponse(snapshot))
}
