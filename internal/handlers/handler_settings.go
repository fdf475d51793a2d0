package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_companion_app/internal/apperrors"
	"github.com/SscSPs/currency_companion_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/dto"
	"github.com/SscSPs/currency_companion_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// settingsHandler handles HTTP requests for the settings panel.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
	}
}

// RegisterSettingsRoutes registers routes related to settings.
func RegisterSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.POST("/:flag/toggle", h.toggleSetting)
		settings.POST("/clear-data", h.clearData)
	}
}

// getSettings godoc
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 500 {object} map[string]string "Failed to get settings"
// @Router /settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// toggleSetting godoc
// @Summary Toggle a setting
// @Description Flips one of darkMode, notifications or autoRefresh
// @Tags settings
// @Produce json
// @Param flag path string true "Setting name" Enums(darkMode, notifications, autoRefresh)
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} map[string]string "Unknown setting"
// @Failure 500 {object} map[string]string "Failed to toggle setting"
// @Router /settings/{flag}/toggle [post]
func (h *settingsHandler) toggleSetting(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	flag := domain.SettingFlag(c.Param("flag"))
	logger = logger.With(slog.String("flag", string(flag)))

	settings, err := h.settingsService.ToggleSetting(c.Request.Context(), flag)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to toggle setting", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to toggle setting"})
		}
		return
	}

	logger.Info("Setting toggled", slog.Bool("value", settings.Get(flag)))
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// clearData godoc
// @Summary Clear app data
// @Description Requires {"confirm": true}. Without it the confirmation prompt is returned.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body dto.ClearDataRequest false "Confirmation"
// @Success 200 {object} dto.ClearDataResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 428 {object} dto.ClearDataResponse "Confirmation required"
// @Router /settings/clear-data [post]
func (h *settingsHandler) clearData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ClearDataRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for ClearData", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	message, err := h.settingsService.ClearData(c.Request.Context(), req.Confirm)
	if err != nil {
		if errors.Is(err, apperrors.ErrConfirmationRequired) {
			c.JSON(http.StatusPreconditionRequired, dto.ClearDataResponse{Message: message})
		} else {
			logger.Error("Failed to clear data", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear data"})
		}
		return
	}

	logger.Info("App data cleared")
	c.JSON(http.StatusOK, dto.ClearDataResponse{Message: message})
}
