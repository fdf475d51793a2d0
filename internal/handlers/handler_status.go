package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_companion_app/internal/core/ports/services"
	"github.com/SscSPs/currency_companion_app/internal/dto"
	"github.com/SscSPs/currency_companion_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

// RegisterStatusRoutes registers the '/status' route.
func RegisterStatusRoutes(rg *gin.RouterGroup, rateService portssvc.RateStoreReaderSvc) {
	rg.GET("/status", func(c *gin.Context) {
		getStatus(c, rateService)
	})
}

// getStatus godoc
// @Summary Show the status of the service
// @Description Returns the service name, version and whether exchange rates are loaded
// @Tags root
// @Produce json
// @Success 200 {object} dto.StatusResponse
// @Router /status [get]
func getStatus(c *gin.Context, rateService portssvc.RateStoreReaderSvc) {
	snapshot := rateService.Snapshot(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToStatusResponse(config.AppName, config.AppVersion, snapshot))
}
