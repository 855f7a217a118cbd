package api

import (
	"errors"
	"net/http"

	resdto "famboard/internal/handler/dto/response"
	"famboard/internal/handler/middleware"
	"famboard/internal/pkg/errs"
	"famboard/internal/usecase/commands"
	"famboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WaterTempHandler struct {
	waterTempQueries queries.WaterTempQueries
	pushCommands     commands.PushCommands
}

func NewWaterTempHandler(waterTempQueries queries.WaterTempQueries, pushCommands commands.PushCommands) *WaterTempHandler {
	return &WaterTempHandler{
		waterTempQueries: waterTempQueries,
		pushCommands:     pushCommands,
	}
}

// @Summary Current water temperature
// @Description Read today's latest temperature straight from the sensor feed
// @Tags water-temperature
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CurrentTemperatureResponse
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /water-temperature [get]
func (h *WaterTempHandler) CurrentTemperature(c *gin.Context) {
	current, err := h.waterTempQueries.Current(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUpstreamUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Sensor data unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCurrentTemperature(current))
}

// @Summary Enable temperature alerts
// @Description Opt the caller in to water-temperature incident notifications
// @Tags water-temperature
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /water-temperature/alerts [put]
func (h *WaterTempHandler) EnableAlerts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.pushCommands.EnableTempAlerts(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Disable temperature alerts
// @Description Opt the caller out of water-temperature incident notifications
// @Tags water-temperature
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} map[string]string
// @Router /water-temperature/alerts [delete]
func (h *WaterTempHandler) DisableAlerts(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if err := h.pushCommands.DisableTempAlerts(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
