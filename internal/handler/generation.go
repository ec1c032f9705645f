package handler

import (
	"context"
	"net/http"

	"power-dashboard/internal/logger"
	"power-dashboard/internal/model"
	"power-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

type GenerationHandler struct{ gen *service.GenerationService }

func NewGenerationHandler(gen *service.GenerationService) *GenerationHandler {
	return &GenerationHandler{gen: gen}
}

// GET /api/thermal/power
func (h *GenerationHandler) ThermalHourly(c *gin.Context) {
	h.hourly(c, "thermal", h.gen.ThermalHourly)
}

// GET /api/solar/power
func (h *GenerationHandler) SolarHourly(c *gin.Context) {
	h.hourly(c, "solar", h.gen.SolarHourly)
}

// GET /api/wind/power
func (h *GenerationHandler) WindHourly(c *gin.Context) {
	h.hourly(c, "wind", h.gen.WindHourly)
}

// GET /api/thermal/daily-power
func (h *GenerationHandler) ThermalDaily(c *gin.Context) {
	data, err := h.gen.ThermalDaily(c.Request.Context())
	h.daily(c, "thermal", data, err)
}

// GET /api/solar/daily-power
func (h *GenerationHandler) SolarDaily(c *gin.Context) {
	data, err := h.gen.SolarDaily(c.Request.Context())
	h.daily(c, "solar", data, err)
}

// GET /api/wind/daily-power
func (h *GenerationHandler) WindDaily(c *gin.Context) {
	data, err := h.gen.WindDaily(c.Request.Context())
	h.daily(c, "wind", data, err)
}

// GET /api/thermal/yearly-power
func (h *GenerationHandler) ThermalYearly(c *gin.Context) {
	data, err := h.gen.ThermalYearly(c.Request.Context())
	h.yearly(c, "thermal", data, err)
}

// GET /api/solar/yearly-power
func (h *GenerationHandler) SolarYearly(c *gin.Context) {
	data, err := h.gen.SolarYearly(c.Request.Context())
	h.yearly(c, "solar", data, err)
}

// GET /api/wind/yearly-power
func (h *GenerationHandler) WindYearly(c *gin.Context) {
	data, err := h.gen.WindYearly(c.Request.Context())
	h.yearly(c, "wind", data, err)
}

// GET /api/hydro/daily-power
func (h *GenerationHandler) HydroDaily(c *gin.Context) {
	data, err := h.gen.HydroDaily(c.Request.Context())
	if err != nil {
		logger.Error("generation.hydro_daily_failed", "err", err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// GET /api/hydro/khnp-yearly
func (h *GenerationHandler) HydroYearly(c *gin.Context) {
	data, err := h.gen.HydroYearly(c.Request.Context())
	if err != nil {
		logger.Error("generation.hydro_yearly_failed", "err", err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (h *GenerationHandler) hourly(c *gin.Context, source string, fetch func(context.Context) (service.HourlyMatrix, error)) {
	data, err := fetch(c.Request.Context())
	if err != nil {
		logger.Error("generation.hourly_failed", "source", source, "err", err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Daily endpoints keep the legacy empty-store behavior: 200 with
// success=false and an empty data object.
func (h *GenerationHandler) daily(c *gin.Context, source string, data map[string][]model.DailyPoint, err error) {
	if err != nil {
		logger.Error("generation.daily_failed", "source", source, "err", err)
		fail(c, err)
		return
	}
	if len(data) == 0 {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "no " + source + " generation data", "data": gin.H{}})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func (h *GenerationHandler) yearly(c *gin.Context, source string, data map[string][]model.YearlyPoint, err error) {
	if err != nil {
		logger.Error("generation.yearly_failed", "source", source, "err", err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}
