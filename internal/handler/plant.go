package handler

import (
	"net/http"
	"strconv"

	"power-dashboard/internal/logger"
	"power-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

type PlantHandler struct{ plants *service.PlantService }

func NewPlantHandler(plants *service.PlantService) *PlantHandler {
	return &PlantHandler{plants: plants}
}

// GET /api/plants
func (h *PlantHandler) List(c *gin.Context) {
	resp, err := h.plants.Plants(c.Request.Context())
	if err != nil {
		logger.Error("plants.list_failed", "err", err)
		fail(c, err)
		return
	}
	logger.Info("plants.listed", "count", len(resp.Plants))
	c.JSON(http.StatusOK, resp)
}

// GET /api/power-data?plant=...&year=...&hour=...
func (h *PlantHandler) PowerData(c *gin.Context) {
	plant := c.Query("plant")
	yearStr := c.Query("year")
	hour := c.Query("hour")
	if plant == "" || yearStr == "" || hour == "" {
		badRequest(c, "plant, year and hour parameters are required")
		return
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		badRequest(c, "year must be an integer")
		return
	}

	data, err := h.plants.PowerData(c.Request.Context(), plant, year)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// GET /api/nuclear/full
func (h *PlantHandler) NuclearFull(c *gin.Context) {
	details, err := h.plants.NuclearFull(c.Request.Context())
	if err != nil {
		logger.Error("nuclear.full_failed", "err", err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// GET /api/debug/all-plants
func (h *PlantHandler) DebugCounts(c *gin.Context) {
	counts, err := h.plants.CountsByType(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts, "message": "debug info"})
}

// GET /api/education — legacy read-only endpoint, bare array body.
func (h *PlantHandler) Education(c *gin.Context) {
	rows, err := h.plants.Education(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}
