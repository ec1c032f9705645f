package handler

import (
	"net/http"
	"time"

	"power-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct{ alerts *service.AlertService }

func NewAlertHandler(alerts *service.AlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// GET /api/alerts — snapshot for interval polling, severity desc.
func (h *AlertHandler) List(c *gin.Context) {
	alerts, err := h.alerts.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"count":     len(alerts),
		"data":      alerts,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
