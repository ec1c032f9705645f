package handler

import (
	"net/http"

	"power-dashboard/internal/logger"
	"power-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

type KHNPHandler struct{ khnp *service.KHNPService }

func NewKHNPHandler(khnp *service.KHNPService) *KHNPHandler {
	return &KHNPHandler{khnp: khnp}
}

// GET /api/khnp/realtime-json?genName=...
func (h *KHNPHandler) Realtime(c *gin.Context) {
	genName := c.Query("genName")
	if genName == "" {
		badRequest(c, "genName parameter is required")
		return
	}

	out, err := h.khnp.RealtimeOutput(c.Request.Context(), genName)
	if err != nil {
		logger.Warn("khnp.realtime_failed", "genName", genName, "err", err)
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
