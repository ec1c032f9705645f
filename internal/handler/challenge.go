package handler

import (
	"net/http"

	"power-dashboard/internal/logger"
	"power-dashboard/internal/model"
	"power-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

type ChallengeHandler struct{ challenges *service.ChallengeService }

func NewChallengeHandler(challenges *service.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challenges: challenges}
}

// GET /api/challenge/:userId
func (h *ChallengeHandler) List(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		badRequest(c, "user_id missing")
		return
	}

	entries, err := h.challenges.List(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

// POST /api/challenge  body: {user_id, challenge_date, stamp_*, save_kwh}
func (h *ChallengeHandler) Upsert(c *gin.Context) {
	var req model.ChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}
	if req.UserID == "" || req.ChallengeDate == "" {
		badRequest(c, "user_id and challenge_date are required")
		return
	}

	entry, err := h.challenges.Upsert(c.Request.Context(), req)
	if err != nil {
		logger.Error("challenge.upsert_failed", "user_id", req.UserID, "err", err)
		fail(c, err)
		return
	}

	logger.Info("challenge.saved", "user_id", entry.UserID, "date", entry.ChallengeDate)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "challenge entry saved", "data": entry})
}

// DELETE /api/challenge/:userId/:date
func (h *ChallengeHandler) Delete(c *gin.Context) {
	userID := c.Param("userId")
	date := c.Param("date")
	if userID == "" || date == "" {
		badRequest(c, "user_id and date are required")
		return
	}

	entry, err := h.challenges.Delete(c.Request.Context(), userID, date)
	if err != nil {
		fail(c, err)
		return
	}

	logger.Info("challenge.deleted", "user_id", userID, "date", date)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "challenge entry deleted", "data": entry})
}

// GET /api/challenge-stats/:userId
func (h *ChallengeHandler) Stats(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		badRequest(c, "user_id missing")
		return
	}

	stats, err := h.challenges.Stats(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}
