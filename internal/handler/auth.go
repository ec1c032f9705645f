package handler

import (
	"net/http"

	"power-dashboard/internal/logger"
	"power-dashboard/internal/middleware"
	"power-dashboard/internal/model"
	"power-dashboard/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth      *service.AuthService
	jwtSecret []byte
}

func NewAuthHandler(auth *service.AuthService, jwtSecret []byte) *AuthHandler {
	return &AuthHandler{auth: auth, jwtSecret: jwtSecret}
}

// POST /signup  body: {user_id, nick_name, email, password}
func (h *AuthHandler) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "user_id, nick_name, email and password are required")
		return
	}

	m, err := h.auth.Signup(c.Request.Context(), req)
	if err != nil {
		logger.Warn("signup.failed", "user_id", req.UserID, "err", err)
		fail(c, err)
		return
	}

	logger.Info("signup.ok", "user_id", m.UserID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "signup complete",
		"user":    gin.H{"user_id": m.UserID},
	})
}

// POST /login  body: {email, password}
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email and password are required")
		return
	}

	m, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("login.failed", "email", req.Email)
		fail(c, err)
		return
	}

	token, err := middleware.IssueToken(h.jwtSecret, m.UserID, m.NickName)
	if err != nil {
		fail(c, err)
		return
	}

	logger.Info("login.ok", "user_id", m.UserID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "login successful",
		"user":    model.NewUserInfo(m),
		"token":   token,
	})
}

// PUT /update-profile  body: {user_id, nick_name, email, current_password, new_password?}
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}
	if req.UserID == "" || req.NickName == "" || req.Email == "" || req.CurrentPassword == "" {
		badRequest(c, "user_id, nick_name, email and current_password are required")
		return
	}

	m, err := h.auth.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		logger.Warn("profile.update_failed", "user_id", req.UserID, "err", err)
		fail(c, err)
		return
	}

	logger.Info("profile.updated", "user_id", m.UserID)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "profile updated",
		"user":    model.NewUserInfo(m),
	})
}

// POST /update-score  body: {user_id, score}
func (h *AuthHandler) UpdateScore(c *gin.Context) {
	var req model.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" || req.Score == nil {
		badRequest(c, "user_id or score missing")
		return
	}

	newScore, err := h.auth.AddScore(c.Request.Context(), req.UserID, *req.Score)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "newScore": newScore})
}

// GET /get-score?user_id=...
func (h *AuthHandler) GetScore(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		badRequest(c, "user_id missing")
		return
	}

	score, err := h.auth.Score(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "score": score})
}

// GET /api/me  (JWT protected)
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("user_id")
	m, err := h.auth.Get(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": model.NewUserInfo(m)})
}
