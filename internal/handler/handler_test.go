package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"power-dashboard/internal/middleware"
	"power-dashboard/internal/model"
	"power-dashboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testSecret = []byte("test-secret")

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Member{}, &model.ChallengeEntry{}, &model.PowerPlant{},
		&model.NuclearUnitGeneration{}, &model.Alert{},
	))

	authH := NewAuthHandler(service.NewAuthService(db), testSecret)
	plantH := NewPlantHandler(service.NewPlantService(db))
	challengeH := NewChallengeHandler(service.NewChallengeService(db))
	alertH := NewAlertHandler(service.NewAlertService(db))

	r := gin.New()
	r.POST("/signup", authH.Signup)
	r.POST("/login", authH.Login)
	r.POST("/update-score", authH.UpdateScore)
	r.GET("/get-score", authH.GetScore)
	r.GET("/api/power-data", plantH.PowerData)
	r.GET("/api/alerts", alertH.List)
	r.POST("/api/challenge", challengeH.Upsert)
	r.GET("/api/me", middleware.JWTAuth(testSecret), authH.Me)

	seedAlerts(t, db)
	return r
}

func seedAlerts(t *testing.T, db *gorm.DB) {
	t.Helper()
	alerts := []model.Alert{
		{ID: 1, GenType: "hydro", PlantName: "Soyang", AlertLevel: 1},
		{ID: 2, GenType: "thermal", PlantName: "Bundang", AlertLevel: 3},
		{ID: 3, GenType: "wind", PlantName: "Gyeongju", AlertLevel: 3},
	}
	for _, a := range alerts {
		require.NoError(t, db.Create(&a).Error)
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupConflictStatus(t *testing.T) {
	r := newTestRouter(t)
	body := `{"user_id":"alice","nick_name":"al","email":"a@example.com","password":"pw123456"}`

	w := doJSON(t, r, http.MethodPost, "/signup", body)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/signup", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.NotEmpty(t, resp["message"])
}

func TestLoginStatusAndToken(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/signup",
		`{"user_id":"alice","nick_name":"al","email":"a@example.com","password":"pw123456"}`)

	w := doJSON(t, r, http.MethodPost, "/login", `{"email":"a@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, http.MethodPost, "/login", `{"email":"a@example.com","password":"pw123456"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Token   string         `json:"token"`
		User    model.UserInfo `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "alice", resp.User.UserID)

	// The issued token opens /api/me.
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	mw := httptest.NewRecorder()
	r.ServeHTTP(mw, req)
	assert.Equal(t, http.StatusOK, mw.Code)
}

func TestMeRequiresToken(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestValidationStatuses(t *testing.T) {
	r := newTestRouter(t)

	cases := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/power-data?plant=Kori", ""},
		{http.MethodGet, "/get-score", ""},
		{http.MethodPost, "/update-score", `{"user_id":"alice"}`},
		{http.MethodPost, "/api/challenge", `{"user_id":"alice"}`},
		{http.MethodPost, "/signup", `{"user_id":"alice"}`},
	}
	for _, tc := range cases {
		w := doJSON(t, r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestScoreEndpoints(t *testing.T) {
	r := newTestRouter(t)
	doJSON(t, r, http.MethodPost, "/signup",
		`{"user_id":"alice","nick_name":"al","email":"a@example.com","password":"pw123456"}`)

	for _, delta := range []int{10, 5} {
		w := doJSON(t, r, http.MethodPost, "/update-score",
			fmt.Sprintf(`{"user_id":"alice","score":%d}`, delta))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/get-score?user_id=alice", "")
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Score int `json:"score"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 15, resp.Score)

	w = doJSON(t, r, http.MethodGet, "/get-score?user_id=ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAlertsOrdering(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/alerts", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool          `json:"success"`
		Count   int           `json:"count"`
		Data    []model.Alert `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Equal(t, 3, resp.Count)
	// Severity desc, then id desc within a level.
	assert.Equal(t, []int{3, 2, 1}, []int{resp.Data[0].ID, resp.Data[1].ID, resp.Data[2].ID})
}

func TestFailStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, failStatus(fmt.Errorf("x: %w", service.ErrNotFound)))
	assert.Equal(t, http.StatusUnauthorized, failStatus(fmt.Errorf("x: %w", service.ErrUnauthorized)))
	assert.Equal(t, http.StatusConflict, failStatus(fmt.Errorf("x: %w", service.ErrConflict)))
	assert.Equal(t, http.StatusInternalServerError, failStatus(fmt.Errorf("x: %w", service.ErrUpstream)))
	assert.Equal(t, http.StatusInternalServerError, failStatus(fmt.Errorf("boom")))
}
