package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/photoclash/internal/api/middleware"
	"github.com/d60-Lab/photoclash/internal/model"
	"github.com/d60-Lab/photoclash/internal/repository"
	"github.com/d60-Lab/photoclash/internal/service"
)

const testCronSecret = "test-secret"

func setupCronRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Photo{}, &model.Vote{},
		&model.WeeklyLeaderboard{}, &model.HallOfFameEntry{},
	))

	categoryRepo := repository.NewCategoryRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	lbRepo := repository.NewLeaderboardRepository(db)
	hofRepo := repository.NewHallOfFameRepository(db)

	h := New(
		nil, nil, nil,
		service.NewLeaderboardService(photoRepo, categoryRepo, lbRepo),
		service.NewHallOfFameService(photoRepo, categoryRepo, hofRepo),
		service.NewArchiveService(categoryRepo),
		nil, categoryRepo, nil,
	)

	r := gin.New()
	cron := r.Group("/api/v1/cron", middleware.CronSecret(testCronSecret))
	cron.GET("/archive-categories", h.ArchiveCategories)
	cron.GET("/calculate-hall-of-fame", h.CalculateHallOfFame)
	cron.GET("/calculate-leaderboards", h.CalculateLeaderboards)
	return r, db
}

func doCron(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCron_RejectsMissingOrWrongSecret(t *testing.T) {
	r, _ := setupCronRouter(t)

	for _, token := range []string{"", "wrong"} {
		w := doCron(r, "/api/v1/cron/archive-categories", token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}
}

func TestCron_ArchiveCategories(t *testing.T) {
	r, db := setupCronRouter(t)

	old := time.Now().Add(-9 * 24 * time.Hour)
	require.NoError(t, db.Create(&model.Category{
		ID: uuid.New().String(), Name: "w1",
		CategoryType: model.CategoryTypeWeekly, IsActive: true, WeekStartDate: &old,
	}).Error)

	w := doCron(r, "/api/v1/cron/archive-categories", testCronSecret)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Archived int  `json:"archived"`
			Success  bool `json:"success"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Archived)
	assert.True(t, body.Data.Success)

	// 再触发一次是 no-op，仍然成功
	w = doCron(r, "/api/v1/cron/archive-categories", testCronSecret)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Data.Archived)
	assert.True(t, body.Data.Success)
}

func TestCron_CalculateHallOfFame(t *testing.T) {
	r, db := setupCronRouter(t)

	cat := &model.Category{ID: uuid.New().String(), Name: "c", CategoryType: model.CategoryTypePermanent, IsActive: true}
	require.NoError(t, db.Create(cat).Error)
	require.NoError(t, db.Create(&model.Photo{
		ID: uuid.New().String(), UserID: "u1", CategoryID: cat.ID,
		PhotoURL: "https://example.com/p.jpg", LikesCount: 5, CreatedAt: time.Now(),
	}).Error)

	w := doCron(r, "/api/v1/cron/calculate-hall-of-fame", testCronSecret)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			MonthYear    string `json:"month_year"`
			EntriesAdded int    `json:"entries_added"`
			Success      bool   `json:"success"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, time.Now().Format("2006-01"), body.Data.MonthYear)
	assert.Equal(t, 1, body.Data.EntriesAdded)
	assert.True(t, body.Data.Success)
}

func TestCron_CalculateLeaderboards(t *testing.T) {
	r, db := setupCronRouter(t)

	cat := &model.Category{ID: uuid.New().String(), Name: "c", CategoryType: model.CategoryTypePermanent, IsActive: true}
	require.NoError(t, db.Create(cat).Error)
	require.NoError(t, db.Create(&model.Photo{
		ID: uuid.New().String(), UserID: "u1", CategoryID: cat.ID,
		PhotoURL: "https://example.com/p.jpg", NetScore: 3, CreatedAt: time.Now(),
	}).Error)

	w := doCron(r, "/api/v1/cron/calculate-leaderboards", testCronSecret)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Categories int  `json:"categories"`
			Rows       int  `json:"rows"`
			Success    bool `json:"success"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Data.Categories)
	assert.Equal(t, 1, body.Data.Rows)
}
