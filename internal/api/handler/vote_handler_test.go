package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

func setupVoteRouter(t *testing.T) (*gin.Engine, *gorm.DB, service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Photo{}, &model.Vote{},
		&model.WeeklyLeaderboard{}, &model.HallOfFameEntry{},
	))

	userRepo := repository.NewUserRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	voteRepo := repository.NewVoteRepository(db)

	authSvc := service.NewAuthService(userRepo, "test-jwt-secret", time.Hour)
	scoreSvc := service.NewScoreService(voteRepo, photoRepo)

	h := New(authSvc, nil, scoreSvc, nil, nil, nil, nil, nil, nil)

	r := gin.New()
	r.POST("/api/v1/auth/register", h.Register)
	r.POST("/api/v1/auth/login", h.Login)
	r.POST("/api/v1/votes", middleware.Auth(authSvc), h.SubmitVote)
	return r, db, authSvc
}

func postJSON(r *gin.Engine, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitVote_EndToEnd(t *testing.T) {
	r, db, _ := setupVoteRouter(t)

	w := postJSON(r, "/api/v1/auth/register", "", `{"username":"alice","email":"alice@example.com","password":"secret-pass"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/v1/auth/login", "", `{"username":"alice","password":"secret-pass"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Data.Token)

	photo := &model.Photo{ID: uuid.New().String(), UserID: "owner", CategoryID: "c1", PhotoURL: "https://example.com/p.jpg"}
	require.NoError(t, db.Create(photo).Error)

	w = postJSON(r, "/api/v1/votes", login.Data.Token, `{"photo_id":"`+photo.ID+`","vote_type":"like"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var voteResp struct {
		Data service.Tally `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &voteResp))
	assert.Equal(t, service.Tally{Likes: 1, Dislikes: 0, NetScore: 1}, voteResp.Data)
}

func TestSubmitVote_RequiresAuth(t *testing.T) {
	r, _, _ := setupVoteRouter(t)

	w := postJSON(r, "/api/v1/votes", "", `{"photo_id":"p1","vote_type":"like"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = postJSON(r, "/api/v1/votes", "not-a-token", `{"photo_id":"p1","vote_type":"like"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmitVote_Validation(t *testing.T) {
	r, db, authSvc := setupVoteRouter(t)

	_, err := authSvc.Register(context.Background(), "bob", "bob@example.com", "secret-pass")
	require.NoError(t, err)
	token, _, err := authSvc.Login(context.Background(), "bob", "secret-pass")
	require.NoError(t, err)

	// 缺字段
	w := postJSON(r, "/api/v1/votes", token, `{"vote_type":"like"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 非法票型被 binding 拦截
	w = postJSON(r, "/api/v1/votes", token, `{"photo_id":"p1","vote_type":"meh"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 照片不存在
	w = postJSON(r, "/api/v1/votes", token, `{"photo_id":"missing","vote_type":"like"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	_ = db
}
