package api

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	sentrygin "github.com/getsentry/sentry-go/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/time/rate"

	"github.com/d60-Lab/photoclash/config"
	_ "github.com/d60-Lab/photoclash/docs"
	"github.com/d60-Lab/photoclash/internal/api/handler"
	"github.com/d60-Lab/photoclash/internal/api/middleware"
	"github.com/d60-Lab/photoclash/internal/service"
)

// NewRouter 组装全部路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler, authSvc service.AuthService) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	if cfg.Otel.Enabled {
		r.Use(otelgin.Middleware(cfg.Otel.Service))
	}
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", h.Register)
			auth.POST("/login", h.Login)
		}

		v1.GET("/categories", h.ListCategories)
		v1.GET("/photos", h.ListPhotos)
		v1.GET("/leaderboard", h.GetLeaderboard)
		v1.GET("/hall-of-fame", h.GetHallOfFame)
		v1.GET("/profile/:user_id", h.GetProfile)

		authed := v1.Group("", middleware.Auth(authSvc))
		{
			authed.POST("/photos", h.PublishPhoto)
			authed.POST("/votes", middleware.RateLimit(rate.Limit(5), 10), h.SubmitVote)
		}

		cron := v1.Group("/cron", middleware.CronSecret(cfg.Cron.Secret))
		{
			cron.GET("/archive-categories", h.ArchiveCategories)
			cron.GET("/calculate-hall-of-fame", h.CalculateHallOfFame)
			cron.GET("/calculate-leaderboards", h.CalculateLeaderboards)
		}
	}

	return r
}
