package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/photoclash/config"
	"github.com/d60-Lab/photoclash/internal/api"
	"github.com/d60-Lab/photoclash/internal/api/handler"
	"github.com/d60-Lab/photoclash/internal/cache"
	"github.com/d60-Lab/photoclash/internal/repository"
	"github.com/d60-Lab/photoclash/internal/service"
	"github.com/d60-Lab/photoclash/internal/telemetry"
	"github.com/d60-Lab/photoclash/pkg/database"
	"github.com/d60-Lab/photoclash/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := telemetry.InitSentry(cfg); err != nil {
		logger.Warn("sentry init failed", zap.Error(err))
	}
	shutdownTracer, err := telemetry.InitTracer(context.Background(), cfg)
	if err != nil {
		logger.Warn("tracer init failed", zap.Error(err))
		shutdownTracer = func(context.Context) error { return nil }
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Error("database init failed", zap.Error(err))
		os.Exit(1)
	}
	if err := database.AutoMigrate(db); err != nil {
		logger.Error("migrate failed", zap.Error(err))
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	voteRepo := repository.NewVoteRepository(db)
	lbRepo := repository.NewLeaderboardRepository(db)
	hofRepo := repository.NewHallOfFameRepository(db)

	authSvc := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	photoSvc := service.NewPhotoService(photoRepo, categoryRepo)
	scoreSvc := service.NewScoreService(voteRepo, photoRepo)
	lbSvc := service.NewLeaderboardService(photoRepo, categoryRepo, lbRepo)
	hofSvc := service.NewHallOfFameService(photoRepo, categoryRepo, hofRepo)
	archiveSvc := service.NewArchiveService(categoryRepo)
	profileSvc := service.NewProfileService(userRepo, photoRepo, lbRepo, hofRepo)
	rankCache := cache.NewRankingCache(rdb, cfg.Redis.CacheTTL)

	h := handler.New(authSvc, photoSvc, scoreSvc, lbSvc, hofSvc, archiveSvc, profileSvc, categoryRepo, rankCache)
	router := api.NewRouter(cfg, h, authSvc)

	srv := &http.Server{Addr: cfg.Server.Addr, Handler: router}
	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
	_ = shutdownTracer(ctx)
	_ = rdb.Close()
}
