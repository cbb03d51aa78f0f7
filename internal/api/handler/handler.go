package handler

import (
	"github.com/d60-Lab/photoclash/internal/cache"
	"github.com/d60-Lab/photoclash/internal/repository"
	"github.com/d60-Lab/photoclash/internal/service"
)

// Handler 聚合所有 HTTP 处理器的依赖
type Handler struct {
	authSvc      service.AuthService
	photoSvc     service.PhotoService
	scoreSvc     service.ScoreService
	lbSvc        service.LeaderboardService
	hofSvc       service.HallOfFameService
	archiveSvc   service.ArchiveService
	profileSvc   service.ProfileService
	categoryRepo repository.CategoryRepository
	rankCache    *cache.RankingCache
}

func New(
	authSvc service.AuthService,
	photoSvc service.PhotoService,
	scoreSvc service.ScoreService,
	lbSvc service.LeaderboardService,
	hofSvc service.HallOfFameService,
	archiveSvc service.ArchiveService,
	profileSvc service.ProfileService,
	categoryRepo repository.CategoryRepository,
	rankCache *cache.RankingCache,
) *Handler {
	return &Handler{
		authSvc:      authSvc,
		photoSvc:     photoSvc,
		scoreSvc:     scoreSvc,
		lbSvc:        lbSvc,
		hofSvc:       hofSvc,
		archiveSvc:   archiveSvc,
		profileSvc:   profileSvc,
		categoryRepo: categoryRepo,
		rankCache:    rankCache,
	}
}
