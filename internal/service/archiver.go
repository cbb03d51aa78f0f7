package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/photoclash/internal/repository"
	"github.com/d60-Lab/photoclash/pkg/logger"
)

// weeklyCategoryLifetime weekly 分类的有效期
const weeklyCategoryLifetime = 7 * 24 * time.Hour

// ArchiveService 到期 weekly 分类的归档清扫
type ArchiveService interface {
	ArchiveExpired(ctx context.Context, now time.Time) (int, error)
}

type archiveService struct {
	categoryRepo repository.CategoryRepository
}

func NewArchiveService(categoryRepo repository.CategoryRepository) ArchiveService {
	return &archiveService{categoryRepo: categoryRepo}
}

// ArchiveExpired 归档 week_start_date 超过 7 天的 active weekly 分类。
// 单向转移：已归档的分类下轮查询天然不再命中，重复触发是 no-op。
func (s *archiveService) ArchiveExpired(ctx context.Context, now time.Time) (int, error) {
	cutoff := now.Add(-weeklyCategoryLifetime)
	expired, err := s.categoryRepo.ListExpiredWeekly(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	archived := 0
	for _, c := range expired {
		if err := s.categoryRepo.Deactivate(ctx, c.ID); err != nil {
			// 半途失败可接受：剩余分类下一轮继续
			logger.Error("archive category failed", zap.String("category", c.ID), zap.Error(err))
			return archived, err
		}
		archived++
	}

	if archived > 0 {
		logger.Info("archived expired weekly categories", zap.Int("count", archived))
	}
	return archived, nil
}
