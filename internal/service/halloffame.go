package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/d60-Lab/photoclash/internal/model"
	"github.com/d60-Lab/photoclash/internal/repository"
	"github.com/d60-Lab/photoclash/pkg/logger"
)

// HallOfFameTopN 每个分类每月最多入堂名额
const HallOfFameTopN = 10

// HallOfFameResult 单次月度计算的汇总，回报给调度方
type HallOfFameResult struct {
	MonthYear    string `json:"month_year"`
	EntriesAdded int    `json:"entries_added"`
}

// HallOfFameService 月度名人堂计算与读取
type HallOfFameService interface {
	CalculateMonth(ctx context.Context, now time.Time) (HallOfFameResult, error)
	GetMonth(ctx context.Context, categoryID, monthYear string) ([]*model.HallOfFameEntry, error)
}

type hallOfFameService struct {
	photoRepo    repository.PhotoRepository
	categoryRepo repository.CategoryRepository
	hofRepo      repository.HallOfFameRepository
}

func NewHallOfFameService(photoRepo repository.PhotoRepository, categoryRepo repository.CategoryRepository, hofRepo repository.HallOfFameRepository) HallOfFameService {
	return &hallOfFameService{photoRepo: photoRepo, categoryRepo: categoryRepo, hofRepo: hofRepo}
}

// CalculateMonth 对每个分类取当月点赞数前十的照片写入名人堂。
// 覆写后按键清掉不属于本次结果集的残留行；重跑同月收敛到同一结果。
func (s *hallOfFameService) CalculateMonth(ctx context.Context, now time.Time) (HallOfFameResult, error) {
	monthStart, monthEnd, monthYear := MonthWindow(now)
	res := HallOfFameResult{MonthYear: monthYear}

	ids, err := s.categoryRepo.ListIDs(ctx)
	if err != nil {
		return res, err
	}

	for _, categoryID := range ids {
		photos, err := s.photoRepo.ListInWindow(ctx, categoryID, monthStart, monthEnd)
		if err != nil {
			logger.Error("hall of fame read failed", zap.String("category", categoryID), zap.Error(err))
			return res, err
		}
		top := topByLikes(photos, HallOfFameTopN)
		if len(top) == 0 {
			// 本月无照片的分类不清理历史行，保持既有快照
			continue
		}

		entries := make([]model.HallOfFameEntry, 0, len(top))
		for i, p := range top {
			entries = append(entries, model.HallOfFameEntry{
				ID:         uuid.New().String(),
				PhotoID:    p.ID,
				CategoryID: categoryID,
				UserID:     p.UserID,
				MonthYear:  monthYear,
				Rank:       i + 1,
				LikesCount: p.LikesCount,
			})
		}
		if err := s.hofRepo.UpsertEntries(ctx, entries); err != nil {
			return res, err
		}
		if err := s.hofRepo.PruneStale(ctx, categoryID, monthYear, entries); err != nil {
			return res, err
		}
		res.EntriesAdded += len(entries)
	}

	logger.Info("hall of fame calculated",
		zap.String("month", monthYear), zap.Int("entries", res.EntriesAdded))
	return res, nil
}

func (s *hallOfFameService) GetMonth(ctx context.Context, categoryID, monthYear string) ([]*model.HallOfFameEntry, error) {
	return s.hofRepo.ListMonth(ctx, categoryID, monthYear)
}

// topByLikes 按点赞数降序取前 n；同赞数按创建时间先后、再按 id 保证确定性
func topByLikes(photos []*model.Photo, n int) []*model.Photo {
	sorted := append([]*model.Photo(nil), photos...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].LikesCount != sorted[j].LikesCount {
			return sorted[i].LikesCount > sorted[j].LikesCount
		}
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
