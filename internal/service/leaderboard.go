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

// LeaderboardService 周榜计算与读取
type LeaderboardService interface {
	CalculateWeek(ctx context.Context, categoryID string, now time.Time) ([]model.WeeklyLeaderboard, error)
	CalculateAll(ctx context.Context, now time.Time) (categories, rows int, err error)
	GetCurrentWeek(ctx context.Context, categoryID string, now time.Time) ([]*model.WeeklyLeaderboard, error)
}

type leaderboardService struct {
	photoRepo    repository.PhotoRepository
	categoryRepo repository.CategoryRepository
	lbRepo       repository.LeaderboardRepository
}

func NewLeaderboardService(photoRepo repository.PhotoRepository, categoryRepo repository.CategoryRepository, lbRepo repository.LeaderboardRepository) LeaderboardService {
	return &leaderboardService{photoRepo: photoRepo, categoryRepo: categoryRepo, lbRepo: lbRepo}
}

// CalculateWeek 聚合分类内本周照片的 net_score，按用户求和后排名并覆写周榜。
// 积分相同按 user_id 升序给名次（确定性，重跑结果一致）；空窗口不产生行。
func (s *leaderboardService) CalculateWeek(ctx context.Context, categoryID string, now time.Time) ([]model.WeeklyLeaderboard, error) {
	weekStart, weekEnd := WeekWindow(now)

	photos, err := s.photoRepo.ListInWindow(ctx, categoryID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	if len(photos) == 0 {
		return nil, nil
	}

	points := make(map[string]int)
	for _, p := range photos {
		points[p.UserID] += p.NetScore
	}

	userIDs := make([]string, 0, len(points))
	for uid := range points {
		userIDs = append(userIDs, uid)
	}
	sort.Slice(userIDs, func(i, j int) bool {
		if points[userIDs[i]] != points[userIDs[j]] {
			return points[userIDs[i]] > points[userIDs[j]]
		}
		return userIDs[i] < userIDs[j]
	})

	entries := make([]model.WeeklyLeaderboard, 0, len(userIDs))
	for i, uid := range userIDs {
		entries = append(entries, model.WeeklyLeaderboard{
			ID:            uuid.New().String(),
			CategoryID:    categoryID,
			UserID:        uid,
			Rank:          i + 1,
			Points:        points[uid],
			WeekStartDate: weekStart,
			WeekEndDate:   weekEnd,
		})
	}

	if err := s.lbRepo.UpsertEntries(ctx, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// CalculateAll 对全部 active 分类跑一遍周榜；单分类失败中断本轮，已写入的行保持有效。
// 返回的分类数是实际处理到的数量，失败时未轮到的分类不计入。
func (s *leaderboardService) CalculateAll(ctx context.Context, now time.Time) (int, int, error) {
	ids, err := s.categoryRepo.ListActiveIDs(ctx)
	if err != nil {
		return 0, 0, err
	}
	attempted, total := 0, 0
	for _, id := range ids {
		attempted++
		entries, err := s.CalculateWeek(ctx, id, now)
		if err != nil {
			logger.Error("leaderboard calculation failed", zap.String("category", id), zap.Error(err))
			return attempted, total, err
		}
		total += len(entries)
	}
	return attempted, total, nil
}

func (s *leaderboardService) GetCurrentWeek(ctx context.Context, categoryID string, now time.Time) ([]*model.WeeklyLeaderboard, error) {
	weekStart, _ := WeekWindow(now)
	return s.lbRepo.ListWeek(ctx, categoryID, weekStart)
}
