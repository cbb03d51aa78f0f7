package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/photoclash/internal/model"
)

type LeaderboardRepository interface {
	UpsertEntries(ctx context.Context, entries []model.WeeklyLeaderboard) error
	ListWeek(ctx context.Context, categoryID string, weekStart time.Time) ([]*model.WeeklyLeaderboard, error)
	ListTopPlacements(ctx context.Context, userID string, maxRank, limit int) ([]*model.WeeklyLeaderboard, error)
}

type leaderboardRepository struct {
	db *gorm.DB
}

func NewLeaderboardRepository(db *gorm.DB) LeaderboardRepository {
	return &leaderboardRepository{db: db}
}

// UpsertEntries 按 (category, user, week_start) 覆写，同一周重跑只更新名次与积分
func (r *leaderboardRepository) UpsertEntries(ctx context.Context, entries []model.WeeklyLeaderboard) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category_id"}, {Name: "user_id"}, {Name: "week_start_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"rank", "points", "week_end_date", "updated_at"}),
	}).Create(&entries).Error
}

// ListTopPlacements 查用户的前几名战绩（个人页徽章展示用）
func (r *leaderboardRepository) ListTopPlacements(ctx context.Context, userID string, maxRank, limit int) ([]*model.WeeklyLeaderboard, error) {
	var res []*model.WeeklyLeaderboard
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND rank <= ?", userID, maxRank).
		Order("week_start_date DESC, rank").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *leaderboardRepository) ListWeek(ctx context.Context, categoryID string, weekStart time.Time) ([]*model.WeeklyLeaderboard, error) {
	var res []*model.WeeklyLeaderboard
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND week_start_date = ?", categoryID, weekStart).
		Order("rank").
		Find(&res).Error
	return res, err
}
