package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/photoclash/internal/model"
)

type HallOfFameRepository interface {
	UpsertEntries(ctx context.Context, entries []model.HallOfFameEntry) error
	PruneBeyond(ctx context.Context, categoryID, monthYear string, maxRank int) error
	PruneStale(ctx context.Context, categoryID, monthYear string, current []model.HallOfFameEntry) error
	ListMonth(ctx context.Context, categoryID, monthYear string) ([]*model.HallOfFameEntry, error)
	ListTopPlacements(ctx context.Context, userID string, maxRank, limit int) ([]*model.HallOfFameEntry, error)
}

type hallOfFameRepository struct {
	db *gorm.DB
}

func NewHallOfFameRepository(db *gorm.DB) HallOfFameRepository {
	return &hallOfFameRepository{db: db}
}

// UpsertEntries 按 (category, user, month_year, rank) 覆写，月内重算安全
func (r *hallOfFameRepository) UpsertEntries(ctx context.Context, entries []model.HallOfFameEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "category_id"}, {Name: "user_id"}, {Name: "month_year"}, {Name: "rank"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"photo_id", "likes_count", "updated_at"}),
	}).Create(&entries).Error
}

// PruneBeyond 清理本次 top-N 之外的残留名次
func (r *hallOfFameRepository) PruneBeyond(ctx context.Context, categoryID, monthYear string, maxRank int) error {
	return r.db.WithContext(ctx).
		Where("category_id = ? AND month_year = ? AND rank > ?", categoryID, monthYear, maxRank).
		Delete(&model.HallOfFameEntry{}).Error
}

// PruneStale 清掉本月不属于本次结果集的残留行：既包括 top-N 之外的名次，
// 也包括名次虽在 top-N 内、但该名次已换人的旧行（用户掉榜后其旧 (user, rank)
// 行与新行键不同，光靠 upsert 覆盖不掉）。全部按键删除，读者不会见到空窗口。
func (r *hallOfFameRepository) PruneStale(ctx context.Context, categoryID, monthYear string, current []model.HallOfFameEntry) error {
	if err := r.PruneBeyond(ctx, categoryID, monthYear, len(current)); err != nil {
		return err
	}
	for _, e := range current {
		if err := r.db.WithContext(ctx).
			Where("category_id = ? AND month_year = ? AND rank = ? AND user_id <> ?",
				categoryID, monthYear, e.Rank, e.UserID).
			Delete(&model.HallOfFameEntry{}).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListTopPlacements 查用户的入堂战绩（个人页徽章展示用）
func (r *hallOfFameRepository) ListTopPlacements(ctx context.Context, userID string, maxRank, limit int) ([]*model.HallOfFameEntry, error) {
	var res []*model.HallOfFameEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND rank <= ?", userID, maxRank).
		Order("month_year DESC, rank").
		Limit(limit).
		Find(&res).Error
	return res, err
}

func (r *hallOfFameRepository) ListMonth(ctx context.Context, categoryID, monthYear string) ([]*model.HallOfFameEntry, error) {
	var res []*model.HallOfFameEntry
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND month_year = ?", categoryID, monthYear).
		Order("rank").
		Find(&res).Error
	return res, err
}
