package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/photoclash/internal/model"
)

// 列表排序方式
const (
	SortRecent   = "recent"
	SortTrending = "trending"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *model.Photo) error
	GetByID(ctx context.Context, id string) (*model.Photo, error)
	ListByCategory(ctx context.Context, categoryID, sortBy string, offset, limit int) ([]*model.Photo, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Photo, error)
	ListInWindow(ctx context.Context, categoryID string, from, to time.Time) ([]*model.Photo, error)
	UpdateScore(ctx context.Context, photoID string, likes, dislikes, netScore int) error
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository { return &photoRepository{db: db} }

func (r *photoRepository) Create(ctx context.Context, photo *model.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) GetByID(ctx context.Context, id string) (*model.Photo, error) {
	var p model.Photo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *photoRepository) ListByCategory(ctx context.Context, categoryID, sortBy string, offset, limit int) ([]*model.Photo, error) {
	q := r.db.WithContext(ctx).
		Where("category_id = ? AND is_archived = ?", categoryID, false)
	if sortBy == SortTrending {
		q = q.Order("net_score DESC")
	} else {
		q = q.Order("created_at DESC")
	}
	var res []*model.Photo
	err := q.Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (r *photoRepository) ListByUser(ctx context.Context, userID string) ([]*model.Photo, error) {
	var res []*model.Photo
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&res).Error
	return res, err
}

// ListInWindow 取分类内 [from, to) 创建的照片（周榜/名人堂窗口查询）
func (r *photoRepository) ListInWindow(ctx context.Context, categoryID string, from, to time.Time) ([]*model.Photo, error) {
	var res []*model.Photo
	err := r.db.WithContext(ctx).
		Where("category_id = ? AND created_at >= ? AND created_at < ?", categoryID, from, to).
		Find(&res).Error
	return res, err
}

// UpdateScore 整体覆写派生计分字段（非增量）
func (r *photoRepository) UpdateScore(ctx context.Context, photoID string, likes, dislikes, netScore int) error {
	return r.db.WithContext(ctx).
		Model(&model.Photo{}).
		Where("id = ?", photoID).
		Updates(map[string]any{
			"likes_count":    likes,
			"dislikes_count": dislikes,
			"net_score":      netScore,
		}).Error
}
