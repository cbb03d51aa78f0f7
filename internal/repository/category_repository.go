package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/d60-Lab/photoclash/internal/model"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context, activeOnly bool) ([]*model.Category, error)
	ListIDs(ctx context.Context) ([]string, error)
	ListActiveIDs(ctx context.Context) ([]string, error)
	ListExpiredWeekly(ctx context.Context, before time.Time) ([]*model.Category, error)
	Deactivate(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository { return &categoryRepository{db: db} }

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) List(ctx context.Context, activeOnly bool) ([]*model.Category, error) {
	q := r.db.WithContext(ctx).Order("created_at")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var res []*model.Category
	err := q.Find(&res).Error
	return res, err
}

func (r *categoryRepository) ListIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Category{}).Pluck("id", &ids).Error
	return ids, err
}

func (r *categoryRepository) ListActiveIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("is_active = ?", true).
		Pluck("id", &ids).Error
	return ids, err
}

// ListExpiredWeekly 取 week_start_date 早于 before 且仍 active 的 weekly 分类
func (r *categoryRepository) ListExpiredWeekly(ctx context.Context, before time.Time) ([]*model.Category, error) {
	var res []*model.Category
	err := r.db.WithContext(ctx).
		Where("category_type = ? AND is_active = ? AND week_start_date < ?",
			model.CategoryTypeWeekly, true, before).
		Find(&res).Error
	return res, err
}

// Deactivate 单向归档，不提供反向操作
func (r *categoryRepository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}
