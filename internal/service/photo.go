package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/photoclash/internal/model"
	"github.com/d60-Lab/photoclash/internal/repository"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrCategoryInactive = errors.New("category is not active")
)

// PhotoService 照片发布与浏览
type PhotoService interface {
	Publish(ctx context.Context, userID, categoryID, photoURL, caption string) (*model.Photo, error)
	ListByCategory(ctx context.Context, categoryID, sortBy string, page, pageSize int) ([]*model.Photo, error)
}

type photoService struct {
	photoRepo    repository.PhotoRepository
	categoryRepo repository.CategoryRepository
}

func NewPhotoService(photoRepo repository.PhotoRepository, categoryRepo repository.CategoryRepository) PhotoService {
	return &photoService{photoRepo: photoRepo, categoryRepo: categoryRepo}
}

// Publish 仅允许发到 active 分类
func (s *photoService) Publish(ctx context.Context, userID, categoryID, photoURL, caption string) (*model.Photo, error) {
	c, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	if !c.IsActive {
		return nil, ErrCategoryInactive
	}

	p := &model.Photo{
		ID:         uuid.New().String(),
		UserID:     userID,
		CategoryID: categoryID,
		PhotoURL:   photoURL,
		Caption:    caption,
	}
	if err := s.photoRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *photoService) ListByCategory(ctx context.Context, categoryID, sortBy string, page, pageSize int) ([]*model.Photo, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize
	return s.photoRepo.ListByCategory(ctx, categoryID, sortBy, offset, pageSize)
}
