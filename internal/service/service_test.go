package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/d60-Lab/photoclash/internal/model"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.User{}, &model.Category{}, &model.Photo{}, &model.Vote{},
		&model.WeeklyLeaderboard{}, &model.HallOfFameEntry{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCategory(t *testing.T, db *gorm.DB, categoryType string, weekStart *time.Time) *model.Category {
	t.Helper()
	c := &model.Category{
		ID:            uuid.New().String(),
		Name:          "cat-" + uuid.New().String()[:8],
		CategoryType:  categoryType,
		IsActive:      true,
		WeekStartDate: weekStart,
	}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return c
}

func seedPhoto(t *testing.T, db *gorm.DB, categoryID, userID string, netScore, likes int, createdAt time.Time) *model.Photo {
	t.Helper()
	p := &model.Photo{
		ID:         uuid.New().String(),
		UserID:     userID,
		CategoryID: categoryID,
		PhotoURL:   "https://example.com/p.jpg",
		LikesCount: likes,
		NetScore:   netScore,
		CreatedAt:  createdAt,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed photo: %v", err)
	}
	return p
}
