package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/d60-Lab/photoclash/internal/model"
)

type VoteRepository interface {
	Upsert(ctx context.Context, photoID, userID, voteType string) error
	ListByPhoto(ctx context.Context, photoID string) ([]*model.Vote, error)
}

type voteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) VoteRepository { return &voteRepository{db: db} }

// Upsert 幂等：同一 (photo, user) 再投为改票而非加票
func (r *voteRepository) Upsert(ctx context.Context, photoID, userID, voteType string) error {
	v := &model.Vote{ID: uuid.New().String(), PhotoID: photoID, UserID: userID, VoteType: voteType}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "photo_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"vote_type", "updated_at"}),
	}).Create(v).Error
}

func (r *voteRepository) ListByPhoto(ctx context.Context, photoID string) ([]*model.Vote, error) {
	var res []*model.Vote
	err := r.db.WithContext(ctx).Where("photo_id = ?", photoID).Find(&res).Error
	return res, err
}
