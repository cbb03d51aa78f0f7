package model

import "time"

// 投票类型
const (
	VoteTypeLike    = "like"
	VoteTypeDislike = "dislike"
)

// Vote 投票（一人一票，同一人再投为改票）
type Vote struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PhotoID  string `json:"photo_id" gorm:"type:varchar(36);index:idx_vote_photo;index:idx_vote_pair,unique;not null"`
	UserID   string `json:"user_id" gorm:"type:varchar(36);not null;index:idx_vote_pair,unique"`
	VoteType string `json:"vote_type" gorm:"type:varchar(8);not null"`
	// 复合唯一键 idx_vote_pair = (photo_id, user_id)，避免重复投票
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Vote) TableName() string { return "photo_votes" }
