package model

import "time"

// HallOfFameEntry 月度名人堂条目，按 (category, user, month_year, rank) 幂等覆写
type HallOfFameEntry struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PhotoID    string    `json:"photo_id" gorm:"type:varchar(36);not null"`
	CategoryID string    `json:"category_id" gorm:"type:varchar(36);index:idx_hof_key,unique;not null"`
	UserID     string    `json:"user_id" gorm:"type:varchar(36);index:idx_hof_key,unique;not null"`
	MonthYear  string    `json:"month_year" gorm:"type:varchar(7);index:idx_hof_key,unique;not null"` // YYYY-MM
	Rank       int       `json:"rank" gorm:"index:idx_hof_key,unique;not null"`
	LikesCount int       `json:"likes_count" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (HallOfFameEntry) TableName() string { return "hall_of_fame" }
