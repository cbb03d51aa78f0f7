package model

import "time"

// WeeklyLeaderboard 周榜行，按 (category, user, week_start) 幂等覆写
type WeeklyLeaderboard struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CategoryID    string    `json:"category_id" gorm:"type:varchar(36);index:idx_lb_key,unique;not null"`
	UserID        string    `json:"user_id" gorm:"type:varchar(36);index:idx_lb_key,unique;not null"`
	Rank          int       `json:"rank" gorm:"not null"`
	Points        int       `json:"points" gorm:"not null"`
	WeekStartDate time.Time `json:"week_start_date" gorm:"index:idx_lb_key,unique;not null"`
	WeekEndDate   time.Time `json:"week_end_date" gorm:"not null"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (WeeklyLeaderboard) TableName() string { return "weekly_leaderboards" }
