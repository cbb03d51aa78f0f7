package model

import "time"

// Photo 照片；likes/dislikes/net_score 为派生字段，只由计分服务整体覆写
type Photo struct {
	ID            string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID        string    `json:"user_id" gorm:"type:varchar(36);index:idx_photo_user;not null"`
	CategoryID    string    `json:"category_id" gorm:"type:varchar(36);index:idx_photo_category_created;not null"`
	PhotoURL      string    `json:"photo_url" gorm:"type:text;not null"`
	Caption       string    `json:"caption" gorm:"type:text"`
	LikesCount    int       `json:"likes_count" gorm:"not null;default:0"`
	DislikesCount int       `json:"dislikes_count" gorm:"not null;default:0"`
	NetScore      int       `json:"net_score" gorm:"not null;default:0"`
	IsArchived    bool      `json:"is_archived" gorm:"not null;default:false"`
	CreatedAt     time.Time `json:"created_at" gorm:"index:idx_photo_category_created"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Photo) TableName() string { return "photos" }
