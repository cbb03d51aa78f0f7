package model

import "time"

// User 用户
type User struct {
	ID                string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username          string    `json:"username" gorm:"type:varchar(64);uniqueIndex;not null"`
	Email             string    `json:"email" gorm:"type:varchar(128);uniqueIndex;not null"`
	Password          string    `json:"-" gorm:"type:varchar(128);not null"`
	ProfilePictureURL string    `json:"profile_picture_url" gorm:"type:text"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
