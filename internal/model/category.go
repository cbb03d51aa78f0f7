package model

import "time"

// 分类类型
const (
	CategoryTypePermanent = "permanent"
	CategoryTypeWeekly    = "weekly"
	CategoryTypeCustom    = "custom"
)

// Category 照片分类；weekly 分类一周后由归档任务置为 inactive（单向）
type Category struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name          string     `json:"name" gorm:"type:varchar(128);not null"`
	CategoryType  string     `json:"category_type" gorm:"type:varchar(16);index;not null;default:permanent"`
	IsActive      bool       `json:"is_active" gorm:"index;not null;default:true"`
	WeekStartDate *time.Time `json:"week_start_date,omitempty" gorm:"index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Category) TableName() string { return "categories" }
