package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	IssueStatusOpen       = "open"
	IssueStatusInProgress = "in_progress"
	IssueStatusResolved   = "resolved"
)

type Issue struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Category    string    `gorm:"column:category;type:varchar(100)" json:"category"`
	ImageURL    string    `gorm:"column:image_url;type:text" json:"image_url"`
	Status      string    `gorm:"column:status;type:varchar(20);not null;default:'open'" json:"status"`
	College     string    `gorm:"column:college;type:text;not null" json:"college"`
	CollegeKey  string    `gorm:"column:college_key;type:text;not null;index" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Issue) TableName() string {
	return "issues"
}
