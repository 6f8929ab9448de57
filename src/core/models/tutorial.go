package models

import (
	"time"

	"github.com/google/uuid"
)

type YoutubeTutorial struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Title      string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Subject    string    `gorm:"column:subject;type:varchar(255)" json:"subject"`
	VideoURL   string    `gorm:"column:video_url;type:text;not null" json:"video_url"`
	VideoID    string    `gorm:"column:video_id;type:varchar(20);not null" json:"video_id"`
	College    string    `gorm:"column:college;type:text;not null" json:"college"`
	CollegeKey string    `gorm:"column:college_key;type:text;not null;index" json:"-"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (YoutubeTutorial) TableName() string {
	return "youtube_tutorials"
}
