package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	LostFoundKindLost  = "lost"
	LostFoundKindFound = "found"
)

type LostFoundPost struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Kind        string    `gorm:"column:kind;type:varchar(10);not null" json:"kind"`
	Title       string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Location    string    `gorm:"column:location;type:varchar(255)" json:"location"`
	ImageURL    string    `gorm:"column:image_url;type:text" json:"image_url"`
	Resolved    bool      `gorm:"column:resolved;type:boolean;default:false" json:"resolved"`
	College     string    `gorm:"column:college;type:text;not null" json:"college"`
	CollegeKey  string    `gorm:"column:college_key;type:text;not null;index" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (LostFoundPost) TableName() string {
	return "lost_and_found"
}
