package models

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Title           string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Subject         string    `gorm:"column:subject;type:varchar(255);not null" json:"subject"`
	Semester        int       `gorm:"column:semester;type:int" json:"semester"`
	Description     string    `gorm:"column:description;type:text" json:"description"`
	FileURL         string    `gorm:"column:file_url;type:text" json:"file_url"`
	FileStoragePath string    `gorm:"column:file_storage_path;type:text" json:"file_storage_path"`
	FileSize        int64     `gorm:"column:file_size;type:bigint;default:0" json:"file_size"`
	Downloads       int       `gorm:"column:downloads;type:int;default:0" json:"downloads"`
	College         string    `gorm:"column:college;type:text;not null" json:"college"`
	CollegeKey      string    `gorm:"column:college_key;type:text;not null;index" json:"-"`
	CreatedAt       time.Time `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Note) TableName() string {
	return "notes"
}
