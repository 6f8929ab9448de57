package models

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID                      uuid.UUID `gorm:"column:id;type:uuid;primaryKey;not null" json:"id"`
	FullName                string    `gorm:"column:full_name;type:text;not null" json:"full_name"`
	Email                   string    `gorm:"column:email;type:text;unique;not null" json:"email" validate:"required,email"`
	Password                string    `gorm:"column:password;type:text;not null" json:"password,omitempty"`
	Branch                  string    `gorm:"column:branch;type:text" json:"branch"`
	Semester                int       `gorm:"column:semester;type:int;default:0" json:"semester"`
	College                 string    `gorm:"column:college;type:text;not null" json:"college"`
	CollegeKey              string    `gorm:"column:college_key;type:text;not null;index" json:"-"`
	ProfilePhotoURL         string    `gorm:"column:profile_pic_url;type:text;default:''" json:"profile_photo_url"`
	ProfilePhotoStoragePath string    `gorm:"column:profile_pic_storage_path;type:text;default:''" json:"profile_photo_storage_path"`
	CreatedAt               time.Time `gorm:"column:created_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt               time.Time `gorm:"column:updated_at;type:timestamp with time zone;not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
