package models

import (
	"time"

	"github.com/google/uuid"
)

type AlumniProfile struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;unique;not null" json:"user_id"`
	GradYear    int       `gorm:"column:grad_year;type:int;not null" json:"grad_year"`
	Company     string    `gorm:"column:company;type:varchar(255)" json:"company"`
	Role        string    `gorm:"column:role;type:varchar(255)" json:"role"`
	LinkedinURL string    `gorm:"column:linkedin_url;type:text" json:"linkedin_url"`
	College     string    `gorm:"column:college;type:text;not null" json:"college"`
	CollegeKey  string    `gorm:"column:college_key;type:text;not null;index" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AlumniProfile) TableName() string {
	return "alumni"
}
