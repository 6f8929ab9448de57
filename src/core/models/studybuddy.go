package models

import (
	"time"

	"github.com/google/uuid"
)

type StudyBuddyRequest struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Subject      string    `gorm:"column:subject;type:varchar(255);not null" json:"subject"`
	Availability string    `gorm:"column:availability;type:varchar(255)" json:"availability"`
	Contact      string    `gorm:"column:contact;type:varchar(255);not null" json:"contact"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	College      string    `gorm:"column:college;type:text;not null" json:"college"`
	CollegeKey   string    `gorm:"column:college_key;type:text;not null;index" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (StudyBuddyRequest) TableName() string {
	return "study_buddy_requests"
}

type StudyGroup struct {
	ID          int       `gorm:"column:id;type:serial;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Subject     string    `gorm:"column:subject;type:varchar(255)" json:"subject"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	CreatedBy   uuid.UUID `gorm:"column:created_by;type:uuid;not null" json:"created_by"`
	College     string    `gorm:"column:college;type:text;not null" json:"college"`
	CollegeKey  string    `gorm:"column:college_key;type:text;not null;index" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (StudyGroup) TableName() string {
	return "study_groups"
}

type StudyGroupMember struct {
	GroupID  int       `gorm:"column:group_id;type:int;not null;uniqueIndex:idx_group_user" json:"group_id"`
	UserID   uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_group_user" json:"user_id"`
	JoinedAt time.Time `gorm:"column:joined_at;type:timestamp;default:CURRENT_TIMESTAMP" json:"joined_at"`
}

func (StudyGroupMember) TableName() string {
	return "study_group_members"
}

type GroupMessage struct {
	ID        int       `gorm:"column:id;type:serial;primaryKey" json:"id"`
	GroupID   int       `gorm:"column:group_id;type:int;not null" json:"group_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Message   string    `gorm:"column:message;type:text;not null" json:"message"`
	FileURL   string    `gorm:"column:file_url;type:text;default:''" json:"file_url"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (GroupMessage) TableName() string {
	return "group_messages"
}
