package models

import (
	"time"

	"github.com/google/uuid"
)

type PointEvent struct {
	ID         int       `gorm:"column:id;type:serial;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`
	Amount     int       `gorm:"column:amount;type:int;not null" json:"amount"`
	ActionType string    `gorm:"column:action_type;type:varchar(50);not null" json:"action_type"`
	CreatedAt  time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (PointEvent) TableName() string {
	return "point_events"
}

type Badge struct {
	ID          int    `gorm:"column:id;type:serial;primaryKey" json:"id"`
	Name        string `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	MinPoints   int    `gorm:"column:min_points;type:int;not null" json:"min_points"`
}

func (Badge) TableName() string {
	return "badges"
}

type UserBadge struct {
	UserID  uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	BadgeID int       `gorm:"column:badge_id;type:int;not null" json:"badge_id"`
}

func (UserBadge) TableName() string {
	return "user_badges"
}
