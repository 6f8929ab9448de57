package models

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Title            string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description      string    `gorm:"column:description;type:text" json:"description"`
	EventDate        time.Time `gorm:"column:event_date;type:timestamp;not null" json:"event_date"`
	Location         string    `gorm:"column:location;type:varchar(255)" json:"location"`
	Media            string    `gorm:"column:media;type:text" json:"media"`
	OrganizerName    string    `gorm:"column:organizer_name;type:varchar(255)" json:"organizer_name"`
	OrganizerContact string    `gorm:"column:organizer_contact;type:varchar(50)" json:"organizer_contact"`
	AttendeeCount    int       `gorm:"column:attendee_count;type:int;default:0" json:"attendee_count"`
	College          string    `gorm:"column:college;type:text;not null" json:"college"`
	CollegeKey       string    `gorm:"column:college_key;type:text;not null;index" json:"-"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Event) TableName() string {
	return "events"
}

type EventRSVP struct {
	ID        int       `gorm:"column:id;type:serial;primaryKey" json:"id"`
	EventID   uuid.UUID `gorm:"column:event_id;type:uuid;not null;uniqueIndex:idx_event_user" json:"event_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_event_user" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamp;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (EventRSVP) TableName() string {
	return "event_rsvps"
}
