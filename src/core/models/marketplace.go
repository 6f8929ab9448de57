package models

import (
	"time"

	"github.com/google/uuid"
)

type MarketplaceListing struct {
	ID            uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
	Title         string    `gorm:"column:title;type:varchar(255);not null" json:"title"`
	Description   string    `gorm:"column:description;type:text" json:"description"`
	Price         float64   `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Category      string    `gorm:"column:category;type:varchar(100)" json:"category"`
	ImageURL      string    `gorm:"column:image_url;type:text" json:"image_url"`
	ContactMethod string    `gorm:"column:contact_method;type:varchar(255);not null" json:"contact_method"`
	Sold          bool      `gorm:"column:sold;type:boolean;default:false" json:"sold"`
	College       string    `gorm:"column:college;type:text;not null" json:"college"`
	CollegeKey    string    `gorm:"column:college_key;type:text;not null;index" json:"-"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (MarketplaceListing) TableName() string {
	return "marketplace_listings"
}
