package travelpackage

import (
	"time"
)

// TravelPackage is a fixed catalogue itinerary customers can book directly.
// Catalogue management lives in the admin dashboard; this service only reads
// packages and references them from bookings.
type TravelPackage struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	Title        string  `gorm:"type:varchar(255);not null" json:"title"`
	Description  string  `gorm:"type:text" json:"description"`
	Location     string  `gorm:"type:varchar(255);not null" json:"location"`
	Price        float64 `gorm:"type:decimal(12,2);not null" json:"price"`
	DurationDays int     `gorm:"type:int;not null" json:"duration_days"`
	MaxCapacity  int     `gorm:"type:int;not null" json:"max_capacity"`
	ImageURL     string  `gorm:"type:varchar(2048)" json:"image_url"`
	IsActive     bool    `gorm:"type:bool;default:true" json:"is_active"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName sets the table name for the TravelPackage model
func (TravelPackage) TableName() string {
	return "travel_packages"
}
