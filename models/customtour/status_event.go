package customtour

import (
	"time"
)

// CustomTourStatusEvent represents a status change event for a custom tour request
type CustomTourStatusEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for custom tour request relationship
	CustomTourRequestID uint              `gorm:"not null;index" json:"custom_tour_request_id"`
	CustomTourRequest   CustomTourRequest `gorm:"foreignKey:CustomTourRequestID" json:"custom_tour_request"`

	Status    RequestStatus `gorm:"size:50;not null" json:"status"`
	CreatedBy string        `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the CustomTourStatusEvent model
func (CustomTourStatusEvent) TableName() string {
	return "custom_tour_status_events"
}
