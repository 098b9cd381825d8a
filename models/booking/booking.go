package booking

import (
	"time"

	"github.com/Tawan151766/solva-travel-sub001/models/customtour"
	"github.com/Tawan151766/solva-travel-sub001/models/travelpackage"
	"github.com/Tawan151766/solva-travel-sub001/models/user"
)

// Booking represents a confirmed-intent record linking a customer to either a
// fixed travel package or an already-quoted custom tour request. Exactly one
// of PackageID / CustomTourRequestID is set, matching BookingType.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;index" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	BookingNumber string      `gorm:"type:varchar(255);not null;unique" json:"booking_number"`
	BookingType   BookingType `gorm:"type:varchar(20);not null" json:"booking_type"`

	// Mutually exclusive references depending on BookingType
	PackageID           *uint                        `gorm:"index" json:"package_id,omitempty"`
	Package             *travelpackage.TravelPackage `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	CustomTourRequestID *uint                        `gorm:"index" json:"custom_tour_request_id,omitempty"`
	CustomTourRequest   *customtour.CustomTourRequest `gorm:"foreignKey:CustomTourRequestID" json:"custom_tour_request,omitempty"`

	CustomerName  string `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail string `gorm:"type:varchar(255);not null" json:"customer_email"`
	CustomerPhone string `gorm:"type:varchar(20);not null" json:"customer_phone"`

	StartDate      time.Time `gorm:"not null" json:"start_date"`
	EndDate        time.Time `gorm:"not null" json:"end_date"`
	NumberOfPeople int       `gorm:"type:int;not null" json:"number_of_people"`
	TotalAmount    float64   `gorm:"type:decimal(12,2);not null" json:"total_amount"`

	SpecialRequirements string `gorm:"type:text" json:"special_requirements"`
	Notes               string `gorm:"type:text" json:"notes"`

	Status        BookingStatus `gorm:"type:varchar(50);not null" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(50);not null" json:"payment_status"`

	CreatedBy string    `gorm:"type:varchar(255);not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy string    `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	// Bookings are never hard-deleted; cancellation is a status transition.
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
