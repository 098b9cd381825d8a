package customtour

import (
	"time"

	"github.com/Tawan151766/solva-travel-sub001/models/staff"
	"github.com/Tawan151766/solva-travel-sub001/models/user"
)

// CustomTourRequest is a bespoke itinerary inquiry. Guests may submit without
// an account, so UserID is nullable. Staff quote the request by attaching an
// estimated cost, which stamps ResponseDate; ResponseDate is set if and only
// if EstimatedCost has been provided at least once.
type CustomTourRequest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	TrackingNumber string `gorm:"type:varchar(255);not null;unique" json:"tracking_number"`

	// Nullable owner: guest submissions carry contact fields only
	UserID *uint      `gorm:"index" json:"user_id,omitempty"`
	User   *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`

	AssignedStaffID *uint               `gorm:"index" json:"assigned_staff_id,omitempty"`
	AssignedStaff   *staff.StaffProfile `gorm:"foreignKey:AssignedStaffID" json:"assigned_staff,omitempty"`

	ContactName  string `gorm:"type:varchar(255);not null" json:"contact_name"`
	ContactEmail string `gorm:"type:varchar(255);not null" json:"contact_email"`
	ContactPhone string `gorm:"type:varchar(20);not null" json:"contact_phone"`

	Destination    string    `gorm:"type:varchar(255);not null" json:"destination"`
	StartDate      time.Time `gorm:"not null" json:"start_date"`
	EndDate        time.Time `gorm:"not null" json:"end_date"`
	NumberOfPeople int       `gorm:"type:int;not null" json:"number_of_people"`
	Budget         float64   `gorm:"type:decimal(12,2)" json:"budget"`

	Accommodation  string `gorm:"type:text" json:"accommodation"`
	Transportation string `gorm:"type:text" json:"transportation"`
	Activities     string `gorm:"type:text" json:"activities"`
	Description    string `gorm:"type:text" json:"description"`

	Status        RequestStatus `gorm:"type:varchar(50);not null" json:"status"`
	EstimatedCost *float64      `gorm:"type:decimal(12,2)" json:"estimated_cost,omitempty"`
	ResponseNotes string        `gorm:"type:text" json:"response_notes"`
	ResponseDate  *time.Time    `json:"response_date,omitempty"`

	CreatedBy string    `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedBy string    `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName sets the table name for the CustomTourRequest model
func (CustomTourRequest) TableName() string {
	return "custom_tour_requests"
}
