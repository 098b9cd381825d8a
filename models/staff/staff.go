package staff

import (
	"time"

	"github.com/Tawan151766/solva-travel-sub001/models/user"
)

// StaffProfile links a user account to its agency staff record.
// Custom tour requests are assigned against this table, not users directly.
type StaffProfile struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	// Foreign key for users relationship
	UserID uint      `gorm:"not null;unique" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	Position   string `gorm:"type:varchar(255);not null" json:"position"`
	Department string `gorm:"type:varchar(255)" json:"department"`
	IsActive   bool   `gorm:"type:bool;default:true" json:"is_active"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}

// TableName sets the table name for the StaffProfile model
func (StaffProfile) TableName() string {
	return "staff_profiles"
}
