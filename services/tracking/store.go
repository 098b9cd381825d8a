package tracking

import (
	"strconv"

	"gorm.io/gorm"

	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
)

// gormStore is the database-backed Store. The lookup predicate is
// "public number == X OR id == X"; the id arm only applies when the
// identifier parses as a number, since ids are integer columns.
type gormStore struct {
	db *gorm.DB
}

// NewStore creates a GORM-backed resolver store
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) FindBookingByIdentifier(identifier string) (*bookingModel.Booking, error) {
	query := s.db.Preload("User").Preload("Package").Preload("CustomTourRequest")
	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		query = query.Where("booking_number = ? OR id = ?", identifier, uint(id))
	} else {
		query = query.Where("booking_number = ?", identifier)
	}

	var b bookingModel.Booking
	if err := query.First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *gormStore) FindRequestByIdentifier(identifier string) (*customtourModel.CustomTourRequest, error) {
	query := s.db.Preload("User").Preload("AssignedStaff")
	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		query = query.Where("tracking_number = ? OR id = ?", identifier, uint(id))
	} else {
		query = query.Where("tracking_number = ?", identifier)
	}

	var req customtourModel.CustomTourRequest
	if err := query.First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}
