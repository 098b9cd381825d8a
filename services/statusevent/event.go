package statusevent

import (
	"gorm.io/gorm"

	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
)

// RecordBookingStatus appends a status event row for a booking. Callers pass
// their transaction handle so the event commits together with the status
// change it records.
func RecordBookingStatus(tx *gorm.DB, bookingID uint, status bookingModel.BookingStatus, createdBy string) error {
	event := bookingModel.BookingStatusEvent{
		BookingID: bookingID,
		Status:    status,
		CreatedBy: createdBy,
	}
	return tx.Create(&event).Error
}

// RecordRequestStatus appends a status event row for a custom tour request.
func RecordRequestStatus(tx *gorm.DB, requestID uint, status customtourModel.RequestStatus, createdBy string) error {
	event := customtourModel.CustomTourStatusEvent{
		CustomTourRequestID: requestID,
		Status:              status,
		CreatedBy:           createdBy,
	}
	return tx.Create(&event).Error
}
