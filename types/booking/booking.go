package booking

import (
	"errors"
	"time"

	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
)

// BookingCreateRequest represents the request payload for creating a booking.
// Exactly one of PackageID / CustomTourRequestID must be set, matching
// BookingType; the controller enforces the exclusivity.
type BookingCreateRequest struct {
	BookingType         string  `json:"booking_type" validate:"required,oneof=PACKAGE CUSTOM"`
	PackageID           *uint   `json:"package_id" validate:"omitempty,min=1"`
	CustomTourRequestID *uint   `json:"custom_tour_request_id" validate:"omitempty,min=1"`
	CustomerName        string  `json:"customer_name" validate:"required,min=1,max=255"`
	CustomerEmail       string  `json:"customer_email" validate:"required,email"`
	CustomerPhone       string  `json:"customer_phone" validate:"required,min=6,max=20"`
	StartDate           time.Time `json:"start_date" validate:"required"`
	EndDate             time.Time `json:"end_date" validate:"required"`
	NumberOfPeople      int     `json:"number_of_people" validate:"required,min=1"`
	TotalAmount         float64 `json:"total_amount" validate:"required,gt=0"`
	SpecialRequirements string  `json:"special_requirements" validate:"omitempty"`
	Notes               string  `json:"notes" validate:"omitempty"`
}

// ValidateReferences enforces the reference exclusivity rule: exactly one of
// PackageID / CustomTourRequestID is set, and it is the one BookingType
// names. The returned message is user-facing.
func (r BookingCreateRequest) ValidateReferences() error {
	switch bookingModel.BookingType(r.BookingType) {
	case bookingModel.BookingTypePackage:
		if r.PackageID == nil || r.CustomTourRequestID != nil {
			return errors.New("A package booking must reference a package and nothing else")
		}
	case bookingModel.BookingTypeCustom:
		if r.CustomTourRequestID == nil || r.PackageID != nil {
			return errors.New("A custom booking must reference a custom tour request and nothing else")
		}
	}
	return nil
}

// BookingUpdateRequest is a partial update. Pointer fields distinguish
// "absent" from "zero"; absent fields never enter the patch.
type BookingUpdateRequest struct {
	CustomerName        *string    `json:"customer_name"`
	CustomerEmail       *string    `json:"customer_email"`
	CustomerPhone       *string    `json:"customer_phone"`
	StartDate           *time.Time `json:"start_date"`
	EndDate             *time.Time `json:"end_date"`
	NumberOfPeople      *int       `json:"number_of_people"`
	SpecialRequirements *string    `json:"special_requirements"`
	Status              *string    `json:"status"`
	PaymentStatus       *string    `json:"payment_status"`
	TotalAmount         *float64   `json:"total_amount"`
	Notes               *string    `json:"notes"`
}

// ToPatch builds the column patch from the fields actually present in the
// request body. The policy filters it to the actor's allowed set.
func (r BookingUpdateRequest) ToPatch() map[string]interface{} {
	patch := make(map[string]interface{})
	if r.CustomerName != nil {
		patch["customer_name"] = *r.CustomerName
	}
	if r.CustomerEmail != nil {
		patch["customer_email"] = *r.CustomerEmail
	}
	if r.CustomerPhone != nil {
		patch["customer_phone"] = *r.CustomerPhone
	}
	if r.StartDate != nil {
		patch["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		patch["end_date"] = *r.EndDate
	}
	if r.NumberOfPeople != nil {
		patch["number_of_people"] = *r.NumberOfPeople
	}
	if r.SpecialRequirements != nil {
		patch["special_requirements"] = *r.SpecialRequirements
	}
	if r.Status != nil {
		patch["status"] = *r.Status
	}
	if r.PaymentStatus != nil {
		patch["payment_status"] = *r.PaymentStatus
	}
	if r.TotalAmount != nil {
		patch["total_amount"] = *r.TotalAmount
	}
	if r.Notes != nil {
		patch["notes"] = *r.Notes
	}
	return patch
}

// BookingStatusUpdateRequest represents a staff status transition request
type BookingStatusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes" validate:"omitempty"`
}
