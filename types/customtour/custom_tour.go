package customtour

import (
	"time"
)

// CustomTourCreateRequest represents a guest or user itinerary inquiry.
type CustomTourCreateRequest struct {
	ContactName    string    `json:"contact_name" validate:"required,min=1,max=255"`
	ContactEmail   string    `json:"contact_email" validate:"required,email"`
	ContactPhone   string    `json:"contact_phone" validate:"required,min=6,max=20"`
	Destination    string    `json:"destination" validate:"required,min=1,max=255"`
	StartDate      time.Time `json:"start_date" validate:"required"`
	EndDate        time.Time `json:"end_date" validate:"required"`
	NumberOfPeople int       `json:"number_of_people" validate:"required,min=1"`
	Budget         float64   `json:"budget" validate:"omitempty,gte=0"`
	Accommodation  string    `json:"accommodation" validate:"omitempty"`
	Transportation string    `json:"transportation" validate:"omitempty"`
	Activities     string    `json:"activities" validate:"omitempty"`
	Description    string    `json:"description" validate:"omitempty"`
}

// CustomTourUpdateRequest is a partial update covering both the owner's
// content fields and the staff adjudication fields. Pointer fields
// distinguish "absent" from "zero"; the policy decides which of the present
// fields the actor may actually write.
type CustomTourUpdateRequest struct {
	ContactName    *string    `json:"contact_name"`
	ContactEmail   *string    `json:"contact_email"`
	ContactPhone   *string    `json:"contact_phone"`
	Destination    *string    `json:"destination"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	NumberOfPeople *int       `json:"number_of_people"`
	Budget         *float64   `json:"budget"`
	Accommodation  *string    `json:"accommodation"`
	Transportation *string    `json:"transportation"`
	Activities     *string    `json:"activities"`
	Description    *string    `json:"description"`

	Status          *string    `json:"status"`
	AssignedStaffID *uint      `json:"assigned_staff_id"`
	ResponseNotes   *string    `json:"response_notes"`
	EstimatedCost   *float64   `json:"estimated_cost"`
	ResponseDate    *time.Time `json:"response_date"`
}

// ToPatch builds the column patch from the fields actually present in the
// request body.
func (r CustomTourUpdateRequest) ToPatch() map[string]interface{} {
	patch := make(map[string]interface{})
	if r.ContactName != nil {
		patch["contact_name"] = *r.ContactName
	}
	if r.ContactEmail != nil {
		patch["contact_email"] = *r.ContactEmail
	}
	if r.ContactPhone != nil {
		patch["contact_phone"] = *r.ContactPhone
	}
	if r.Destination != nil {
		patch["destination"] = *r.Destination
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
	if r.Budget != nil {
		patch["budget"] = *r.Budget
	}
	if r.Accommodation != nil {
		patch["accommodation"] = *r.Accommodation
	}
	if r.Transportation != nil {
		patch["transportation"] = *r.Transportation
	}
	if r.Activities != nil {
		patch["activities"] = *r.Activities
	}
	if r.Description != nil {
		patch["description"] = *r.Description
	}
	if r.Status != nil {
		patch["status"] = *r.Status
	}
	if r.AssignedStaffID != nil {
		patch["assigned_staff_id"] = *r.AssignedStaffID
	}
	if r.ResponseNotes != nil {
		patch["response_notes"] = *r.ResponseNotes
	}
	if r.EstimatedCost != nil {
		patch["estimated_cost"] = *r.EstimatedCost
	}
	if r.ResponseDate != nil {
		patch["response_date"] = *r.ResponseDate
	}
	return patch
}
