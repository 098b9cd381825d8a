package policy

import (
	"github.com/Tawan151766/solva-travel-sub001/constants"
	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
)

// Denial reasons surfaced verbatim to the caller.
const (
	ReasonAccessDenied   = "access denied"
	ReasonRequestFrozen  = "cannot modify a request already being processed"
	ReasonCancelTerminal = "cannot cancel completed or already cancelled requests"
)

// DeniedError is a policy rejection. The reason string reaches the UI
// unchanged so it can explain why; controllers map it to 403.
type DeniedError struct {
	Reason string
}

func (e *DeniedError) Error() string {
	return e.Reason
}

// Actor is the identity the auth middleware vouches for. The policy trusts
// the role and id it is given; credential verification happens upstream.
type Actor struct {
	UserID uint
	Role   string
}

// IsStaffTier reports whether the actor has staff privileges. Staff and
// admin are identical for field mutation; the admin distinction matters in
// the dashboard, not here.
func (a Actor) IsStaffTier() bool {
	return a.Role == constants.RoleStaff || a.Role == constants.RoleAdmin
}

// Per-role allow-lists, keyed by column name. Anything not listed is
// silently dropped from the patch rather than rejected; the API stays
// forgiving and the policy stays auditable in one place.
var (
	// OwnerRequestFields is the request's own content. Adjudication fields
	// (status, cost, assignment) are staff territory.
	OwnerRequestFields = []string{
		"contact_name",
		"contact_email",
		"contact_phone",
		"destination",
		"start_date",
		"end_date",
		"number_of_people",
		"budget",
		"accommodation",
		"transportation",
		"activities",
		"description",
	}

	// StaffRequestFields is the adjudication surface of a request.
	StaffRequestFields = []string{
		"status",
		"assigned_staff_id",
		"response_notes",
		"estimated_cost",
		"response_date",
	}

	// OwnerBookingFields mirrors the owner rule for bookings.
	OwnerBookingFields = []string{
		"customer_name",
		"customer_email",
		"customer_phone",
		"start_date",
		"end_date",
		"number_of_people",
		"special_requirements",
	}

	// StaffBookingFields is the staff surface of a booking.
	StaffBookingFields = []string{
		"status",
		"payment_status",
		"total_amount",
		"notes",
	}
)

// FilterPatch reduces a patch to the allowed keys. Disallowed keys are
// dropped, never rejected.
func FilterPatch(patch map[string]interface{}, allowed []string) map[string]interface{} {
	filtered := make(map[string]interface{}, len(patch))
	for _, key := range allowed {
		if value, ok := patch[key]; ok {
			filtered[key] = value
		}
	}
	return filtered
}

// AuthorizeRequestMutation computes the patch an actor may apply to a custom
// tour request. Owners may only edit content fields and only while the
// request is still PENDING; once staff triage begins the submitter cannot
// alter facts out from under them.
func AuthorizeRequestMutation(actor Actor, req *customtourModel.CustomTourRequest, patch map[string]interface{}) (map[string]interface{}, error) {
	if actor.IsStaffTier() {
		return FilterPatch(patch, StaffRequestFields), nil
	}

	if isRequestOwner(actor, req) {
		if req.Status != customtourModel.RequestStatusPending {
			return nil, &DeniedError{Reason: ReasonRequestFrozen}
		}
		return FilterPatch(patch, OwnerRequestFields), nil
	}

	return nil, &DeniedError{Reason: ReasonAccessDenied}
}

// AuthorizeBookingMutation computes the patch an actor may apply to a
// booking, under the same owner-freeze rule.
func AuthorizeBookingMutation(actor Actor, b *bookingModel.Booking, patch map[string]interface{}) (map[string]interface{}, error) {
	if actor.IsStaffTier() {
		return FilterPatch(patch, StaffBookingFields), nil
	}

	if actor.UserID != 0 && actor.UserID == b.UserID {
		if b.Status != bookingModel.BookingStatusPending {
			return nil, &DeniedError{Reason: ReasonRequestFrozen}
		}
		return FilterPatch(patch, OwnerBookingFields), nil
	}

	return nil, &DeniedError{Reason: ReasonAccessDenied}
}

// AuthorizeRequestCancel checks a cancel attempt on a request. The terminal
// check runs first so a completed or cancelled record is rejected for every
// tier with the same reason.
func AuthorizeRequestCancel(actor Actor, req *customtourModel.CustomTourRequest) error {
	if req.Status.IsTerminal() {
		return &DeniedError{Reason: ReasonCancelTerminal}
	}
	if actor.IsStaffTier() || isRequestOwner(actor, req) {
		return nil
	}
	return &DeniedError{Reason: ReasonAccessDenied}
}

// AuthorizeBookingCancel checks a cancel attempt on a booking.
func AuthorizeBookingCancel(actor Actor, b *bookingModel.Booking) error {
	if b.Status.IsTerminal() {
		return &DeniedError{Reason: ReasonCancelTerminal}
	}
	if actor.IsStaffTier() || (actor.UserID != 0 && actor.UserID == b.UserID) {
		return nil
	}
	return &DeniedError{Reason: ReasonAccessDenied}
}

func isRequestOwner(actor Actor, req *customtourModel.CustomTourRequest) bool {
	return actor.UserID != 0 && req.UserID != nil && *req.UserID == actor.UserID
}
