package lifecycle

import (
	"fmt"

	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
)

// Kind names the two record kinds the lifecycle engine governs.
type Kind string

const (
	KindBooking    Kind = "booking"
	KindCustomTour Kind = "custom_tour"
)

// IllegalTransitionError is returned when a status change is not in the
// transition table. Controllers map it to a 400 with the reason intact;
// it must never degrade to a silent no-op or a server fault.
type IllegalTransitionError struct {
	Kind Kind
	From string
	To   string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("cannot change %s status from %s to %s", e.Kind, e.From, e.To)
}

// bookingTransitions is the full transition table for bookings. PENDING must
// pass through CONFIRMED before COMPLETED; CANCELLED and COMPLETED are
// terminal.
var bookingTransitions = map[bookingModel.BookingStatus][]bookingModel.BookingStatus{
	bookingModel.BookingStatusPending: {
		bookingModel.BookingStatusConfirmed,
		bookingModel.BookingStatusCancelled,
	},
	bookingModel.BookingStatusConfirmed: {
		bookingModel.BookingStatusCompleted,
		bookingModel.BookingStatusCancelled,
	},
	bookingModel.BookingStatusCancelled: {},
	bookingModel.BookingStatusCompleted: {},
}

// requestTransitions is the full transition table for custom tour requests.
var requestTransitions = map[customtourModel.RequestStatus][]customtourModel.RequestStatus{
	customtourModel.RequestStatusPending: {
		customtourModel.RequestStatusQuoted,
		customtourModel.RequestStatusCancelled,
		customtourModel.RequestStatusInProgress,
	},
	customtourModel.RequestStatusQuoted: {
		customtourModel.RequestStatusConfirmed,
		customtourModel.RequestStatusCancelled,
	},
	customtourModel.RequestStatusConfirmed: {
		customtourModel.RequestStatusInProgress,
		customtourModel.RequestStatusCancelled,
	},
	customtourModel.RequestStatusInProgress: {
		customtourModel.RequestStatusCompleted,
		customtourModel.RequestStatusCancelled,
	},
	customtourModel.RequestStatusCompleted: {},
	customtourModel.RequestStatusCancelled: {},
}

// CheckBookingTransition validates a booking status change against the
// transition table.
func CheckBookingTransition(from, to bookingModel.BookingStatus) error {
	if !to.IsValid() {
		return &IllegalTransitionError{Kind: KindBooking, From: from.String(), To: to.String()}
	}
	for _, next := range bookingTransitions[from] {
		if next == to {
			return nil
		}
	}
	return &IllegalTransitionError{Kind: KindBooking, From: from.String(), To: to.String()}
}

// CheckRequestTransition validates a custom tour request status change
// against the transition table.
func CheckRequestTransition(from, to customtourModel.RequestStatus) error {
	if !to.IsValid() {
		return &IllegalTransitionError{Kind: KindCustomTour, From: from.String(), To: to.String()}
	}
	for _, next := range requestTransitions[from] {
		if next == to {
			return nil
		}
	}
	return &IllegalTransitionError{Kind: KindCustomTour, From: from.String(), To: to.String()}
}
