package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tawan151766/solva-travel-sub001/constants"
	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
)

func ownedRequest(ownerID uint, status customtourModel.RequestStatus) *customtourModel.CustomTourRequest {
	return &customtourModel.CustomTourRequest{UserID: &ownerID, Status: status}
}

func TestAuthorizeRequestMutationOwner(t *testing.T) {
	owner := Actor{UserID: 7, Role: constants.RoleCustomer}

	t.Run("pending request accepts content fields", func(t *testing.T) {
		req := ownedRequest(7, customtourModel.RequestStatusPending)
		patch := map[string]interface{}{
			"destination": "Chiang Rai",
			"budget":      30000.0,
		}

		filtered, err := AuthorizeRequestMutation(owner, req, patch)
		require.NoError(t, err)
		assert.Equal(t, "Chiang Rai", filtered["destination"])
		assert.Equal(t, 30000.0, filtered["budget"])
	})

	t.Run("staff fields silently dropped", func(t *testing.T) {
		req := ownedRequest(7, customtourModel.RequestStatusPending)
		patch := map[string]interface{}{
			"status":      customtourModel.RequestStatusCompleted,
			"destination": "Chiang Rai",
		}

		filtered, err := AuthorizeRequestMutation(owner, req, patch)
		require.NoError(t, err)
		assert.NotContains(t, filtered, "status")
		assert.Equal(t, "Chiang Rai", filtered["destination"])
	})

	t.Run("frozen once triage begins", func(t *testing.T) {
		for _, status := range []customtourModel.RequestStatus{
			customtourModel.RequestStatusQuoted,
			customtourModel.RequestStatusInProgress,
			customtourModel.RequestStatusCompleted,
		} {
			req := ownedRequest(7, status)
			_, err := AuthorizeRequestMutation(owner, req, map[string]interface{}{"destination": "Pai"})

			var denied *DeniedError
			require.ErrorAs(t, err, &denied)
			assert.Equal(t, ReasonRequestFrozen, denied.Reason)
		}
	})
}

func TestAuthorizeRequestMutationStaff(t *testing.T) {
	staff := Actor{UserID: 3, Role: constants.RoleStaff}
	req := ownedRequest(7, customtourModel.RequestStatusInProgress)

	patch := map[string]interface{}{
		"estimated_cost": 5500.0,
		"response_notes": "itinerary drafted",
		"destination":    "should be dropped",
	}

	filtered, err := AuthorizeRequestMutation(staff, req, patch)
	require.NoError(t, err)
	assert.Equal(t, 5500.0, filtered["estimated_cost"])
	assert.Equal(t, "itinerary drafted", filtered["response_notes"])
	assert.NotContains(t, filtered, "destination", "staff do not edit request content")
}

func TestAuthorizeRequestMutationStranger(t *testing.T) {
	stranger := Actor{UserID: 99, Role: constants.RoleCustomer}
	req := ownedRequest(7, customtourModel.RequestStatusPending)

	_, err := AuthorizeRequestMutation(stranger, req, map[string]interface{}{"destination": "Pai"})

	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, ReasonAccessDenied, denied.Reason)
}

func TestAuthorizeRequestMutationGuestRequest(t *testing.T) {
	// A guest-submitted request has no owner; only staff may touch it.
	req := &customtourModel.CustomTourRequest{Status: customtourModel.RequestStatusPending}
	customer := Actor{UserID: 7, Role: constants.RoleCustomer}

	_, err := AuthorizeRequestMutation(customer, req, map[string]interface{}{"destination": "Pai"})
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, ReasonAccessDenied, denied.Reason)

	admin := Actor{UserID: 1, Role: constants.RoleAdmin}
	filtered, err := AuthorizeRequestMutation(admin, req, map[string]interface{}{"response_notes": "ok"})
	require.NoError(t, err)
	assert.Equal(t, "ok", filtered["response_notes"])
}

func TestAuthorizeBookingMutation(t *testing.T) {
	booking := &bookingModel.Booking{UserID: 7, Status: bookingModel.BookingStatusPending}

	t.Run("owner edits contact fields while pending", func(t *testing.T) {
		filtered, err := AuthorizeBookingMutation(Actor{UserID: 7, Role: constants.RoleCustomer}, booking, map[string]interface{}{
			"customer_phone": "+66812345678",
			"total_amount":   1.0,
		})
		require.NoError(t, err)
		assert.Equal(t, "+66812345678", filtered["customer_phone"])
		assert.NotContains(t, filtered, "total_amount")
	})

	t.Run("owner frozen after confirmation", func(t *testing.T) {
		confirmed := &bookingModel.Booking{UserID: 7, Status: bookingModel.BookingStatusConfirmed}
		_, err := AuthorizeBookingMutation(Actor{UserID: 7, Role: constants.RoleCustomer}, confirmed, map[string]interface{}{
			"customer_phone": "+66812345678",
		})
		var denied *DeniedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, ReasonRequestFrozen, denied.Reason)
	})

	t.Run("staff edits adjudication fields at any status", func(t *testing.T) {
		confirmed := &bookingModel.Booking{UserID: 7, Status: bookingModel.BookingStatusConfirmed}
		filtered, err := AuthorizeBookingMutation(Actor{UserID: 3, Role: constants.RoleStaff}, confirmed, map[string]interface{}{
			"payment_status": bookingModel.PaymentStatusPaid,
			"customer_name":  "dropped",
		})
		require.NoError(t, err)
		assert.Equal(t, bookingModel.PaymentStatusPaid, filtered["payment_status"])
		assert.NotContains(t, filtered, "customer_name")
	})
}

func TestAuthorizeRequestCancel(t *testing.T) {
	owner := Actor{UserID: 7, Role: constants.RoleCustomer}

	t.Run("owner cancels a live request", func(t *testing.T) {
		assert.NoError(t, AuthorizeRequestCancel(owner, ownedRequest(7, customtourModel.RequestStatusQuoted)))
	})

	t.Run("terminal request rejected for everyone", func(t *testing.T) {
		staff := Actor{UserID: 3, Role: constants.RoleStaff}
		for _, status := range []customtourModel.RequestStatus{
			customtourModel.RequestStatusCompleted,
			customtourModel.RequestStatusCancelled,
		} {
			for _, actor := range []Actor{owner, staff} {
				err := AuthorizeRequestCancel(actor, ownedRequest(7, status))
				var denied *DeniedError
				require.ErrorAs(t, err, &denied)
				assert.Equal(t, ReasonCancelTerminal, denied.Reason)
			}
		}
	})

	t.Run("stranger rejected", func(t *testing.T) {
		err := AuthorizeRequestCancel(Actor{UserID: 99, Role: constants.RoleCustomer}, ownedRequest(7, customtourModel.RequestStatusPending))
		var denied *DeniedError
		require.ErrorAs(t, err, &denied)
		assert.Equal(t, ReasonAccessDenied, denied.Reason)
	})
}

func TestAuthorizeBookingCancel(t *testing.T) {
	owner := Actor{UserID: 7, Role: constants.RoleCustomer}

	assert.NoError(t, AuthorizeBookingCancel(owner, &bookingModel.Booking{UserID: 7, Status: bookingModel.BookingStatusConfirmed}))

	err := AuthorizeBookingCancel(owner, &bookingModel.Booking{UserID: 7, Status: bookingModel.BookingStatusCompleted})
	var denied *DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, ReasonCancelTerminal, denied.Reason)

	err = AuthorizeBookingCancel(Actor{UserID: 99, Role: constants.RoleCustomer}, &bookingModel.Booking{UserID: 7, Status: bookingModel.BookingStatusPending})
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, ReasonAccessDenied, denied.Reason)
}

func TestFilterPatch(t *testing.T) {
	patch := map[string]interface{}{"a": 1, "b": 2, "c": 3}
	filtered := FilterPatch(patch, []string{"a", "c", "missing"})
	assert.Equal(t, map[string]interface{}{"a": 1, "c": 3}, filtered)
}
