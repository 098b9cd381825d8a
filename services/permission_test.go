package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tawan151766/solva-travel-sub001/constants"
	bookingModel "github.com/Tawan151766/solva-travel-sub001/models/booking"
	"github.com/Tawan151766/solva-travel-sub001/models/user"
	"github.com/Tawan151766/solva-travel-sub001/services/policy"
)

// The identity service issues its own user_id claim; ownership checks run
// against this service's local user ids, so the actor must come from the
// uuid-resolved mirror row and never from that claim.
func TestActorFromClaimsUsesLocalMirrorID(t *testing.T) {
	claims := jwt.MapClaims{
		"uuid":    "7f6a1c2e",
		"user_id": float64(999),
		"role":    constants.RoleCustomer,
	}
	lookup := func(uuid string) (*user.User, error) {
		require.Equal(t, "7f6a1c2e", uuid)
		return &user.User{ID: 7, Uuid: uuid, Role: constants.RoleCustomer}, nil
	}

	actor, ok := actorFromClaims(claims, lookup)
	require.True(t, ok)
	assert.Equal(t, uint(7), actor.UserID)
	assert.Equal(t, constants.RoleCustomer, actor.Role)

	// The resolved actor owns its own booking.
	own := &bookingModel.Booking{UserID: 7, Status: bookingModel.BookingStatusPending}
	phone := "+66812345678"
	_, err := policy.AuthorizeBookingMutation(actor, own, map[string]interface{}{"customer_phone": phone})
	assert.NoError(t, err)

	// A stranger's booking whose local id collides with the foreign claim
	// stays out of reach.
	foreign := &bookingModel.Booking{UserID: 999, Status: bookingModel.BookingStatusPending}
	_, err = policy.AuthorizeBookingMutation(actor, foreign, map[string]interface{}{"customer_phone": phone})
	var denied *policy.DeniedError
	require.ErrorAs(t, err, &denied)
	assert.Equal(t, policy.ReasonAccessDenied, denied.Reason)
}

func TestActorFromClaimsMissingUUID(t *testing.T) {
	lookup := func(string) (*user.User, error) {
		t.Fatal("lookup must not be called without a uuid")
		return nil, nil
	}

	_, ok := actorFromClaims(jwt.MapClaims{"user_id": float64(7)}, lookup)
	assert.False(t, ok)

	_, ok = actorFromClaims(jwt.MapClaims{"uuid": ""}, lookup)
	assert.False(t, ok)
}

func TestActorFromClaimsUnknownUser(t *testing.T) {
	lookup := func(string) (*user.User, error) {
		return nil, errors.New("user not found")
	}

	_, ok := actorFromClaims(jwt.MapClaims{"uuid": "gone"}, lookup)
	assert.False(t, ok)
}

func TestPermissionServiceIsStaffTier(t *testing.T) {
	tests := []struct {
		name        string
		permissions map[string]bool
		want        bool
	}{
		{"staff permit", map[string]bool{constants.PermStaffFull: true}, true},
		{"admin permit", map[string]bool{constants.PermAdminFull: true}, true},
		{"customer permit", map[string]bool{constants.PermCustomerFull: true}, false},
		{"no permissions", map[string]bool{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := NewPermissionService()
			app := fiber.New()
			var got bool
			app.Get("/check", func(c *fiber.Ctx) error {
				c.Locals("permissions", tt.permissions)
				got = ps.IsStaffTier(c)
				return c.SendStatus(fiber.StatusNoContent)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/check", nil))
			require.NoError(t, err)
			require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Without a stored permission map the service falls back to the raw claims.
func TestPermissionServiceClaimsFallback(t *testing.T) {
	ps := NewPermissionService()
	app := fiber.New()
	var got bool
	app.Get("/check", func(c *fiber.Ctx) error {
		c.Locals("user", jwt.MapClaims{
			"permissions": []interface{}{constants.PermAdminFull},
		})
		got = ps.IsStaffTier(c)
		return c.SendStatus(fiber.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/check", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.True(t, got)
}
