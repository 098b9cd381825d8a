package booking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReferences(t *testing.T) {
	packageID := uint(3)
	requestID := uint(5)

	tests := []struct {
		name      string
		req       BookingCreateRequest
		wantError string
	}{
		{
			name: "package booking with package only",
			req:  BookingCreateRequest{BookingType: "PACKAGE", PackageID: &packageID},
		},
		{
			name: "custom booking with request only",
			req:  BookingCreateRequest{BookingType: "CUSTOM", CustomTourRequestID: &requestID},
		},
		{
			name:      "package booking with both references",
			req:       BookingCreateRequest{BookingType: "PACKAGE", PackageID: &packageID, CustomTourRequestID: &requestID},
			wantError: "A package booking must reference a package and nothing else",
		},
		{
			name:      "package booking with neither reference",
			req:       BookingCreateRequest{BookingType: "PACKAGE"},
			wantError: "A package booking must reference a package and nothing else",
		},
		{
			name:      "custom booking with both references",
			req:       BookingCreateRequest{BookingType: "CUSTOM", PackageID: &packageID, CustomTourRequestID: &requestID},
			wantError: "A custom booking must reference a custom tour request and nothing else",
		},
		{
			name:      "custom booking with neither reference",
			req:       BookingCreateRequest{BookingType: "CUSTOM"},
			wantError: "A custom booking must reference a custom tour request and nothing else",
		},
		{
			name:      "custom booking with package reference",
			req:       BookingCreateRequest{BookingType: "CUSTOM", PackageID: &packageID},
			wantError: "A custom booking must reference a custom tour request and nothing else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.ValidateReferences()
			if tt.wantError == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantError, err.Error())
			}
		})
	}
}

func TestBookingUpdateToPatch(t *testing.T) {
	phone := "+66812345678"
	amount := 18900.0
	req := BookingUpdateRequest{
		CustomerPhone: &phone,
		TotalAmount:   &amount,
	}

	patch := req.ToPatch()

	assert.Equal(t, map[string]interface{}{
		"customer_phone": "+66812345678",
		"total_amount":   18900.0,
	}, patch)
}

func TestBookingUpdateToPatchEmpty(t *testing.T) {
	assert.Empty(t, BookingUpdateRequest{}.ToPatch())
}

func TestBookingUpdateFromJSON(t *testing.T) {
	var req BookingUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"status":"CONFIRMED","notes":""}`), &req))

	patch := req.ToPatch()

	assert.Equal(t, "CONFIRMED", patch["status"])
	assert.Equal(t, "", patch["notes"])
	assert.NotContains(t, patch, "customer_name")
}
