package customtour

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToPatchOnlyPresentFields(t *testing.T) {
	destination := "Chiang Rai"
	people := 4
	req := CustomTourUpdateRequest{
		Destination:    &destination,
		NumberOfPeople: &people,
	}

	patch := req.ToPatch()

	assert.Equal(t, map[string]interface{}{
		"destination":      "Chiang Rai",
		"number_of_people": 4,
	}, patch)
}

func TestToPatchEmptyBody(t *testing.T) {
	patch := CustomTourUpdateRequest{}.ToPatch()
	assert.Empty(t, patch)
}

// A JSON body carrying an explicit empty string is a real write, distinct
// from omitting the field.
func TestToPatchExplicitZeroValues(t *testing.T) {
	var req CustomTourUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"response_notes":"","budget":0}`), &req))

	patch := req.ToPatch()

	assert.Equal(t, "", patch["response_notes"])
	assert.Equal(t, 0.0, patch["budget"])
	assert.NotContains(t, patch, "destination")
}

func TestToPatchStaffFields(t *testing.T) {
	var req CustomTourUpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"estimated_cost":1500,"status":"QUOTED","assigned_staff_id":3}`), &req))

	patch := req.ToPatch()

	assert.Equal(t, 1500.0, patch["estimated_cost"])
	assert.Equal(t, "QUOTED", patch["status"])
	assert.Equal(t, uint(3), patch["assigned_staff_id"])
}
