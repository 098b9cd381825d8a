package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
)

func pendingRequest() *customtourModel.CustomTourRequest {
	return &customtourModel.CustomTourRequest{Status: customtourModel.RequestStatusPending}
}

func TestApplyQuoteIssuanceFirstQuote(t *testing.T) {
	req := pendingRequest()
	patch := map[string]interface{}{"estimated_cost": 1500.0}
	stamp := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

	ApplyQuoteIssuance(req, patch, stamp)

	assert.Equal(t, customtourModel.RequestStatusQuoted, patch["status"])
	assert.Equal(t, stamp, patch["response_date"])
	assert.Equal(t, 1500.0, patch["estimated_cost"])
}

func TestApplyQuoteIssuanceNoCostInPatch(t *testing.T) {
	req := pendingRequest()
	patch := map[string]interface{}{"response_notes": "looking into it"}

	ApplyQuoteIssuance(req, patch, time.Now())

	_, hasStatus := patch["status"]
	_, hasDate := patch["response_date"]
	assert.False(t, hasStatus)
	assert.False(t, hasDate)
}

func TestApplyQuoteIssuanceRequoteIsInert(t *testing.T) {
	cost := 1200.0
	firstStamp := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	req := &customtourModel.CustomTourRequest{
		Status:        customtourModel.RequestStatusQuoted,
		EstimatedCost: &cost,
		ResponseDate:  &firstStamp,
	}
	patch := map[string]interface{}{"estimated_cost": 1800.0}

	ApplyQuoteIssuance(req, patch, time.Now())

	_, hasStatus := patch["status"]
	_, hasDate := patch["response_date"]
	assert.False(t, hasStatus, "re-quote must not touch status")
	assert.False(t, hasDate, "re-quote must not restamp the response date")
}

func TestApplyQuoteIssuanceExplicitValuesWin(t *testing.T) {
	explicitDate := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	req := pendingRequest()
	patch := map[string]interface{}{
		"estimated_cost": 2000.0,
		"response_date":  explicitDate,
		"status":         customtourModel.RequestStatusInProgress,
	}

	ApplyQuoteIssuance(req, patch, time.Now())

	assert.Equal(t, explicitDate, patch["response_date"])
	assert.Equal(t, customtourModel.RequestStatusInProgress, patch["status"])
}

// A first quote on a request past PENDING still stamps the response date but
// must not force a status change the transition table forbids.
func TestApplyQuoteIssuanceSkipsIllegalAutoStatus(t *testing.T) {
	req := &customtourModel.CustomTourRequest{Status: customtourModel.RequestStatusInProgress}
	patch := map[string]interface{}{"estimated_cost": 950.0}
	stamp := time.Now()

	ApplyQuoteIssuance(req, patch, stamp)

	_, hasStatus := patch["status"]
	assert.False(t, hasStatus)
	require.Contains(t, patch, "response_date")
	assert.Equal(t, stamp, patch["response_date"])
}

func TestApplyQuoteIssuanceNilCostIgnored(t *testing.T) {
	req := pendingRequest()
	patch := map[string]interface{}{"estimated_cost": nil}

	ApplyQuoteIssuance(req, patch, time.Now())

	_, hasStatus := patch["status"]
	assert.False(t, hasStatus)
}
