package lifecycle

import (
	"time"

	customtourModel "github.com/Tawan151766/solva-travel-sub001/models/customtour"
)

// ApplyQuoteIssuance implements the "quote issuance" rule: when a staff patch
// sets EstimatedCost on a request that never had one, the response date is
// stamped and the request advances to QUOTED, atomically with the cost write.
//
// The rule never overwrites values the caller supplied explicitly: a
// response_date already present in the patch is kept as-is, and an explicit
// status wins over the automatic QUOTED. The status side effect is also
// skipped when QUOTED is not reachable from the current status, so the rule
// cannot smuggle an illegal transition past the table. The response date is
// stamped in every first-cost case, keeping the invariant that ResponseDate
// is set if and only if EstimatedCost has been provided at least once.
//
// The patch is mutated in place; callers apply it in a single UPDATE.
func ApplyQuoteIssuance(req *customtourModel.CustomTourRequest, patch map[string]interface{}, now time.Time) {
	cost, ok := patch["estimated_cost"]
	if !ok || cost == nil {
		return
	}
	if req.EstimatedCost != nil {
		// Re-quoting: the response date was stamped on the first quote.
		return
	}

	if _, ok := patch["response_date"]; !ok {
		patch["response_date"] = now
	}

	if _, ok := patch["status"]; !ok {
		if CheckRequestTransition(req.Status, customtourModel.RequestStatusQuoted) == nil {
			patch["status"] = customtourModel.RequestStatusQuoted
		}
	}
}
