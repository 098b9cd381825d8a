package customtour

// RequestStatus is the lifecycle state of a custom tour request.
type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "PENDING"
	RequestStatusQuoted     RequestStatus = "QUOTED"
	RequestStatusConfirmed  RequestStatus = "CONFIRMED"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusCompleted  RequestStatus = "COMPLETED"
	RequestStatusCancelled  RequestStatus = "CANCELLED"
)

// Helper methods for RequestStatus
func (rs RequestStatus) String() string {
	return string(rs)
}

func (rs RequestStatus) IsValid() bool {
	switch rs {
	case RequestStatusPending, RequestStatusQuoted, RequestStatusConfirmed,
		RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the status has no outbound transitions
func (rs RequestStatus) IsTerminal() bool {
	return rs == RequestStatusCompleted || rs == RequestStatusCancelled
}

// GetAllRequestStatuses returns all valid request statuses
func GetAllRequestStatuses() []RequestStatus {
	return []RequestStatus{
		RequestStatusPending,
		RequestStatusQuoted,
		RequestStatusConfirmed,
		RequestStatusInProgress,
		RequestStatusCompleted,
		RequestStatusCancelled,
	}
}
