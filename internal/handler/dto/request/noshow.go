package request

import "strings"

type RecordNoShowRequest struct {
	CustomerAddress  string `json:"customerAddress" binding:"required"`
	BookingReference string `json:"bookingReference,omitempty"`
}

type OpenDisputeRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (r OpenDisputeRequest) TrimmedReason() string {
	return strings.TrimSpace(r.Reason)
}

type ResolveDisputeRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}
