package noshow

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDisputeWindowClosed = errors.New("dispute window closed")
	ErrAlreadyDisputed     = errors.New("entry already disputed")
	ErrDisputeNotPending   = errors.New("dispute is not pending")
)

type DisputeStatus string

const (
	DisputeNone     DisputeStatus = ""
	DisputePending  DisputeStatus = "pending"
	DisputeApproved DisputeStatus = "approved"
	DisputeRejected DisputeStatus = "rejected"
)

// HistoryEntry is the append-only audit row written each time a shop marks a
// booking as a no-show. Immutable once created except for the dispute fields.
type HistoryEntry struct {
	ID               uuid.UUID
	ShopID           string
	CustomerAddress  string
	BookingReference string
	MarkedAt         time.Time

	Disputed          bool
	DisputeStatus     DisputeStatus
	DisputeReason     *string
	DisputeOpenedAt   *time.Time
	DisputeResolvedAt *time.Time
}

// OpenDispute transitions unset -> pending, enforcing the policy's dispute
// window measured from the time the no-show was marked.
func (h *HistoryEntry) OpenDispute(reason string, windowDays int, now time.Time) error {
	if h.Disputed {
		return ErrAlreadyDisputed
	}
	deadline := h.MarkedAt.AddDate(0, 0, windowDays)
	if now.After(deadline) {
		return ErrDisputeWindowClosed
	}
	h.Disputed = true
	h.DisputeStatus = DisputePending
	h.DisputeReason = &reason
	h.DisputeOpenedAt = &now
	return nil
}

// ResolveDispute transitions pending -> approved|rejected.
func (h *HistoryEntry) ResolveDispute(approve bool, now time.Time) error {
	if h.DisputeStatus != DisputePending {
		return ErrDisputeNotPending
	}
	if approve {
		h.DisputeStatus = DisputeApproved
	} else {
		h.DisputeStatus = DisputeRejected
	}
	h.DisputeResolvedAt = &now
	return nil
}
