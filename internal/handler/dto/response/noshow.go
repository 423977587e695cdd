package response

import (
	"time"

	"repaircoin/internal/domain/noshow"
	"repaircoin/internal/usecase/commands"
	"repaircoin/internal/usecase/queries"

	"github.com/google/uuid"
)

type CustomerStatusResponse struct {
	Address              string     `json:"address"`
	ShopID               string     `json:"shopId"`
	Tier                 string     `json:"tier"`
	NoShowCount          int        `json:"noShowCount"`
	CanBook              bool       `json:"canBook"`
	RequiresDeposit      bool       `json:"requiresDeposit"`
	DepositAmount        string     `json:"depositAmount,omitempty"`
	RedemptionCapPercent int        `json:"redemptionCapPercent,omitempty"`
	MinimumAdvanceHours  int        `json:"minimumAdvanceHours,omitempty"`
	SuspendedUntil       *time.Time `json:"suspendedUntil,omitempty"`
	Restrictions         []string   `json:"restrictions,omitempty"`
}

type PolicyResponse struct {
	ShopID string `json:"shopId"`

	CautionThreshold    int `json:"cautionThreshold"`
	DepositThreshold    int `json:"depositThreshold"`
	SuspensionThreshold int `json:"suspensionThreshold"`

	CautionAdvanceBookingHours int `json:"cautionAdvanceBookingHours"`
	DepositAdvanceBookingHours int `json:"depositAdvanceBookingHours"`

	DepositAmount        string `json:"depositAmount"`
	RedemptionCapPercent int    `json:"redemptionCapPercent"`
	SuspensionDays       int    `json:"suspensionDays"`
	GracePeriodMinutes   int    `json:"gracePeriodMinutes"`

	DepositResetAfterSuccessful int `json:"depositResetAfterSuccessful"`
	DisputeWindowDays           int `json:"disputeWindowDays"`

	NotifyOnWarning    bool `json:"notifyOnWarning"`
	NotifyOnCaution    bool `json:"notifyOnCaution"`
	NotifyOnDeposit    bool `json:"notifyOnDeposit"`
	NotifyOnSuspension bool `json:"notifyOnSuspension"`
}

type HistoryEntryResponse struct {
	ID                uuid.UUID  `json:"id"`
	ShopID            string     `json:"shopId"`
	CustomerAddress   string     `json:"customerAddress"`
	BookingReference  string     `json:"bookingReference,omitempty"`
	MarkedAt          time.Time  `json:"markedAt"`
	Disputed          bool       `json:"disputed"`
	DisputeStatus     string     `json:"disputeStatus,omitempty"`
	DisputeReason     *string    `json:"disputeReason,omitempty"`
	DisputeOpenedAt   *time.Time `json:"disputeOpenedAt,omitempty"`
	DisputeResolvedAt *time.Time `json:"disputeResolvedAt,omitempty"`
}

type RecordNoShowResponse struct {
	Entry          *HistoryEntryResponse `json:"entry"`
	NoShowCount    int                   `json:"noShowCount"`
	Tier           string                `json:"tier"`
	SuspendedUntil *time.Time            `json:"suspendedUntil,omitempty"`
}

type AppointmentResponse struct {
	Tier                 string `json:"tier"`
	SuccessfulSinceTier3 int    `json:"successfulSinceTier3"`
	DemotedToCaution     bool   `json:"demotedToCaution"`
}

func FromCustomerStatusView(v *queries.CustomerStatusView) *CustomerStatusResponse {
	return &CustomerStatusResponse{
		Address:              v.Address,
		ShopID:               v.ShopID,
		Tier:                 v.Tier.String(),
		NoShowCount:          v.NoShowCount,
		CanBook:              v.CanBook,
		RequiresDeposit:      v.RequiresDeposit,
		DepositAmount:        v.DepositAmount,
		RedemptionCapPercent: v.RedemptionCapPercent,
		MinimumAdvanceHours:  v.MinimumAdvanceHours,
		SuspendedUntil:       v.SuspendedUntil,
		Restrictions:         v.Restrictions,
	}
}

func FromPolicy(p noshow.Policy) *PolicyResponse {
	return &PolicyResponse{
		ShopID:                      p.ShopID,
		CautionThreshold:            p.CautionThreshold,
		DepositThreshold:            p.DepositThreshold,
		SuspensionThreshold:         p.SuspensionThreshold,
		CautionAdvanceBookingHours:  p.CautionAdvanceBookingHours,
		DepositAdvanceBookingHours:  p.DepositAdvanceBookingHours,
		DepositAmount:               p.DepositAmount.StringFixed(2),
		RedemptionCapPercent:        p.RedemptionCapPercent,
		SuspensionDays:              p.SuspensionDays,
		GracePeriodMinutes:          p.GracePeriodMinutes,
		DepositResetAfterSuccessful: p.DepositResetAfterSuccessful,
		DisputeWindowDays:           p.DisputeWindowDays,
		NotifyOnWarning:             p.NotifyOnWarning,
		NotifyOnCaution:             p.NotifyOnCaution,
		NotifyOnDeposit:             p.NotifyOnDeposit,
		NotifyOnSuspension:          p.NotifyOnSuspension,
	}
}

func FromHistoryEntry(e *noshow.HistoryEntry) *HistoryEntryResponse {
	return &HistoryEntryResponse{
		ID:                e.ID,
		ShopID:            e.ShopID,
		CustomerAddress:   e.CustomerAddress,
		BookingReference:  e.BookingReference,
		MarkedAt:          e.MarkedAt,
		Disputed:          e.Disputed,
		DisputeStatus:     string(e.DisputeStatus),
		DisputeReason:     e.DisputeReason,
		DisputeOpenedAt:   e.DisputeOpenedAt,
		DisputeResolvedAt: e.DisputeResolvedAt,
	}
}

func FromRecordNoShowResult(r *commands.RecordNoShowResult) *RecordNoShowResponse {
	return &RecordNoShowResponse{
		Entry:          FromHistoryEntry(r.Entry),
		NoShowCount:    r.NoShowCount,
		Tier:           r.Tier.String(),
		SuspendedUntil: r.SuspendedUntil,
	}
}

func FromAppointmentResult(r *commands.AppointmentResult) *AppointmentResponse {
	return &AppointmentResponse{
		Tier:                 r.Tier.String(),
		SuccessfulSinceTier3: r.SuccessfulSinceTier3,
		DemotedToCaution:     r.DemotedToCaution,
	}
}
