package request

// UpdateNoShowPolicyRequest is a partial update: absent fields keep their
// current (or default) values. Range checks live in the domain layer so the
// same rules apply to every write path.
type UpdateNoShowPolicyRequest struct {
	CautionThreshold    *int `json:"cautionThreshold,omitempty"`
	DepositThreshold    *int `json:"depositThreshold,omitempty"`
	SuspensionThreshold *int `json:"suspensionThreshold,omitempty"`

	CautionAdvanceBookingHours *int `json:"cautionAdvanceBookingHours,omitempty"`
	DepositAdvanceBookingHours *int `json:"depositAdvanceBookingHours,omitempty"`

	DepositAmount        *float64 `json:"depositAmount,omitempty"`
	RedemptionCapPercent *int     `json:"redemptionCapPercent,omitempty"`
	SuspensionDays       *int     `json:"suspensionDays,omitempty"`
	GracePeriodMinutes   *int     `json:"gracePeriodMinutes,omitempty"`

	DepositResetAfterSuccessful *int `json:"depositResetAfterSuccessful,omitempty"`
	DisputeWindowDays           *int `json:"disputeWindowDays,omitempty"`

	NotifyOnWarning    *bool `json:"notifyOnWarning,omitempty"`
	NotifyOnCaution    *bool `json:"notifyOnCaution,omitempty"`
	NotifyOnDeposit    *bool `json:"notifyOnDeposit,omitempty"`
	NotifyOnSuspension *bool `json:"notifyOnSuspension,omitempty"`
}
