package noshow

import (
	"errors"
	"fmt"

	"repaircoin/internal/pkg/patch"

	"github.com/shopspring/decimal"
)

var ErrInvalidPolicy = errors.New("invalid no-show policy")

// FieldError names the first offending field of a rejected policy update.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid no-show policy: %s %s", e.Field, e.Reason)
}

func (e *FieldError) Is(target error) bool {
	return target == ErrInvalidPolicy
}

// Documented field ranges. Updates outside these bounds are rejected, never
// clamped silently.
const (
	MaxGracePeriodMinutes  = 120
	MaxDepositAmount       = 500
	MaxAdvanceBookingHours = 168
	MinSuspensionDays      = 1
	MaxSuspensionDays      = 90
	MinDepositReset        = 1
	MaxDepositReset        = 20
	MinDisputeWindowDays   = 1
	MaxDisputeWindowDays   = 30
)

// Policy holds a shop's no-show thresholds and booking restrictions. A shop
// without a stored row uses Default; absence and default must never diverge.
type Policy struct {
	ShopID string

	CautionThreshold    int
	DepositThreshold    int
	SuspensionThreshold int

	CautionAdvanceBookingHours int
	DepositAdvanceBookingHours int

	DepositAmount        decimal.Decimal
	RedemptionCapPercent int
	SuspensionDays       int
	GracePeriodMinutes   int

	DepositResetAfterSuccessful int
	DisputeWindowDays           int

	NotifyOnWarning    bool
	NotifyOnCaution    bool
	NotifyOnDeposit    bool
	NotifyOnSuspension bool
}

// Default is the platform-wide policy used when a shop has not customized
// its own.
func Default(shopID string) Policy {
	return Policy{
		ShopID:                      shopID,
		CautionThreshold:            2,
		DepositThreshold:            4,
		SuspensionThreshold:         6,
		CautionAdvanceBookingHours:  24,
		DepositAdvanceBookingHours:  48,
		DepositAmount:               decimal.NewFromInt(20),
		RedemptionCapPercent:        50,
		SuspensionDays:              30,
		GracePeriodMinutes:          15,
		DepositResetAfterSuccessful: 3,
		DisputeWindowDays:           7,
		NotifyOnWarning:             true,
		NotifyOnCaution:             true,
		NotifyOnDeposit:             true,
		NotifyOnSuspension:          true,
	}
}

// Patch carries a partial policy update. Nil fields are left untouched.
// ShopID is deliberately absent: it is immutable post-creation and stripped
// from inbound updates before they reach here.
type Patch struct {
	CautionThreshold    *int
	DepositThreshold    *int
	SuspensionThreshold *int

	CautionAdvanceBookingHours *int
	DepositAdvanceBookingHours *int

	DepositAmount        *decimal.Decimal
	RedemptionCapPercent *int
	SuspensionDays       *int
	GracePeriodMinutes   *int

	DepositResetAfterSuccessful *int
	DisputeWindowDays           *int

	NotifyOnWarning    *bool
	NotifyOnCaution    *bool
	NotifyOnDeposit    *bool
	NotifyOnSuspension *bool
}

// Apply merges the patch over the receiver and returns the result. The merged
// policy still needs Validate before it may be written.
func (p Policy) Apply(delta Patch) Policy {
	merged := p
	merged.CautionThreshold = patch.Coalesce(delta.CautionThreshold, p.CautionThreshold)
	merged.DepositThreshold = patch.Coalesce(delta.DepositThreshold, p.DepositThreshold)
	merged.SuspensionThreshold = patch.Coalesce(delta.SuspensionThreshold, p.SuspensionThreshold)
	merged.CautionAdvanceBookingHours = patch.Coalesce(delta.CautionAdvanceBookingHours, p.CautionAdvanceBookingHours)
	merged.DepositAdvanceBookingHours = patch.Coalesce(delta.DepositAdvanceBookingHours, p.DepositAdvanceBookingHours)
	merged.DepositAmount = patch.Coalesce(delta.DepositAmount, p.DepositAmount)
	merged.RedemptionCapPercent = patch.Coalesce(delta.RedemptionCapPercent, p.RedemptionCapPercent)
	merged.SuspensionDays = patch.Coalesce(delta.SuspensionDays, p.SuspensionDays)
	merged.GracePeriodMinutes = patch.Coalesce(delta.GracePeriodMinutes, p.GracePeriodMinutes)
	merged.DepositResetAfterSuccessful = patch.Coalesce(delta.DepositResetAfterSuccessful, p.DepositResetAfterSuccessful)
	merged.DisputeWindowDays = patch.Coalesce(delta.DisputeWindowDays, p.DisputeWindowDays)
	merged.NotifyOnWarning = patch.Coalesce(delta.NotifyOnWarning, p.NotifyOnWarning)
	merged.NotifyOnCaution = patch.Coalesce(delta.NotifyOnCaution, p.NotifyOnCaution)
	merged.NotifyOnDeposit = patch.Coalesce(delta.NotifyOnDeposit, p.NotifyOnDeposit)
	merged.NotifyOnSuspension = patch.Coalesce(delta.NotifyOnSuspension, p.NotifyOnSuspension)
	return merged
}

// Validate checks every field against its documented range and the strict
// threshold ordering. The first violation is returned; nothing is written on
// failure.
func (p Policy) Validate() error {
	if p.CautionThreshold < 1 {
		return &FieldError{Field: "cautionThreshold", Reason: "must be at least 1"}
	}
	if p.DepositThreshold <= p.CautionThreshold {
		return &FieldError{Field: "depositThreshold", Reason: "must be greater than cautionThreshold"}
	}
	if p.SuspensionThreshold <= p.DepositThreshold {
		return &FieldError{Field: "suspensionThreshold", Reason: "must be greater than depositThreshold"}
	}
	if p.CautionAdvanceBookingHours < 0 || p.CautionAdvanceBookingHours > MaxAdvanceBookingHours {
		return &FieldError{Field: "cautionAdvanceBookingHours", Reason: fmt.Sprintf("must be between 0 and %d", MaxAdvanceBookingHours)}
	}
	if p.DepositAdvanceBookingHours < 0 || p.DepositAdvanceBookingHours > MaxAdvanceBookingHours {
		return &FieldError{Field: "depositAdvanceBookingHours", Reason: fmt.Sprintf("must be between 0 and %d", MaxAdvanceBookingHours)}
	}
	if p.DepositAmount.IsNegative() || p.DepositAmount.GreaterThan(decimal.NewFromInt(MaxDepositAmount)) {
		return &FieldError{Field: "depositAmount", Reason: fmt.Sprintf("must be between 0 and %d", MaxDepositAmount)}
	}
	if p.RedemptionCapPercent < 0 || p.RedemptionCapPercent > 100 {
		return &FieldError{Field: "redemptionCapPercent", Reason: "must be between 0 and 100"}
	}
	if p.SuspensionDays < MinSuspensionDays || p.SuspensionDays > MaxSuspensionDays {
		return &FieldError{Field: "suspensionDays", Reason: fmt.Sprintf("must be between %d and %d", MinSuspensionDays, MaxSuspensionDays)}
	}
	if p.GracePeriodMinutes < 0 || p.GracePeriodMinutes > MaxGracePeriodMinutes {
		return &FieldError{Field: "gracePeriodMinutes", Reason: fmt.Sprintf("must be between 0 and %d", MaxGracePeriodMinutes)}
	}
	if p.DepositResetAfterSuccessful < MinDepositReset || p.DepositResetAfterSuccessful > MaxDepositReset {
		return &FieldError{Field: "depositResetAfterSuccessful", Reason: fmt.Sprintf("must be between %d and %d", MinDepositReset, MaxDepositReset)}
	}
	if p.DisputeWindowDays < MinDisputeWindowDays || p.DisputeWindowDays > MaxDisputeWindowDays {
		return &FieldError{Field: "disputeWindowDays", Reason: fmt.Sprintf("must be between %d and %d", MinDisputeWindowDays, MaxDisputeWindowDays)}
	}
	return nil
}
