package noshow

import (
	"fmt"
	"time"
)

// Tier is the customer-side no-show ladder. It only moves forward on recorded
// no-shows; the single backward step is the deposit reset rule.
type Tier string

const (
	TierNormal          Tier = "normal"
	TierWarning         Tier = "warning"
	TierCaution         Tier = "caution"
	TierDepositRequired Tier = "deposit_required"
	TierSuspended       Tier = "suspended"
)

var noShowTierRank = map[Tier]int{
	TierNormal:          0,
	TierWarning:         1,
	TierCaution:         2,
	TierDepositRequired: 3,
	TierSuspended:       4,
}

func (t Tier) Rank() int {
	return noShowTierRank[t]
}

func (t Tier) String() string {
	return string(t)
}

// ParseTier defaults unknown stored values to normal.
func ParseTier(s string) Tier {
	t := Tier(s)
	if _, ok := noShowTierRank[t]; !ok {
		return TierNormal
	}
	return t
}

// TierForCount maps a no-show count onto the ladder under a shop's policy.
func TierForCount(count int, p Policy) Tier {
	switch {
	case count >= p.SuspensionThreshold:
		return TierSuspended
	case count >= p.DepositThreshold:
		return TierDepositRequired
	case count >= p.CautionThreshold:
		return TierCaution
	case count >= 1:
		return TierWarning
	default:
		return TierNormal
	}
}

// CustomerRecord is the snapshot of a customers row consulted by the
// evaluator. It is never mutated here.
type CustomerRecord struct {
	Address               string
	ShopID                string
	NoShowCount           int
	Tier                  Tier
	BookingSuspendedUntil *time.Time
	SuccessfulSinceTier3  int
}

// BookingStatus is the derived per-request view of what a customer may do.
type BookingStatus struct {
	Tier                 Tier
	NoShowCount          int
	CanBook              bool
	RequiresDeposit      bool
	DepositAmount        string
	RedemptionCapPercent int
	MinimumAdvanceHours  int
	SuspendedUntil       *time.Time
	Restrictions         []string
}

// EvaluateStatus combines a customer record with the applicable policy.
// The suspension window is the only hard booking gate; every other tier
// permits booking under restriction. An expired suspension re-enables
// booking without retreating the tier - only reset events move it back.
func EvaluateStatus(rec CustomerRecord, p Policy, now time.Time) BookingStatus {
	status := BookingStatus{
		Tier:        rec.Tier,
		NoShowCount: rec.NoShowCount,
		CanBook:     true,
	}

	suspended := rec.BookingSuspendedUntil != nil && rec.BookingSuspendedUntil.After(now)
	if suspended {
		status.CanBook = false
		status.SuspendedUntil = rec.BookingSuspendedUntil
		status.Restrictions = append(status.Restrictions,
			fmt.Sprintf("Booking suspended until %s", rec.BookingSuspendedUntil.Format("2006-01-02")))
		return status
	}

	switch rec.Tier {
	case TierCaution:
		status.MinimumAdvanceHours = p.CautionAdvanceBookingHours
		status.Restrictions = append(status.Restrictions,
			fmt.Sprintf("Bookings must be made at least %d hours in advance", p.CautionAdvanceBookingHours))
	case TierDepositRequired, TierSuspended:
		// A suspended customer whose window has lapsed books again under the
		// heaviest restrictions until a reset event demotes them.
		status.MinimumAdvanceHours = p.DepositAdvanceBookingHours
		status.RequiresDeposit = true
		status.DepositAmount = p.DepositAmount.StringFixed(2)
		status.RedemptionCapPercent = p.RedemptionCapPercent
		status.Restrictions = append(status.Restrictions,
			fmt.Sprintf("Bookings must be made at least %d hours in advance", p.DepositAdvanceBookingHours),
			fmt.Sprintf("A $%s deposit is required to book", p.DepositAmount.StringFixed(2)),
			fmt.Sprintf("RCN redemption capped at %d%% per repair", p.RedemptionCapPercent))
	}

	return status
}

// AdvanceOnNoShow returns the customer's tier after one more recorded no-show
// and, when the suspension threshold is crossed, the end of the suspension
// window.
func AdvanceOnNoShow(rec CustomerRecord, p Policy, now time.Time) (newCount int, newTier Tier, suspendedUntil *time.Time) {
	newCount = rec.NoShowCount + 1
	newTier = TierForCount(newCount, p)
	if newTier == TierSuspended && rec.Tier != TierSuspended {
		until := now.AddDate(0, 0, p.SuspensionDays)
		suspendedUntil = &until
	} else {
		suspendedUntil = rec.BookingSuspendedUntil
	}
	return newCount, newTier, suspendedUntil
}
