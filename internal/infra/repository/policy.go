package repository

import (
	"context"

	"repaircoin/internal/domain/noshow"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Field-to-column mapping is fixed in the SQL below; nothing is derived from
// struct field names at runtime.
type PolicyRepository struct {
	db *pgxpool.Pool
}

func NewPolicyRepository(db *pgxpool.Pool) *PolicyRepository {
	return &PolicyRepository{db: db}
}

const findPolicySQL = `
SELECT caution_threshold, deposit_threshold, suspension_threshold,
       caution_advance_booking_hours, deposit_advance_booking_hours,
       deposit_amount, redemption_cap_percent, suspension_days,
       grace_period_minutes, deposit_reset_after_successful,
       dispute_window_days, notify_on_warning, notify_on_caution,
       notify_on_deposit, notify_on_suspension
FROM shop_no_show_policy
WHERE shop_id = $1`

// Find returns the stored policy for a shop, or KindNotFound when the shop
// never customized one. Defaulting is the caller's concern so that absence
// and default cannot silently diverge.
func (r *PolicyRepository) Find(ctx context.Context, shopID string) (*noshow.Policy, error) {
	p := noshow.Policy{ShopID: shopID}
	var deposit pgtype.Numeric

	err := r.db.QueryRow(ctx, findPolicySQL, shopID).Scan(
		&p.CautionThreshold, &p.DepositThreshold, &p.SuspensionThreshold,
		&p.CautionAdvanceBookingHours, &p.DepositAdvanceBookingHours,
		&deposit, &p.RedemptionCapPercent, &p.SuspensionDays,
		&p.GracePeriodMinutes, &p.DepositResetAfterSuccessful,
		&p.DisputeWindowDays, &p.NotifyOnWarning, &p.NotifyOnCaution,
		&p.NotifyOnDeposit, &p.NotifyOnSuspension,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no-show policy not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find no-show policy", err)
	}

	p.DepositAmount, err = pgconv.DecimalFromNumeric(deposit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert deposit amount", err)
	}
	return &p, nil
}

const upsertPolicySQL = `
INSERT INTO shop_no_show_policy (
    shop_id, caution_threshold, deposit_threshold, suspension_threshold,
    caution_advance_booking_hours, deposit_advance_booking_hours,
    deposit_amount, redemption_cap_percent, suspension_days,
    grace_period_minutes, deposit_reset_after_successful, dispute_window_days,
    notify_on_warning, notify_on_caution, notify_on_deposit, notify_on_suspension
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
ON CONFLICT (shop_id) DO UPDATE SET
    caution_threshold = EXCLUDED.caution_threshold,
    deposit_threshold = EXCLUDED.deposit_threshold,
    suspension_threshold = EXCLUDED.suspension_threshold,
    caution_advance_booking_hours = EXCLUDED.caution_advance_booking_hours,
    deposit_advance_booking_hours = EXCLUDED.deposit_advance_booking_hours,
    deposit_amount = EXCLUDED.deposit_amount,
    redemption_cap_percent = EXCLUDED.redemption_cap_percent,
    suspension_days = EXCLUDED.suspension_days,
    grace_period_minutes = EXCLUDED.grace_period_minutes,
    deposit_reset_after_successful = EXCLUDED.deposit_reset_after_successful,
    dispute_window_days = EXCLUDED.dispute_window_days,
    notify_on_warning = EXCLUDED.notify_on_warning,
    notify_on_caution = EXCLUDED.notify_on_caution,
    notify_on_deposit = EXCLUDED.notify_on_deposit,
    notify_on_suspension = EXCLUDED.notify_on_suspension,
    updated_at = now()`

// Upsert stores a fully merged, validated policy. Partial merge semantics
// live in the domain; the write always carries every column.
func (r *PolicyRepository) Upsert(ctx context.Context, p noshow.Policy) error {
	_, err := r.db.Exec(ctx, upsertPolicySQL,
		p.ShopID, p.CautionThreshold, p.DepositThreshold, p.SuspensionThreshold,
		p.CautionAdvanceBookingHours, p.DepositAdvanceBookingHours,
		pgconv.DecimalToNumeric(p.DepositAmount), p.RedemptionCapPercent,
		p.SuspensionDays, p.GracePeriodMinutes, p.DepositResetAfterSuccessful,
		p.DisputeWindowDays, p.NotifyOnWarning, p.NotifyOnCaution,
		p.NotifyOnDeposit, p.NotifyOnSuspension,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert no-show policy", err)
	}
	return nil
}
