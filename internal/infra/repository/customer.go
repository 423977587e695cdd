package repository

import (
	"context"
	"time"

	"repaircoin/internal/domain/noshow"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/pgconv"
	"repaircoin/internal/usecase/commands"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CustomerRepository struct {
	db *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{db: db}
}

const findCustomerSQL = `
SELECT address, shop_id, no_show_count, no_show_tier,
       booking_suspended_until, successful_appointments_since_tier3
FROM customers
WHERE address = $1`

func (r *CustomerRepository) Find(ctx context.Context, address string) (*noshow.CustomerRecord, error) {
	var (
		rec            noshow.CustomerRecord
		tierStr        string
		suspendedUntil pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findCustomerSQL, address).Scan(
		&rec.Address, &rec.ShopID, &rec.NoShowCount, &tierStr,
		&suspendedUntil, &rec.SuccessfulSinceTier3,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer", err)
	}

	rec.Tier = noshow.ParseTier(tierStr)
	rec.BookingSuspendedUntil = pgconv.TimePtrFromPgtype(suspendedUntil)
	return &rec, nil
}

const updateNoShowStateSQL = `
UPDATE customers
SET no_show_count = $2, no_show_tier = $3, booking_suspended_until = $4,
    updated_at = now()
WHERE address = $1`

// UpdateNoShowState writes the outcome of a forward transition (or a dispute
// rollback) onto the customers row.
func (r *CustomerRepository) UpdateNoShowState(ctx context.Context, address string, count int, t noshow.Tier, suspendedUntil *time.Time) error {
	tag, err := r.db.Exec(ctx, updateNoShowStateSQL,
		address, count, t.String(), pgconv.TimePtrToPgtype(suspendedUntil))
	if err != nil {
		return infra.WrapRepoErr("failed to update no-show state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("customer not found", nil, infra.KindNotFound)
	}
	return nil
}

// The reset rule runs as one statement so the counter increment and the
// demotion cannot be torn apart by a concurrent appointment. The subquery is
// scoped to the customer's own shop policy; the platform default applies when
// the shop never stored a row.
const recordSuccessfulAppointmentSQL = `
UPDATE customers c
SET successful_appointments_since_tier3 = CASE
        WHEN c.successful_appointments_since_tier3 + 1 >= COALESCE(
            (SELECT p.deposit_reset_after_successful
             FROM shop_no_show_policy p
             WHERE p.shop_id = c.shop_id), $2)
        THEN 0
        ELSE c.successful_appointments_since_tier3 + 1
    END,
    no_show_tier = CASE
        WHEN c.successful_appointments_since_tier3 + 1 >= COALESCE(
            (SELECT p.deposit_reset_after_successful
             FROM shop_no_show_policy p
             WHERE p.shop_id = c.shop_id), $2)
        THEN 'caution'
        ELSE c.no_show_tier
    END,
    updated_at = now()
WHERE c.address = $1 AND c.no_show_tier = 'deposit_required'
RETURNING c.no_show_tier, c.successful_appointments_since_tier3`

// RecordSuccessfulAppointment advances the deposit reset counter for a
// customer at deposit_required. Returns nil when the customer is not at
// deposit_required - callers decide whether that is an error.
func (r *CustomerRepository) RecordSuccessfulAppointment(ctx context.Context, address string, defaultReset int) (*commands.ResetOutcome, error) {
	var (
		tierStr string
		counter int
	)
	err := r.db.QueryRow(ctx, recordSuccessfulAppointmentSQL, address, defaultReset).Scan(&tierStr, &counter)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to record successful appointment", err)
	}
	return &commands.ResetOutcome{Tier: noshow.ParseTier(tierStr), SuccessfulSinceTier3: counter}, nil
}
