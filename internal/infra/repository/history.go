package repository

import (
	"context"

	"repaircoin/internal/domain/noshow"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HistoryRepository struct {
	db *pgxpool.Pool
}

func NewHistoryRepository(db *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{db: db}
}

const insertHistorySQL = `
INSERT INTO no_show_history (
    id, shop_id, customer_address, booking_reference, marked_at,
    disputed, dispute_status
) VALUES ($1, $2, $3, $4, $5, false, '')`

func (r *HistoryRepository) Insert(ctx context.Context, e *noshow.HistoryEntry) error {
	_, err := r.db.Exec(ctx, insertHistorySQL,
		pgconv.UUIDToPgtype(e.ID), e.ShopID, e.CustomerAddress,
		e.BookingReference, pgconv.TimeToPgtype(e.MarkedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert no-show history", err)
	}
	return nil
}

const findHistorySQL = `
SELECT id, shop_id, customer_address, booking_reference, marked_at,
       disputed, dispute_status, dispute_reason, dispute_opened_at,
       dispute_resolved_at
FROM no_show_history
WHERE id = $1`

func (r *HistoryRepository) Find(ctx context.Context, id uuid.UUID) (*noshow.HistoryEntry, error) {
	row := r.db.QueryRow(ctx, findHistorySQL, pgconv.UUIDToPgtype(id))
	entry, err := scanHistoryEntry(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no-show history entry not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find no-show history entry", err)
	}
	return entry, nil
}

const listHistoryByCustomerSQL = `
SELECT id, shop_id, customer_address, booking_reference, marked_at,
       disputed, dispute_status, dispute_reason, dispute_opened_at,
       dispute_resolved_at
FROM no_show_history
WHERE customer_address = $1
ORDER BY marked_at DESC
LIMIT $2`

func (r *HistoryRepository) ListByCustomer(ctx context.Context, address string, limit int32) ([]*noshow.HistoryEntry, error) {
	rows, err := r.db.Query(ctx, listHistoryByCustomerSQL, address, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list no-show history", err)
	}
	defer rows.Close()

	var entries []*noshow.HistoryEntry
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan no-show history row", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate no-show history rows", err)
	}
	return entries, nil
}

const updateDisputeSQL = `
UPDATE no_show_history
SET disputed = $2, dispute_status = $3, dispute_reason = $4,
    dispute_opened_at = $5, dispute_resolved_at = $6
WHERE id = $1`

// UpdateDispute persists only the dispute fields; the audit core of the row
// stays immutable.
func (r *HistoryRepository) UpdateDispute(ctx context.Context, e *noshow.HistoryEntry) error {
	tag, err := r.db.Exec(ctx, updateDisputeSQL,
		pgconv.UUIDToPgtype(e.ID), e.Disputed, string(e.DisputeStatus),
		pgconv.StringPtrToPgtype(e.DisputeReason),
		pgconv.TimePtrToPgtype(e.DisputeOpenedAt),
		pgconv.TimePtrToPgtype(e.DisputeResolvedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update dispute", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("no-show history entry not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanHistoryEntry(row pgx.Row) (*noshow.HistoryEntry, error) {
	var (
		e             noshow.HistoryEntry
		id            pgtype.UUID
		markedAt      pgtype.Timestamptz
		disputeStatus string
		reason        pgtype.Text
		openedAt      pgtype.Timestamptz
		resolvedAt    pgtype.Timestamptz
	)
	err := row.Scan(&id, &e.ShopID, &e.CustomerAddress, &e.BookingReference,
		&markedAt, &e.Disputed, &disputeStatus, &reason, &openedAt, &resolvedAt)
	if err != nil {
		return nil, err
	}

	e.ID = uuid.UUID(id.Bytes)
	e.MarkedAt = pgconv.TimeFromPgtype(markedAt)
	e.DisputeStatus = noshow.DisputeStatus(disputeStatus)
	e.DisputeReason = pgconv.StringPtrFromPgtype(reason)
	e.DisputeOpenedAt = pgconv.TimePtrFromPgtype(openedAt)
	e.DisputeResolvedAt = pgconv.TimePtrFromPgtype(resolvedAt)
	return &e, nil
}
