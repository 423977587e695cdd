package repository

import (
	"context"
	"time"

	"repaircoin/internal/domain/webhook"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WebhookLogRepository struct {
	db *pgxpool.Pool
}

func NewWebhookLogRepository(db *pgxpool.Pool) *WebhookLogRepository {
	return &WebhookLogRepository{db: db}
}

const insertWebhookLogSQL = `
INSERT INTO webhook_logs (
    id, webhook_id, event_type, source, status, payload, retry_count, created_at
) VALUES ($1, $2, $3, $4, $5, $6, 0, $7)`

func (r *WebhookLogRepository) Insert(ctx context.Context, l *webhook.Log) error {
	_, err := r.db.Exec(ctx, insertWebhookLogSQL,
		pgconv.UUIDToPgtype(l.ID), l.WebhookID, l.EventType,
		string(l.Source), string(l.Status), l.Payload,
		pgconv.TimeToPgtype(l.CreatedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert webhook log", err)
	}
	return nil
}

const findWebhookLogSQL = `
SELECT id, webhook_id, event_type, source, status, payload, retry_count,
       last_retry_at, processing_time_ms, error_message, created_at, processed_at
FROM webhook_logs
WHERE id = $1`

func (r *WebhookLogRepository) Find(ctx context.Context, id uuid.UUID) (*webhook.Log, error) {
	row := r.db.QueryRow(ctx, findWebhookLogSQL, pgconv.UUIDToPgtype(id))
	l, err := scanWebhookLog(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("webhook log not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find webhook log", err)
	}
	return l, nil
}

const updateWebhookLogSQL = `
UPDATE webhook_logs
SET status = $2, retry_count = $3, last_retry_at = $4,
    processing_time_ms = $5, error_message = $6, processed_at = $7
WHERE id = $1`

// Update persists a status transition together with its retry bookkeeping.
func (r *WebhookLogRepository) Update(ctx context.Context, l *webhook.Log) error {
	var processingMs pgtype.Int4
	if l.ProcessingTimeMs != nil {
		processingMs = pgtype.Int4{Int32: *l.ProcessingTimeMs, Valid: true}
	}

	tag, err := r.db.Exec(ctx, updateWebhookLogSQL,
		pgconv.UUIDToPgtype(l.ID), string(l.Status), l.RetryCount,
		pgconv.TimePtrToPgtype(l.LastRetryAt), processingMs,
		pgconv.StringPtrToPgtype(l.ErrorMessage),
		pgconv.TimePtrToPgtype(l.ProcessedAt),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update webhook log", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("webhook log not found", nil, infra.KindNotFound)
	}
	return nil
}

const listForRetrySQL = `
SELECT id, webhook_id, event_type, source, status, payload, retry_count,
       last_retry_at, processing_time_ms, error_message, created_at, processed_at
FROM webhook_logs
WHERE status = 'failed'
  AND retry_count < $1
  AND (last_retry_at IS NULL OR last_retry_at < $2)
ORDER BY created_at
LIMIT 100`

// ListForRetry selects failed deliveries with retry budget left whose last
// attempt is outside the cooldown window.
func (r *WebhookLogRepository) ListForRetry(ctx context.Context, now time.Time) ([]*webhook.Log, error) {
	cutoff := now.Add(-webhook.RetryCooldown)
	rows, err := r.db.Query(ctx, listForRetrySQL, webhook.MaxRetryAttempts, pgconv.TimeToPgtype(cutoff))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list webhooks for retry", err)
	}
	defer rows.Close()

	var logs []*webhook.Log
	for rows.Next() {
		l, err := scanWebhookLog(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan webhook log row", err)
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate webhook log rows", err)
	}
	return logs, nil
}

func scanWebhookLog(row pgx.Row) (*webhook.Log, error) {
	var (
		l            webhook.Log
		id           pgtype.UUID
		source       string
		status       string
		lastRetryAt  pgtype.Timestamptz
		processingMs pgtype.Int4
		errMsg       pgtype.Text
		createdAt    pgtype.Timestamptz
		processedAt  pgtype.Timestamptz
	)
	err := row.Scan(&id, &l.WebhookID, &l.EventType, &source, &status,
		&l.Payload, &l.RetryCount, &lastRetryAt, &processingMs, &errMsg,
		&createdAt, &processedAt)
	if err != nil {
		return nil, err
	}

	l.ID = uuid.UUID(id.Bytes)
	l.Source = webhook.Source(source)
	l.Status = webhook.Status(status)
	l.LastRetryAt = pgconv.TimePtrFromPgtype(lastRetryAt)
	l.ProcessingTimeMs = pgconv.Int32PtrFromPgtype(processingMs)
	l.ErrorMessage = pgconv.StringPtrFromPgtype(errMsg)
	l.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	l.ProcessedAt = pgconv.TimePtrFromPgtype(processedAt)
	return &l, nil
}
