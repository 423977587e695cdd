package repository

import (
	"context"

	"repaircoin/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

// MaintenanceRepository fronts the bulk housekeeping stored procedures. Each
// call is an opaque atomic operation returning a row count.
type MaintenanceRepository struct {
	db *pgxpool.Pool
}

func NewMaintenanceRepository(db *pgxpool.Pool) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

const cleanupWebhookLogsSQL = `SELECT cleanup_webhook_logs($1)`

// CleanupWebhookLogs deletes webhook logs older than the retention window.
func (r *MaintenanceRepository) CleanupWebhookLogs(ctx context.Context, retentionDays int) (int64, error) {
	var deleted int64
	if err := r.db.QueryRow(ctx, cleanupWebhookLogsSQL, retentionDays).Scan(&deleted); err != nil {
		return 0, infra.WrapRepoErr("failed to clean up webhook logs", err)
	}
	return deleted, nil
}

const archiveTransactionsSQL = `SELECT archive_old_transactions($1)`

// ArchiveTransactions moves transactions older than the archive window into
// archived_transactions.
func (r *MaintenanceRepository) ArchiveTransactions(ctx context.Context, olderThanDays int) (int64, error) {
	var archived int64
	if err := r.db.QueryRow(ctx, archiveTransactionsSQL, olderThanDays).Scan(&archived); err != nil {
		return 0, infra.WrapRepoErr("failed to archive transactions", err)
	}
	return archived, nil
}
