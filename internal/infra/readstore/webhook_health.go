package readstore

import (
	"context"
	"time"

	"repaircoin/internal/domain/webhook"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WebhookHealthReadStore struct {
	db *pgxpool.Pool
}

func NewWebhookHealthReadStore(db *pgxpool.Pool) *WebhookHealthReadStore {
	return &WebhookHealthReadStore{db: db}
}

const healthBySourceSQL = `
SELECT source,
       COUNT(*) AS total,
       COUNT(*) FILTER (WHERE status = 'success') AS succeeded,
       COUNT(*) FILTER (WHERE status = 'failed') AS failed,
       COALESCE(SUM(retry_count), 0) AS retries,
       COALESCE(AVG(processing_time_ms), 0) AS avg_processing_ms
FROM webhook_logs
WHERE created_at >= $1
GROUP BY source
ORDER BY source`

// HealthBySource aggregates delivery outcomes per webhook source since the
// given instant. Threshold evaluation happens in the domain.
func (r *WebhookHealthReadStore) HealthBySource(ctx context.Context, since time.Time) ([]webhook.SourceHealth, error) {
	rows, err := r.db.Query(ctx, healthBySourceSQL, pgconv.TimeToPgtype(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate webhook health", err)
	}
	defer rows.Close()

	var result []webhook.SourceHealth
	for rows.Next() {
		var (
			h      webhook.SourceHealth
			source string
			avgMs  pgtype.Numeric
		)
		if err := rows.Scan(&source, &h.Total, &h.Succeeded, &h.Failed, &h.Retries, &avgMs); err != nil {
			return nil, infra.WrapRepoErr("failed to scan webhook health row", err)
		}
		h.Source = webhook.Source(source)
		avg, err := pgconv.DecimalFromNumeric(avgMs)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert average processing time", err)
		}
		h.AvgProcessingMs, _ = avg.Float64()
		result = append(result, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate webhook health rows", err)
	}
	return result, nil
}
