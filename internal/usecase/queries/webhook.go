package queries

import (
	"context"
	"time"

	"repaircoin/internal/domain/webhook"
	"repaircoin/internal/pkg/clock"
	"repaircoin/internal/pkg/errs"
)

// healthWindow bounds the aggregation to recent deliveries so stale history
// cannot mask a current outage.
const healthWindow = 24 * time.Hour

type SourceHealthView struct {
	Source          webhook.Source
	Total           int
	Succeeded       int
	Failed          int
	Retries         int
	SuccessRate     float64
	AvgProcessingMs float64
	Issues          []string
}

type WebhookHealthView struct {
	Healthy bool
	Window  time.Duration
	Sources []SourceHealthView
}

type WebhookHealthReadStore interface {
	HealthBySource(ctx context.Context, since time.Time) ([]webhook.SourceHealth, error)
}

type WebhookQueries interface {
	GetHealth(ctx context.Context) (*WebhookHealthView, error)
}

type webhookQueriesImpl struct {
	store WebhookHealthReadStore
	clock clock.Clock
}

func NewWebhookQueries(store WebhookHealthReadStore, clk clock.Clock) WebhookQueries {
	return &webhookQueriesImpl{store: store, clock: clk}
}

func (q *webhookQueriesImpl) GetHealth(ctx context.Context) (*WebhookHealthView, error) {
	since := q.clock.Now().Add(-healthWindow)
	aggregates, err := q.store.HealthBySource(ctx, since)
	if err != nil {
		return nil, errs.Wrap(err, "failed to aggregate webhook health")
	}

	view := &WebhookHealthView{Healthy: true, Window: healthWindow}
	for _, h := range aggregates {
		issues := h.Issues()
		if len(issues) > 0 {
			view.Healthy = false
		}
		view.Sources = append(view.Sources, SourceHealthView{
			Source:          h.Source,
			Total:           h.Total,
			Succeeded:       h.Succeeded,
			Failed:          h.Failed,
			Retries:         h.Retries,
			SuccessRate:     h.SuccessRate(),
			AvgProcessingMs: h.AvgProcessingMs,
			Issues:          issues,
		})
	}
	return view, nil
}
