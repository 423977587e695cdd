package commands

import (
	"context"
	"log/slog"
	"time"

	"repaircoin/internal/domain/webhook"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/clock"
	"repaircoin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrWebhookLogNotFound = errs.New("webhook log not found")
	ErrRetryExhausted     = errs.New("webhook retry attempts exhausted")
)

type WebhookLogRepository interface {
	Insert(ctx context.Context, l *webhook.Log) error
	Find(ctx context.Context, id uuid.UUID) (*webhook.Log, error)
	Update(ctx context.Context, l *webhook.Log) error
	ListForRetry(ctx context.Context, now time.Time) ([]*webhook.Log, error)
}

// WebhookEvent is the inbound delivery before it is logged.
type WebhookEvent struct {
	WebhookID string
	EventType string
	Source    webhook.Source
	Payload   []byte
}

// WebhookHandler performs the business processing for a delivery. A nil
// return marks the log success; an error marks it failed and the stored
// message decides retry eligibility.
type WebhookHandler func(ctx context.Context, l *webhook.Log) error

type WebhookCommands interface {
	LogIncoming(ctx context.Context, ev WebhookEvent) (*webhook.Log, error)
	ProcessWithLogging(ctx context.Context, id uuid.UUID, handler WebhookHandler) (*webhook.Log, error)
	MarkForRetry(ctx context.Context, id uuid.UUID) (*webhook.Log, error)
	WebhooksForRetry(ctx context.Context) ([]*webhook.Log, error)
}

type webhookUseCaseImpl struct {
	logs   WebhookLogRepository
	clock  clock.Clock
	logger *slog.Logger
}

func NewWebhookUseCase(logs WebhookLogRepository, clk clock.Clock, logger *slog.Logger) WebhookCommands {
	return &webhookUseCaseImpl{logs: logs, clock: clk, logger: logger}
}

// LogIncoming records a delivery in pending state before any processing runs,
// so a crash mid-handler still leaves an audit row.
func (u *webhookUseCaseImpl) LogIncoming(ctx context.Context, ev WebhookEvent) (*webhook.Log, error) {
	l := &webhook.Log{
		ID:        uuid.New(),
		WebhookID: ev.WebhookID,
		EventType: ev.EventType,
		Source:    ev.Source,
		Status:    webhook.StatusPending,
		Payload:   ev.Payload,
		CreatedAt: u.clock.Now(),
	}
	if err := u.logs.Insert(ctx, l); err != nil {
		return nil, errs.Wrap(err, "failed to log incoming webhook")
	}
	return l, nil
}

// ProcessWithLogging drives one delivery through
// pending -> processing -> success|failed, measuring elapsed handler time.
func (u *webhookUseCaseImpl) ProcessWithLogging(ctx context.Context, id uuid.UUID, handler WebhookHandler) (*webhook.Log, error) {
	l, err := u.logs.Find(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWebhookLogNotFound
		}
		return nil, errs.Mark(err, ErrWebhookLogNotFound)
	}

	l.Status = webhook.StatusProcessing
	if err := u.logs.Update(ctx, l); err != nil {
		return nil, errs.Wrap(err, "failed to mark webhook processing")
	}

	started := u.clock.Now()
	handlerErr := handler(ctx, l)
	finished := u.clock.Now()

	elapsed := int32(finished.Sub(started).Milliseconds())
	l.ProcessingTimeMs = &elapsed
	l.ProcessedAt = &finished

	if handlerErr != nil {
		msg := handlerErr.Error()
		l.Status = webhook.StatusFailed
		l.ErrorMessage = &msg
		u.logger.Warn("webhook processing failed",
			"webhook_id", l.WebhookID, "source", string(l.Source),
			"event_type", l.EventType, "error", msg,
			"retryable", webhook.IsRetryable(handlerErr))
	} else {
		l.Status = webhook.StatusSuccess
		l.ErrorMessage = nil
	}

	if err := u.logs.Update(ctx, l); err != nil {
		return nil, errs.Wrap(err, "failed to store webhook outcome")
	}
	return l, nil
}

// MarkForRetry consumes one unit of retry budget. Exhausting the budget
// force-fails the delivery terminally.
func (u *webhookUseCaseImpl) MarkForRetry(ctx context.Context, id uuid.UUID) (*webhook.Log, error) {
	l, err := u.logs.Find(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWebhookLogNotFound
		}
		return nil, errs.Mark(err, ErrWebhookLogNotFound)
	}

	if l.RetryCount >= webhook.MaxRetryAttempts {
		l.Status = webhook.StatusFailed
		msg := "retry attempts exhausted"
		l.ErrorMessage = &msg
		if err := u.logs.Update(ctx, l); err != nil {
			return nil, errs.Wrap(err, "failed to store terminal webhook failure")
		}
		u.logger.Warn("webhook retry budget exhausted",
			"webhook_id", l.WebhookID, "attempts", webhook.MaxRetryAttempts)
		return nil, ErrRetryExhausted
	}

	now := u.clock.Now()
	l.RetryCount++
	l.LastRetryAt = &now
	l.Status = webhook.StatusRetry
	if err := u.logs.Update(ctx, l); err != nil {
		return nil, errs.Wrap(err, "failed to mark webhook for retry")
	}

	u.logger.Info("webhook queued for retry",
		"webhook_id", l.WebhookID, "attempt", l.RetryCount)
	return l, nil
}

// WebhooksForRetry returns failed deliveries worth retrying: budget left,
// outside the cooldown, and a transient error on record.
func (u *webhookUseCaseImpl) WebhooksForRetry(ctx context.Context) ([]*webhook.Log, error) {
	candidates, err := u.logs.ListForRetry(ctx, u.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to list retry candidates")
	}

	eligible := make([]*webhook.Log, 0, len(candidates))
	for _, l := range candidates {
		if l.ErrorMessage == nil {
			continue
		}
		if webhook.IsRetryable(errs.New(*l.ErrorMessage)) {
			eligible = append(eligible, l)
		}
	}
	return eligible, nil
}
