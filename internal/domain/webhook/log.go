package webhook

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status lifecycle: pending -> processing -> success | failed | retry.
// A retry-eligible failure is parked in retry until redelivery; exhausting
// the retry budget force-transitions the row to terminal failed.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusRetry      Status = "retry"
)

type Source string

const (
	SourceFixFlow Source = "fixflow"
	SourceStripe  Source = "stripe"
	SourceAdmin   Source = "admin"
)

var ErrUnknownSource = errors.New("unknown webhook source")

func ParseSource(s string) (Source, error) {
	switch Source(s) {
	case SourceFixFlow, SourceStripe, SourceAdmin:
		return Source(s), nil
	default:
		return "", ErrUnknownSource
	}
}

const (
	// MaxRetryAttempts bounds the retry state machine.
	MaxRetryAttempts = 3
	// RetryCooldown is the flat wait between redelivery attempts.
	RetryCooldown = 5 * time.Minute
)

// retryableCodes is the fixed allow-list of transient network failures.
// Anything else is a terminal failure with no retry.
var retryableCodes = []string{
	"ECONNREFUSED",
	"ETIMEDOUT",
	"ENOTFOUND",
	"ENETUNREACH",
	"EAI_AGAIN",
}

func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, code := range retryableCodes {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return false
}

// Log is one inbound webhook delivery attempt.
type Log struct {
	ID               uuid.UUID
	WebhookID        string
	EventType        string
	Source           Source
	Status           Status
	Payload          []byte
	RetryCount       int
	LastRetryAt      *time.Time
	ProcessingTimeMs *int32
	ErrorMessage     *string
	CreatedAt        time.Time
	ProcessedAt      *time.Time
}

// EligibleForRetry reports whether a failed log may be redelivered: budget
// left and outside the cooldown window.
func (l Log) EligibleForRetry(now time.Time) bool {
	if l.Status != StatusFailed || l.RetryCount >= MaxRetryAttempts {
		return false
	}
	if l.LastRetryAt == nil {
		return true
	}
	return now.Sub(*l.LastRetryAt) > RetryCooldown
}

// Health thresholds are fixed constants producing human-readable issue
// strings, not a generic scoring function.
const (
	MinSamplesForRate = 10
	MinSuccessRate    = 0.90
	SlowProcessingMs  = 5000
	MaxRetryRatio     = 0.20
)

// SourceHealth aggregates delivery outcomes for one webhook source.
type SourceHealth struct {
	Source          Source
	Total           int
	Succeeded       int
	Failed          int
	Retries         int
	AvgProcessingMs float64
}

func (h SourceHealth) SuccessRate() float64 {
	if h.Total == 0 {
		return 1.0
	}
	return float64(h.Succeeded) / float64(h.Total)
}

// Issues evaluates the fixed health thresholds for operational alerting.
func (h SourceHealth) Issues() []string {
	var issues []string
	if h.Total >= MinSamplesForRate && h.SuccessRate() < MinSuccessRate {
		issues = append(issues, "success rate below 90%")
	}
	if h.AvgProcessingMs > SlowProcessingMs {
		issues = append(issues, "average processing time above 5000ms")
	}
	if h.Total > 0 && float64(h.Retries)/float64(h.Total) > MaxRetryRatio {
		issues = append(issues, "retry count above 20% of deliveries")
	}
	return issues
}
