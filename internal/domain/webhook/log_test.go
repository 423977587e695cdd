//go:build unit

package webhook_test

import (
	"errors"
	"testing"
	"time"

	"repaircoin/internal/domain/webhook"

	"github.com/stretchr/testify/assert"
)

func TestParseSource(t *testing.T) {
	for _, s := range []string{"fixflow", "stripe", "admin"} {
		src, err := webhook.ParseSource(s)
		assert.NoError(t, err)
		assert.Equal(t, webhook.Source(s), src)
	}

	_, err := webhook.ParseSource("paypal")
	assert.ErrorIs(t, err, webhook.ErrUnknownSource)
}

func TestIsRetryable(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error", err: nil, want: false},
		{name: "connection refused", err: errors.New("dial tcp: ECONNREFUSED"), want: true},
		{name: "timeout", err: errors.New("request failed: ETIMEDOUT"), want: true},
		{name: "dns not found", err: errors.New("lookup host: ENOTFOUND"), want: true},
		{name: "network unreachable", err: errors.New("ENETUNREACH"), want: true},
		{name: "dns temporary failure", err: errors.New("EAI_AGAIN resolving host"), want: true},
		{name: "validation failure is terminal", err: errors.New("invalid payload signature"), want: false},
		{name: "handler panic is terminal", err: errors.New("handler panicked"), want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, webhook.IsRetryable(c.err))
		})
	}
}

func TestEligibleForRetry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("failed with budget and no prior retry", func(t *testing.T) {
		l := webhook.Log{Status: webhook.StatusFailed, RetryCount: 0}

		assert.True(t, l.EligibleForRetry(now))
	})

	t.Run("non-failed statuses are never eligible", func(t *testing.T) {
		for _, s := range []webhook.Status{webhook.StatusPending, webhook.StatusProcessing, webhook.StatusSuccess, webhook.StatusRetry} {
			l := webhook.Log{Status: s}
			assert.False(t, l.EligibleForRetry(now), "status=%s", s)
		}
	})

	t.Run("budget exhausted", func(t *testing.T) {
		l := webhook.Log{Status: webhook.StatusFailed, RetryCount: webhook.MaxRetryAttempts}

		assert.False(t, l.EligibleForRetry(now))
	})

	t.Run("inside cooldown", func(t *testing.T) {
		last := now.Add(-webhook.RetryCooldown)
		l := webhook.Log{Status: webhook.StatusFailed, RetryCount: 1, LastRetryAt: &last}

		assert.False(t, l.EligibleForRetry(now))
	})

	t.Run("past cooldown", func(t *testing.T) {
		last := now.Add(-webhook.RetryCooldown - time.Second)
		l := webhook.Log{Status: webhook.StatusFailed, RetryCount: 1, LastRetryAt: &last}

		assert.True(t, l.EligibleForRetry(now))
	})
}

func TestSourceHealth(t *testing.T) {
	t.Run("empty window counts as fully healthy", func(t *testing.T) {
		h := webhook.SourceHealth{Source: webhook.SourceStripe}

		assert.Equal(t, 1.0, h.SuccessRate())
		assert.Empty(t, h.Issues())
	})

	t.Run("low success rate below sample floor is ignored", func(t *testing.T) {
		h := webhook.SourceHealth{Total: 9, Succeeded: 4, Failed: 5}

		assert.Empty(t, h.Issues())
	})

	t.Run("low success rate at sample floor is flagged", func(t *testing.T) {
		h := webhook.SourceHealth{Total: 10, Succeeded: 8, Failed: 2}

		issues := h.Issues()
		assert.Contains(t, issues, "success rate below 90%")
	})

	t.Run("slow processing is flagged", func(t *testing.T) {
		h := webhook.SourceHealth{Total: 5, Succeeded: 5, AvgProcessingMs: 6000}

		assert.Contains(t, h.Issues(), "average processing time above 5000ms")
	})

	t.Run("high retry ratio is flagged", func(t *testing.T) {
		h := webhook.SourceHealth{Total: 10, Succeeded: 10, Retries: 3}

		assert.Contains(t, h.Issues(), "retry count above 20% of deliveries")
	})

	t.Run("all thresholds breached at once", func(t *testing.T) {
		h := webhook.SourceHealth{Total: 20, Succeeded: 10, Failed: 10, Retries: 10, AvgProcessingMs: 9000}

		assert.Len(t, h.Issues(), 3)
	})
}
