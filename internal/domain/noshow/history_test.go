//go:build unit

package noshow_test

import (
	"testing"
	"time"

	"repaircoin/internal/domain/noshow"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(markedAt time.Time) *noshow.HistoryEntry {
	return &noshow.HistoryEntry{
		ID:              uuid.New(),
		ShopID:          "shop-1",
		CustomerAddress: "0xabc",
		MarkedAt:        markedAt,
	}
}

func TestOpenDispute(t *testing.T) {
	markedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("opens within the window", func(t *testing.T) {
		entry := newEntry(markedAt)
		now := markedAt.AddDate(0, 0, 3)

		err := entry.OpenDispute("shop lost my booking", 7, now)

		require.NoError(t, err)
		assert.True(t, entry.Disputed)
		assert.Equal(t, noshow.DisputePending, entry.DisputeStatus)
		require.NotNil(t, entry.DisputeReason)
		assert.Equal(t, "shop lost my booking", *entry.DisputeReason)
		require.NotNil(t, entry.DisputeOpenedAt)
		assert.Equal(t, now, *entry.DisputeOpenedAt)
	})

	t.Run("deadline day itself still opens", func(t *testing.T) {
		entry := newEntry(markedAt)
		now := markedAt.AddDate(0, 0, 7)

		assert.NoError(t, entry.OpenDispute("reason", 7, now))
	})

	t.Run("past the window is rejected", func(t *testing.T) {
		entry := newEntry(markedAt)
		now := markedAt.AddDate(0, 0, 7).Add(time.Second)

		err := entry.OpenDispute("reason", 7, now)

		require.ErrorIs(t, err, noshow.ErrDisputeWindowClosed)
		assert.False(t, entry.Disputed)
	})

	t.Run("double open is rejected", func(t *testing.T) {
		entry := newEntry(markedAt)
		now := markedAt.AddDate(0, 0, 1)
		require.NoError(t, entry.OpenDispute("first", 7, now))

		err := entry.OpenDispute("second", 7, now)

		require.ErrorIs(t, err, noshow.ErrAlreadyDisputed)
		assert.Equal(t, "first", *entry.DisputeReason)
	})
}

func TestResolveDispute(t *testing.T) {
	markedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("approve transitions pending to approved", func(t *testing.T) {
		entry := newEntry(markedAt)
		require.NoError(t, entry.OpenDispute("reason", 7, markedAt.AddDate(0, 0, 1)))
		resolvedAt := markedAt.AddDate(0, 0, 2)

		err := entry.ResolveDispute(true, resolvedAt)

		require.NoError(t, err)
		assert.Equal(t, noshow.DisputeApproved, entry.DisputeStatus)
		require.NotNil(t, entry.DisputeResolvedAt)
		assert.Equal(t, resolvedAt, *entry.DisputeResolvedAt)
	})

	t.Run("reject transitions pending to rejected", func(t *testing.T) {
		entry := newEntry(markedAt)
		require.NoError(t, entry.OpenDispute("reason", 7, markedAt.AddDate(0, 0, 1)))

		require.NoError(t, entry.ResolveDispute(false, markedAt.AddDate(0, 0, 2)))
		assert.Equal(t, noshow.DisputeRejected, entry.DisputeStatus)
	})

	t.Run("resolving an undisputed entry fails", func(t *testing.T) {
		entry := newEntry(markedAt)

		require.ErrorIs(t, entry.ResolveDispute(true, markedAt), noshow.ErrDisputeNotPending)
	})

	t.Run("resolving twice fails", func(t *testing.T) {
		entry := newEntry(markedAt)
		require.NoError(t, entry.OpenDispute("reason", 7, markedAt.AddDate(0, 0, 1)))
		require.NoError(t, entry.ResolveDispute(true, markedAt.AddDate(0, 0, 2)))

		require.ErrorIs(t, entry.ResolveDispute(false, markedAt.AddDate(0, 0, 3)), noshow.ErrDisputeNotPending)
		assert.Equal(t, noshow.DisputeApproved, entry.DisputeStatus)
	})
}
