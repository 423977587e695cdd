//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"repaircoin/internal/domain/webhook"
	"repaircoin/internal/pkg/clock"
	"repaircoin/internal/pkg/errs"
	"repaircoin/internal/usecase/queries"
	queriesmock "repaircoin/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	store    *queriesmock.MockWebhookHealthReadStore
	clock    *clock.MockClock
	webhooks queries.WebhookQueries
}

func (s *WebhookQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockWebhookHealthReadStore(s.ctrl)
	s.clock = clock.NewMockClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	s.webhooks = queries.NewWebhookQueries(s.store, s.clock)
}

func (s *WebhookQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestWebhookQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookQueriesTestSuite))
}

func (s *WebhookQueriesTestSuite) TestGetHealth_AggregatesLast24Hours() {
	wantSince := s.clock.Now().Add(-24 * time.Hour)
	s.store.EXPECT().HealthBySource(gomock.Any(), wantSince).Return([]webhook.SourceHealth{
		{Source: webhook.SourceFixFlow, Total: 50, Succeeded: 49, Failed: 1, AvgProcessingMs: 120},
	}, nil)

	view, err := s.webhooks.GetHealth(context.Background())

	require.NoError(s.T(), err)
	assert.True(s.T(), view.Healthy)
	require.Len(s.T(), view.Sources, 1)
	assert.Equal(s.T(), webhook.SourceFixFlow, view.Sources[0].Source)
	assert.InDelta(s.T(), 0.98, view.Sources[0].SuccessRate, 0.001)
	assert.Empty(s.T(), view.Sources[0].Issues)
}

func (s *WebhookQueriesTestSuite) TestGetHealth_AnyIssueMarksUnhealthy() {
	s.store.EXPECT().HealthBySource(gomock.Any(), gomock.Any()).Return([]webhook.SourceHealth{
		{Source: webhook.SourceFixFlow, Total: 50, Succeeded: 50},
		{Source: webhook.SourceStripe, Total: 20, Succeeded: 10, Failed: 10},
	}, nil)

	view, err := s.webhooks.GetHealth(context.Background())

	require.NoError(s.T(), err)
	assert.False(s.T(), view.Healthy)
	require.Len(s.T(), view.Sources, 2)
	assert.Empty(s.T(), view.Sources[0].Issues)
	assert.NotEmpty(s.T(), view.Sources[1].Issues)
}

func (s *WebhookQueriesTestSuite) TestGetHealth_EmptyWindowIsHealthy() {
	s.store.EXPECT().HealthBySource(gomock.Any(), gomock.Any()).Return(nil, nil)

	view, err := s.webhooks.GetHealth(context.Background())

	require.NoError(s.T(), err)
	assert.True(s.T(), view.Healthy)
	assert.Empty(s.T(), view.Sources)
}

func (s *WebhookQueriesTestSuite) TestGetHealth_StoreFailure() {
	s.store.EXPECT().HealthBySource(gomock.Any(), gomock.Any()).Return(nil, errs.New("db down"))

	_, err := s.webhooks.GetHealth(context.Background())

	require.Error(s.T(), err)
}
