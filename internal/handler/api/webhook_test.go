//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"repaircoin/internal/domain/webhook"
	"repaircoin/internal/handler/api"
	resdto "repaircoin/internal/handler/dto/response"
	"repaircoin/internal/pkg/errs"
	"repaircoin/internal/usecase/commands"
	"repaircoin/internal/usecase/queries"
	"repaircoin/tests/common/httptest"
	commandsmock "repaircoin/tests/mock/commands"
	queriesmock "repaircoin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
	mockQueries  *queriesmock.MockWebhookQueries
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockWebhookQueries(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}

	s.router.POST("/webhooks/:source", s.handler.Receive)
	s.router.GET("/admin/webhooks/health", authMiddleware, s.handler.GetHealth)
	s.router.GET("/admin/webhooks/retry-queue", authMiddleware, s.handler.GetRetryQueue)
	s.router.POST("/admin/webhooks/:id/retry", authMiddleware, s.handler.Retry)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) TestReceive() {
	s.Run("success: logs then processes the delivery", func() {
		logged := &webhook.Log{ID: uuid.New(), WebhookID: "evt_1", Source: webhook.SourceFixFlow, Status: webhook.StatusPending, CreatedAt: time.Now().UTC()}
		processed := &webhook.Log{ID: logged.ID, WebhookID: "evt_1", Source: webhook.SourceFixFlow, Status: webhook.StatusSuccess, CreatedAt: logged.CreatedAt}

		s.mockCommands.EXPECT().LogIncoming(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev commands.WebhookEvent) (*webhook.Log, error) {
				assert.Equal(s.T(), "evt_1", ev.WebhookID)
				assert.Equal(s.T(), webhook.SourceFixFlow, ev.Source)
				return logged, nil
			})
		s.mockCommands.EXPECT().ProcessWithLogging(gomock.Any(), logged.ID, gomock.Any()).
			Return(processed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhooks/fixflow",
			map[string]any{"webhookId": "evt_1", "eventType": "repair_completed", "payload": map[string]any{"order": "42"}}, "")

		var body resdto.WebhookLogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), "success", body.Status)
	})

	s.Run("error: 400 for unknown source", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/webhooks/paypal",
			map[string]any{"webhookId": "evt_1", "eventType": "x"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown webhook source")
	})
}

func (s *WebhookHandlerTestSuite) TestGetHealth() {
	url := "/admin/webhooks/health"

	s.Run("success: reports unhealthy sources", func() {
		view := &queries.WebhookHealthView{
			Healthy: false,
			Window:  24 * time.Hour,
			Sources: []queries.SourceHealthView{
				{Source: webhook.SourceStripe, Total: 20, Succeeded: 15, Failed: 5, SuccessRate: 0.75, Issues: []string{"success rate below 90%"}},
			},
		}
		s.mockQueries.EXPECT().GetHealth(gomock.Any()).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.WebhookHealthResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.False(s.T(), body.Healthy)
		require.Len(s.T(), body.Sources, 1)
		assert.Equal(s.T(), "stripe", body.Sources[0].Source)
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *WebhookHandlerTestSuite) TestGetRetryQueue() {
	s.Run("success: lists eligible deliveries", func() {
		msg := "ETIMEDOUT"
		logs := []*webhook.Log{
			{ID: uuid.New(), WebhookID: "evt_9", Status: webhook.StatusFailed, RetryCount: 1, ErrorMessage: &msg, CreatedAt: time.Now().UTC()},
		}
		s.mockCommands.EXPECT().WebhooksForRetry(gomock.Any()).Return(logs, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/webhooks/retry-queue", nil, "bearer-token")

		var body []resdto.WebhookLogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		require.Len(s.T(), body, 1)
		assert.Equal(s.T(), "evt_9", body[0].WebhookID)
	})
}

func (s *WebhookHandlerTestSuite) TestRetry() {
	id := uuid.New()
	url := "/admin/webhooks/" + id.String() + "/retry"

	s.Run("success: consumes a retry attempt", func() {
		l := &webhook.Log{ID: id, WebhookID: "evt_9", Status: webhook.StatusRetry, RetryCount: 2, CreatedAt: time.Now().UTC()}
		s.mockCommands.EXPECT().MarkForRetry(gomock.Any(), id).Return(l, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.WebhookLogResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), 2, body.RetryCount)
		assert.Equal(s.T(), "retry", body.Status)
	})

	s.Run("error: 404 for unknown log", func() {
		s.mockCommands.EXPECT().MarkForRetry(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("no rows"), commands.ErrWebhookLogNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Webhook log not found")
	})

	s.Run("error: 409 when budget exhausted", func() {
		s.mockCommands.EXPECT().MarkForRetry(gomock.Any(), id).
			Return(nil, errs.Mark(errs.New("exhausted"), commands.ErrRetryExhausted))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Retry attempts exhausted")
	})

	s.Run("error: 400 for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/webhooks/not-a-uuid/retry", nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid webhook log ID format")
	})
}
