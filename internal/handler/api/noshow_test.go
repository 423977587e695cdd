//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"repaircoin/internal/domain/noshow"
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

type NoShowHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockNoShowCommands
	mockQueries  *queriesmock.MockNoShowQueries
	handler      *api.NoShowHandler
}

func (s *NoShowHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockNoShowCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNoShowQueries(s.mockCtrl)
	s.handler = api.NewNoShowHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("subject", "0xabc")
		c.Next()
	}

	s.router.GET("/customers/:address/no-show-status", authMiddleware, s.handler.GetCustomerStatus)
	s.router.GET("/customers/:address/no-show-history", authMiddleware, s.handler.GetCustomerHistory)
	s.router.POST("/shops/:shopId/no-shows", authMiddleware, s.handler.RecordNoShow)
	s.router.POST("/shops/:shopId/appointments/completed", authMiddleware, s.handler.RecordCompletedAppointment)
	s.router.POST("/no-shows/:id/dispute", authMiddleware, s.handler.OpenDispute)
	s.router.POST("/no-shows/:id/dispute/resolve", authMiddleware, s.handler.ResolveDispute)
}

func (s *NoShowHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestNoShowHandlerSuite(t *testing.T) {
	suite.Run(t, new(NoShowHandlerTestSuite))
}

func (s *NoShowHandlerTestSuite) TestGetCustomerStatus() {
	url := "/customers/0xabc/no-show-status"

	s.Run("success: returns booking view", func() {
		view := &queries.CustomerStatusView{
			Address: "0xabc",
			ShopID:  "shop-1",
			BookingStatus: noshow.BookingStatus{
				Tier:        noshow.TierCaution,
				NoShowCount: 2,
				CanBook:     true,
			},
		}
		s.mockQueries.EXPECT().GetCustomerStatus(gomock.Any(), "0xabc").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.CustomerStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), "caution", body.Tier)
		assert.True(s.T(), body.CanBook)
	})

	s.Run("error: 404 for unknown customer", func() {
		s.mockQueries.EXPECT().GetCustomerStatus(gomock.Any(), "0xabc").
			Return(nil, errs.Mark(errs.New("no rows"), queries.ErrCustomerNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})
}

func (s *NoShowHandlerTestSuite) TestGetCustomerHistory() {
	url := "/customers/0xabc/no-show-history?limit=10"

	s.Run("success: passes the limit through", func() {
		entries := []*noshow.HistoryEntry{
			{ID: uuid.New(), ShopID: "shop-1", CustomerAddress: "0xabc", MarkedAt: time.Now().UTC()},
		}
		s.mockQueries.EXPECT().GetCustomerHistory(gomock.Any(), "0xabc", int32(10)).Return(entries, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body []resdto.HistoryEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		require.Len(s.T(), body, 1)
		assert.Equal(s.T(), "0xabc", body[0].CustomerAddress)
	})
}

func (s *NoShowHandlerTestSuite) TestRecordNoShow() {
	url := "/shops/shop-1/no-shows"

	s.Run("success: returns 201 with advanced state", func() {
		result := &commands.RecordNoShowResult{
			Entry:       &noshow.HistoryEntry{ID: uuid.New(), ShopID: "shop-1", CustomerAddress: "0xabc", MarkedAt: time.Now().UTC()},
			NoShowCount: 3,
			Tier:        noshow.TierCaution,
		}
		s.mockCommands.EXPECT().RecordNoShow(gomock.Any(), "shop-1", gomock.Any()).Return(result, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"customerAddress": "0xabc", "bookingReference": "bk-1"}, "bearer-token")

		var body resdto.RecordNoShowResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		assert.Equal(s.T(), 3, body.NoShowCount)
		assert.Equal(s.T(), "caution", body.Tier)
	})

	s.Run("error: 400 when customerAddress missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"bookingReference": "bk-1"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 404 for unknown customer", func() {
		s.mockCommands.EXPECT().RecordNoShow(gomock.Any(), "shop-1", gomock.Any()).
			Return(nil, errs.Mark(errs.New("no rows"), commands.ErrCustomerNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"customerAddress": "0xdead"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Customer not found")
	})
}

func (s *NoShowHandlerTestSuite) TestRecordCompletedAppointment() {
	url := "/shops/shop-1/appointments/completed"

	s.Run("success: reports demotion", func() {
		s.mockCommands.EXPECT().RecordSuccessfulAppointment(gomock.Any(), "0xabc").
			Return(&commands.AppointmentResult{Tier: noshow.TierCaution, DemotedToCaution: true}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"customerAddress": "0xabc"}, "bearer-token")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.True(s.T(), body.DemotedToCaution)
		assert.Equal(s.T(), "caution", body.Tier)
	})
}

func (s *NoShowHandlerTestSuite) TestOpenDispute() {
	entryID := uuid.New()
	url := "/no-shows/" + entryID.String() + "/dispute"

	s.Run("success: caller identity comes from the token subject", func() {
		entry := &noshow.HistoryEntry{
			ID:              entryID,
			ShopID:          "shop-1",
			CustomerAddress: "0xabc",
			MarkedAt:        time.Now().UTC(),
			Disputed:        true,
			DisputeStatus:   noshow.DisputePending,
		}
		s.mockCommands.EXPECT().OpenDispute(gomock.Any(), entryID, "0xabc", "I was there").Return(entry, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reason": "I was there"}, "bearer-token")

		var body resdto.HistoryEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.True(s.T(), body.Disputed)
		assert.Equal(s.T(), "pending", body.DisputeStatus)
	})

	s.Run("error: 400 for malformed entry ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/no-shows/not-a-uuid/dispute",
			map[string]any{"reason": "I was there"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid entry ID format")
	})

	s.Run("error: 404 covers other customers' entries", func() {
		s.mockCommands.EXPECT().OpenDispute(gomock.Any(), entryID, "0xabc", "not mine").
			Return(nil, commands.ErrHistoryNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reason": "not mine"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No-show entry not found")
	})

	s.Run("error: 409 when the window is closed", func() {
		s.mockCommands.EXPECT().OpenDispute(gomock.Any(), entryID, "0xabc", "too late").
			Return(nil, errs.Mark(noshow.ErrDisputeWindowClosed, commands.ErrDisputeRejected))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"reason": "too late"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Dispute not allowed")
	})
}

func (s *NoShowHandlerTestSuite) TestResolveDispute() {
	entryID := uuid.New()
	url := "/no-shows/" + entryID.String() + "/dispute/resolve"

	s.Run("success: approve resolves the dispute", func() {
		entry := &noshow.HistoryEntry{
			ID:              entryID,
			ShopID:          "shop-1",
			CustomerAddress: "0xabc",
			MarkedAt:        time.Now().UTC(),
			Disputed:        true,
			DisputeStatus:   noshow.DisputeApproved,
		}
		s.mockCommands.EXPECT().ResolveDispute(gomock.Any(), entryID, true).Return(entry, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"approve": true}, "bearer-token")

		var body resdto.HistoryEntryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), "approved", body.DisputeStatus)
	})

	s.Run("error: 400 when approve is absent", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 409 when not pending", func() {
		s.mockCommands.EXPECT().ResolveDispute(gomock.Any(), entryID, false).
			Return(nil, errs.Mark(noshow.ErrDisputeNotPending, commands.ErrDisputeRejected))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"approve": false}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Dispute is not pending")
	})
}
