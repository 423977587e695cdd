//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"repaircoin/internal/domain/noshow"
	"repaircoin/internal/handler/api"
	resdto "repaircoin/internal/handler/dto/response"
	"repaircoin/internal/pkg/errs"
	"repaircoin/internal/usecase/commands"
	"repaircoin/tests/common/httptest"
	commandsmock "repaircoin/tests/mock/commands"
	queriesmock "repaircoin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PolicyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPolicyCommands
	mockQueries  *queriesmock.MockNoShowQueries
	handler      *api.PolicyHandler
}

func (s *PolicyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPolicyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockNoShowQueries(s.mockCtrl)
	s.handler = api.NewPolicyHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}

	s.router.GET("/shops/:shopId/no-show-policy", authMiddleware, s.handler.GetPolicy)
	s.router.PUT("/shops/:shopId/no-show-policy", authMiddleware, s.handler.UpdatePolicy)
}

func (s *PolicyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPolicyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PolicyHandlerTestSuite))
}

func (s *PolicyHandlerTestSuite) TestGetPolicy() {
	url := "/shops/shop-1/no-show-policy"

	s.Run("success: returns effective policy", func() {
		s.mockQueries.EXPECT().GetShopPolicy(gomock.Any(), "shop-1").
			Return(noshow.Default("shop-1"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.PolicyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), "shop-1", body.ShopID)
		assert.Equal(s.T(), "20.00", body.DepositAmount)
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 when query fails", func() {
		s.mockQueries.EXPECT().GetShopPolicy(gomock.Any(), "shop-1").
			Return(noshow.Policy{}, errs.New("db down"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *PolicyHandlerTestSuite) TestUpdatePolicy() {
	url := "/shops/shop-1/no-show-policy"

	s.Run("success: returns merged policy", func() {
		updated := noshow.Default("shop-1")
		updated.SuspensionDays = 45
		s.mockCommands.EXPECT().UpdateShopPolicy(gomock.Any(), "shop-1", gomock.Any()).
			Return(updated, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"suspensionDays": 45}, "bearer-token")

		var body resdto.PolicyResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), 45, body.SuspensionDays)
	})

	s.Run("error: 422 names the offending field", func() {
		s.mockCommands.EXPECT().UpdateShopPolicy(gomock.Any(), "shop-1", gomock.Any()).
			Return(noshow.Policy{}, errs.Mark(&noshow.FieldError{Field: "suspensionDays", Reason: "must be between 1 and 90"}, commands.ErrPolicyValidation))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"suspensionDays": 400}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "suspensionDays")

		var body map[string]any
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		assert.Equal(s.T(), "suspensionDays", body["field"])
	})

	s.Run("error: 400 for malformed body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"suspensionDays": "not-a-number"}, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"suspensionDays": 45}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}
