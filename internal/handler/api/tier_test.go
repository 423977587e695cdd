//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"repaircoin/internal/domain/tier"
	"repaircoin/internal/handler/api"
	resdto "repaircoin/internal/handler/dto/response"
	"repaircoin/internal/pkg/errs"
	"repaircoin/internal/usecase/queries"
	"repaircoin/tests/common/httptest"
	queriesmock "repaircoin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TierHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockTierQueries
	handler     *api.TierHandler
}

func (s *TierHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockTierQueries(s.mockCtrl)
	s.handler = api.NewTierHandler(s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}

	s.router.GET("/shops/:shopId/tier", authMiddleware, s.handler.GetShopTier)
	s.router.GET("/admin/contract/stats", authMiddleware, s.handler.GetContractStats)
}

func (s *TierHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTierHandlerSuite(t *testing.T) {
	suite.Run(t, new(TierHandlerTestSuite))
}

func (s *TierHandlerTestSuite) TestGetShopTier() {
	url := "/shops/shop-1/tier"

	s.Run("success: returns the derived tier", func() {
		view := &queries.ShopTierView{
			ShopID:        "shop-1",
			WalletAddress: "0xwallet",
			RCGBalance:    "60000",
			Tier:          tier.TierPremium,
			RCNPrice:      "0.08",
		}
		s.mockQueries.EXPECT().GetShopTier(gomock.Any(), "shop-1").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ShopTierResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), "premium", body.Tier)
		assert.Equal(s.T(), "0.08", body.RCNPrice)
		assert.False(s.T(), body.Stale)
	})

	s.Run("success: stale flag survives serialization", func() {
		view := &queries.ShopTierView{
			ShopID:     "shop-1",
			RCGBalance: "60000",
			Tier:       tier.TierPremium,
			RCNPrice:   "0.08",
			Stale:      true,
		}
		s.mockQueries.EXPECT().GetShopTier(gomock.Any(), "shop-1").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ShopTierResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.True(s.T(), body.Stale)
	})

	s.Run("error: 404 for unknown shop", func() {
		s.mockQueries.EXPECT().GetShopTier(gomock.Any(), "shop-1").
			Return(nil, errs.Mark(errs.New("no rows"), queries.ErrShopNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Shop not found")
	})

	s.Run("error: 401 without authorization", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *TierHandlerTestSuite) TestGetContractStats() {
	url := "/admin/contract/stats"

	s.Run("success: returns supply stats", func() {
		stats := &queries.ContractStats{
			ContractAddress: "0xcontract",
			TotalSupply:     decimal.NewFromInt(100_000_000),
		}
		s.mockQueries.EXPECT().GetContractStats(gomock.Any()).Return(stats, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.ContractStatsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		assert.Equal(s.T(), "0xcontract", body.ContractAddress)
		assert.Equal(s.T(), "100000000", body.TotalSupply)
	})

	s.Run("error: 503 when the chain read fails", func() {
		s.mockQueries.EXPECT().GetContractStats(gomock.Any()).
			Return(nil, errs.New("rpc timeout"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Contract stats unavailable")
	})
}
