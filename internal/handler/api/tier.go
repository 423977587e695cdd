package api

import (
	"errors"
	"net/http"

	resdto "repaircoin/internal/handler/dto/response"
	"repaircoin/internal/handler/httperr"
	"repaircoin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TierHandler struct {
	tierQueries queries.TierQueries
}

func NewTierHandler(tierQueries queries.TierQueries) *TierHandler {
	return &TierHandler{
		tierQueries: tierQueries,
	}
}

// @Summary Get shop tier
// @Description Classify the shop's RCG holding into its partner tier
// @Tags shops
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Success 200 {object} resdto.ShopTierResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shops/{shopId}/tier [get]
func (h *TierHandler) GetShopTier(c *gin.Context) {
	shopID := c.Param("shopId")

	view, err := h.tierQueries.GetShopTier(c.Request.Context(), shopID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrShopNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Shop not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromShopTierView(view))
}

// @Summary Get contract stats
// @Description Read total supply and allocation stats from the RCG contract
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ContractStatsResponse
// @Failure 401 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/contract/stats [get]
func (h *TierHandler) GetContractStats(c *gin.Context) {
	stats, err := h.tierQueries.GetContractStats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Contract stats unavailable")
		return
	}

	c.JSON(http.StatusOK, resdto.FromContractStats(stats))
}
