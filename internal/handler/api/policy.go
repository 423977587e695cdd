package api

import (
	"errors"
	"net/http"

	"repaircoin/internal/domain/noshow"
	reqdto "repaircoin/internal/handler/dto/request"
	resdto "repaircoin/internal/handler/dto/response"
	"repaircoin/internal/handler/httperr"
	"repaircoin/internal/usecase/commands"
	"repaircoin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PolicyHandler struct {
	policyCommands commands.PolicyCommands
	noShowQueries  queries.NoShowQueries
}

func NewPolicyHandler(policyCommands commands.PolicyCommands, noShowQueries queries.NoShowQueries) *PolicyHandler {
	return &PolicyHandler{
		policyCommands: policyCommands,
		noShowQueries:  noShowQueries,
	}
}

// @Summary Get no-show policy
// @Description Get the shop's effective no-show policy (platform default when uncustomized)
// @Tags policies
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Success 200 {object} resdto.PolicyResponse
// @Failure 401 {object} map[string]string
// @Router /shops/{shopId}/no-show-policy [get]
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	shopID := c.Param("shopId")

	policy, err := h.noShowQueries.GetShopPolicy(c.Request.Context(), shopID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromPolicy(policy))
}

// @Summary Update no-show policy
// @Description Partially update the shop's no-show policy; absent fields keep current values
// @Tags policies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Param request body reqdto.UpdateNoShowPolicyRequest true "Policy update"
// @Success 200 {object} resdto.PolicyResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /shops/{shopId}/no-show-policy [put]
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	shopID := c.Param("shopId")

	var req reqdto.UpdateNoShowPolicyRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	policy, err := h.policyCommands.UpdateShopPolicy(c.Request.Context(), shopID, req)
	if err != nil {
		var fieldErr *noshow.FieldError
		switch {
		case errors.As(err, &fieldErr):
			httperr.AbortWithField(c, http.StatusUnprocessableEntity, err, fieldErr.Error(), fieldErr.Field)
		case errors.Is(err, commands.ErrPolicyValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Policy validation failed")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPolicy(policy))
}
