package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "repaircoin/internal/handler/dto/request"
	resdto "repaircoin/internal/handler/dto/response"
	"repaircoin/internal/handler/httperr"
	"repaircoin/internal/handler/middleware"
	"repaircoin/internal/usecase/commands"
	"repaircoin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type NoShowHandler struct {
	noShowCommands commands.NoShowCommands
	noShowQueries  queries.NoShowQueries
}

func NewNoShowHandler(noShowCommands commands.NoShowCommands, noShowQueries queries.NoShowQueries) *NoShowHandler {
	return &NoShowHandler{
		noShowCommands: noShowCommands,
		noShowQueries:  noShowQueries,
	}
}

// @Summary Get customer no-show status
// @Description Get the customer's current booking standing under the applicable policy
// @Tags no-shows
// @Produce json
// @Security BearerAuth
// @Param address path string true "Customer wallet address"
// @Success 200 {object} resdto.CustomerStatusResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{address}/no-show-status [get]
func (h *NoShowHandler) GetCustomerStatus(c *gin.Context) {
	address := c.Param("address")

	view, err := h.noShowQueries.GetCustomerStatus(c.Request.Context(), address)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCustomerStatusView(view))
}

// @Summary Get customer no-show history
// @Description List the customer's no-show audit entries, newest first
// @Tags no-shows
// @Produce json
// @Security BearerAuth
// @Param address path string true "Customer wallet address"
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {array} resdto.HistoryEntryResponse
// @Failure 401 {object} map[string]string
// @Router /customers/{address}/no-show-history [get]
func (h *NoShowHandler) GetCustomerHistory(c *gin.Context) {
	address := c.Param("address")

	var limit int32
	if limitStr := c.Query("limit"); limitStr != "" {
		if n, err := strconv.ParseInt(limitStr, 10, 32); err == nil {
			limit = int32(n)
		}
	}

	entries, err := h.noShowQueries.GetCustomerHistory(c.Request.Context(), address, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.HistoryEntryResponse, len(entries))
	for i, e := range entries {
		response[i] = resdto.FromHistoryEntry(e)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Record a no-show
// @Description Append an audit entry and advance the customer on the no-show ladder
// @Tags no-shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Param request body reqdto.RecordNoShowRequest true "No-show details"
// @Success 201 {object} resdto.RecordNoShowResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shops/{shopId}/no-shows [post]
func (h *NoShowHandler) RecordNoShow(c *gin.Context) {
	shopID := c.Param("shopId")

	var req reqdto.RecordNoShowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.noShowCommands.RecordNoShow(c.Request.Context(), shopID, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRecordNoShowResult(result))
}

// @Summary Record a completed appointment
// @Description Count a successful appointment toward the customer's deposit reset
// @Tags no-shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shopId path string true "Shop ID"
// @Param request body reqdto.RecordNoShowRequest true "Customer reference"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /shops/{shopId}/appointments/completed [post]
func (h *NoShowHandler) RecordCompletedAppointment(c *gin.Context) {
	var req reqdto.RecordNoShowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	result, err := h.noShowCommands.RecordSuccessfulAppointment(c.Request.Context(), req.CustomerAddress)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCustomerNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentResult(result))
}

// @Summary Open a dispute
// @Description Contest a no-show entry inside the shop's dispute window
// @Tags no-shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "History entry ID"
// @Param request body reqdto.OpenDisputeRequest true "Dispute reason"
// @Success 200 {object} resdto.HistoryEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /no-shows/{id}/dispute [post]
func (h *NoShowHandler) OpenDispute(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid entry ID format")
		return
	}

	subject, ok := middleware.GetSubject(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("auth subject missing from context"), "Internal server error")
		return
	}

	var req reqdto.OpenDisputeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	entry, err := h.noShowCommands.OpenDispute(c.Request.Context(), entryID, subject, req.TrimmedReason())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHistoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No-show entry not found")
		case errors.Is(err, commands.ErrDisputeRejected):
			httperr.AbortWithError(c, http.StatusConflict, err, "Dispute not allowed for this entry")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryEntry(entry))
}

// @Summary Resolve a dispute
// @Description Approve or reject a pending dispute; approval un-counts the no-show
// @Tags no-shows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "History entry ID"
// @Param request body reqdto.ResolveDisputeRequest true "Resolution"
// @Success 200 {object} resdto.HistoryEntryResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /no-shows/{id}/dispute/resolve [post]
func (h *NoShowHandler) ResolveDispute(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid entry ID format")
		return
	}

	var req reqdto.ResolveDisputeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil || req.Approve == nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	entry, err := h.noShowCommands.ResolveDispute(c.Request.Context(), entryID, *req.Approve)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrHistoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "No-show entry not found")
		case errors.Is(err, commands.ErrDisputeRejected):
			httperr.AbortWithError(c, http.StatusConflict, err, "Dispute is not pending")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromHistoryEntry(entry))
}
