package api

import (
	"context"
	"errors"
	"net/http"

	"repaircoin/internal/domain/webhook"
	reqdto "repaircoin/internal/handler/dto/request"
	resdto "repaircoin/internal/handler/dto/response"
	"repaircoin/internal/handler/httperr"
	"repaircoin/internal/usecase/commands"
	"repaircoin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WebhookHandler struct {
	webhookCommands commands.WebhookCommands
	webhookQueries  queries.WebhookQueries
	processor       commands.WebhookHandler
}

// NewWebhookHandler takes the processing callback separately so transports
// and business processing stay decoupled from the logging pipeline.
func NewWebhookHandler(webhookCommands commands.WebhookCommands, webhookQueries queries.WebhookQueries) *WebhookHandler {
	h := &WebhookHandler{
		webhookCommands: webhookCommands,
		webhookQueries:  webhookQueries,
	}
	h.processor = h.defaultProcessor
	return h
}

// defaultProcessor acknowledges the delivery. Event-specific processing hangs
// off the logged payload downstream.
func (h *WebhookHandler) defaultProcessor(_ context.Context, _ *webhook.Log) error {
	return nil
}

// @Summary Receive a webhook
// @Description Log and process an inbound webhook delivery
// @Tags webhooks
// @Accept json
// @Produce json
// @Param source path string true "Webhook source (fixflow, stripe, admin)"
// @Param request body reqdto.IncomingWebhookRequest true "Delivery"
// @Success 200 {object} resdto.WebhookLogResponse
// @Failure 400 {object} map[string]string
// @Router /webhooks/{source} [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	source, err := webhook.ParseSource(c.Param("source"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown webhook source")
		return
	}

	var req reqdto.IncomingWebhookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format")
		return
	}

	logged, err := h.webhookCommands.LogIncoming(c.Request.Context(), commands.WebhookEvent{
		WebhookID: req.WebhookID,
		EventType: req.EventType,
		Source:    source,
		Payload:   req.Payload,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	processed, err := h.webhookCommands.ProcessWithLogging(c.Request.Context(), logged.ID, h.processor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromWebhookLog(processed))
}

// @Summary Webhook health
// @Description Aggregate delivery outcomes per source over the last 24 hours
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.WebhookHealthResponse
// @Failure 401 {object} map[string]string
// @Router /admin/webhooks/health [get]
func (h *WebhookHandler) GetHealth(c *gin.Context) {
	view, err := h.webhookQueries.GetHealth(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.FromWebhookHealthView(view))
}

// @Summary Webhook retry queue
// @Description List failed deliveries eligible for redelivery
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WebhookLogResponse
// @Failure 401 {object} map[string]string
// @Router /admin/webhooks/retry-queue [get]
func (h *WebhookHandler) GetRetryQueue(c *gin.Context) {
	logs, err := h.webhookCommands.WebhooksForRetry(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	response := make([]*resdto.WebhookLogResponse, len(logs))
	for i, l := range logs {
		response[i] = resdto.FromWebhookLog(l)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Retry a webhook
// @Description Consume one retry attempt for a failed delivery
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Webhook log ID"
// @Success 200 {object} resdto.WebhookLogResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/webhooks/{id}/retry [post]
func (h *WebhookHandler) Retry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid webhook log ID format")
		return
	}

	l, err := h.webhookCommands.MarkForRetry(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrWebhookLogNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Webhook log not found")
		case errors.Is(err, commands.ErrRetryExhausted):
			httperr.AbortWithError(c, http.StatusConflict, err, "Retry attempts exhausted")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWebhookLog(l))
}
