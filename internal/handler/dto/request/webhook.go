package request

import "encoding/json"

// IncomingWebhookRequest wraps the raw delivery. Payload is kept as received
// so the audit log stores exactly what the sender posted.
type IncomingWebhookRequest struct {
	WebhookID string          `json:"webhookId" binding:"required"`
	EventType string          `json:"eventType" binding:"required"`
	Payload   json.RawMessage `json:"payload" binding:"required"`
}
