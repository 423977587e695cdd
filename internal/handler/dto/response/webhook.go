package response

import (
	"time"

	"repaircoin/internal/domain/webhook"
	"repaircoin/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type WebhookLogResponse struct {
	ID               uuid.UUID  `json:"id"`
	WebhookID        string     `json:"webhookId"`
	EventType        string     `json:"eventType"`
	Source           string     `json:"source"`
	Status           string     `json:"status"`
	RetryCount       int        `json:"retryCount"`
	LastRetryAt      *time.Time `json:"lastRetryAt,omitempty"`
	ProcessingTimeMs *int32     `json:"processingTimeMs,omitempty"`
	ErrorMessage     *string    `json:"errorMessage,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	ProcessedAt      *time.Time `json:"processedAt,omitempty"`
}

type SourceHealthResponse struct {
	Source          string   `json:"source"`
	Total           int      `json:"total"`
	Succeeded       int      `json:"succeeded"`
	Failed          int      `json:"failed"`
	Retries         int      `json:"retries"`
	SuccessRate     float64  `json:"successRate"`
	AvgProcessingMs float64  `json:"avgProcessingMs"`
	Issues          []string `json:"issues,omitempty"`
}

type WebhookHealthResponse struct {
	Healthy bool                   `json:"healthy"`
	Window  string                 `json:"window"`
	Sources []SourceHealthResponse `json:"sources"`
}

func FromWebhookLog(l *webhook.Log) *WebhookLogResponse {
	var resp WebhookLogResponse
	// Field names line up except the typed enums; copier handles the rest.
	_ = copier.Copy(&resp, l)
	resp.Source = string(l.Source)
	resp.Status = string(l.Status)
	return &resp
}

func FromWebhookHealthView(v *queries.WebhookHealthView) *WebhookHealthResponse {
	resp := &WebhookHealthResponse{
		Healthy: v.Healthy,
		Window:  v.Window.String(),
		Sources: make([]SourceHealthResponse, 0, len(v.Sources)),
	}
	for _, s := range v.Sources {
		var sh SourceHealthResponse
		_ = copier.Copy(&sh, &s)
		sh.Source = string(s.Source)
		resp.Sources = append(resp.Sources, sh)
	}
	return resp
}
