package response

import (
	"time"

	"repaircoin/internal/usecase/commands"
)

type CleanupReportResponse struct {
	StartedAt            time.Time `json:"startedAt"`
	FinishedAt           time.Time `json:"finishedAt"`
	TotalDurationMs      int64     `json:"totalDurationMs"`
	WebhookLogsDeleted   int64     `json:"webhookLogsDeleted"`
	TransactionsArchived int64     `json:"transactionsArchived"`
	Errors               []string  `json:"errors,omitempty"`
}

func FromCleanupReport(r *commands.Report) *CleanupReportResponse {
	return &CleanupReportResponse{
		StartedAt:            r.StartedAt,
		FinishedAt:           r.FinishedAt,
		TotalDurationMs:      r.TotalDurationMs,
		WebhookLogsDeleted:   r.WebhookLogsDeleted,
		TransactionsArchived: r.TransactionsArchived,
		Errors:               r.Errors,
	}
}
