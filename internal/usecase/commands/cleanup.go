package commands

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"repaircoin/internal/pkg/clock"
	"repaircoin/internal/pkg/config"
	"repaircoin/internal/pkg/errs"
)

var ErrCleanupAlreadyRunning = errs.New("cleanup already running")

// Default retention windows. EmergencyRun uses much tighter ones to reclaim
// space under pressure.
const (
	emergencyWebhookRetentionDays     = 30
	emergencyTransactionRetentionDays = 180
)

type MaintenanceRepository interface {
	CleanupWebhookLogs(ctx context.Context, retentionDays int) (int64, error)
	ArchiveTransactions(ctx context.Context, olderThanDays int) (int64, error)
}

// Report summarizes one cleanup run. Sub-operations are isolated: one
// failing does not stop the other, and its error lands in Errors.
type Report struct {
	StartedAt            time.Time
	FinishedAt           time.Time
	TotalDurationMs      int64
	WebhookLogsDeleted   int64
	TransactionsArchived int64
	Errors               []string
}

type CleanupCommands interface {
	Run(ctx context.Context) (*Report, error)
	EmergencyRun(ctx context.Context) (*Report, error)
	Running() bool
}

type cleanupUseCaseImpl struct {
	maintenance MaintenanceRepository
	cfg         config.CleanupConfig
	clock       clock.Clock
	logger      *slog.Logger
	active      atomic.Bool
}

func NewCleanupUseCase(maintenance MaintenanceRepository, cfg config.CleanupConfig, clk clock.Clock, logger *slog.Logger) CleanupCommands {
	return &cleanupUseCaseImpl{
		maintenance: maintenance,
		cfg:         cfg,
		clock:       clk,
		logger:      logger,
	}
}

func (u *cleanupUseCaseImpl) Running() bool {
	return u.active.Load()
}

// Run executes the scheduled cleanup with the configured retention windows.
// Only one run may be in flight at a time.
func (u *cleanupUseCaseImpl) Run(ctx context.Context) (*Report, error) {
	return u.run(ctx, u.cfg.WebhookRetentionDays, u.cfg.TransactionArchiveDays, "scheduled")
}

// EmergencyRun is the operator-triggered variant with aggressive windows.
func (u *cleanupUseCaseImpl) EmergencyRun(ctx context.Context) (*Report, error) {
	return u.run(ctx, emergencyWebhookRetentionDays, emergencyTransactionRetentionDays, "emergency")
}

func (u *cleanupUseCaseImpl) run(ctx context.Context, webhookDays, txDays int, mode string) (*Report, error) {
	if !u.active.CompareAndSwap(false, true) {
		return nil, ErrCleanupAlreadyRunning
	}
	defer u.active.Store(false)

	report := &Report{StartedAt: u.clock.Now()}
	u.logger.Info("cleanup started", "mode", mode,
		"webhook_retention_days", webhookDays, "transaction_archive_days", txDays)

	deleted, err := u.maintenance.CleanupWebhookLogs(ctx, webhookDays)
	if err != nil {
		u.logger.Error("webhook log cleanup failed", "error", err)
		report.Errors = append(report.Errors, "webhook log cleanup: "+err.Error())
	} else {
		report.WebhookLogsDeleted = deleted
	}

	archived, err := u.maintenance.ArchiveTransactions(ctx, txDays)
	if err != nil {
		u.logger.Error("transaction archival failed", "error", err)
		report.Errors = append(report.Errors, "transaction archival: "+err.Error())
	} else {
		report.TransactionsArchived = archived
	}

	report.FinishedAt = u.clock.Now()
	report.TotalDurationMs = report.FinishedAt.Sub(report.StartedAt).Milliseconds()
	u.logger.Info("cleanup finished", "mode", mode,
		"webhook_logs_deleted", report.WebhookLogsDeleted,
		"transactions_archived", report.TransactionsArchived,
		"errors", len(report.Errors),
		"duration_ms", report.TotalDurationMs)
	return report, nil
}

// CleanupScheduler fires Run on a fixed interval. Started and stopped from
// application lifecycle hooks.
type CleanupScheduler struct {
	cleanup CleanupCommands
	cfg     config.CleanupConfig
	logger  *slog.Logger
	started atomic.Bool
	stop    chan struct{}
	done    chan struct{}
}

func NewCleanupScheduler(cleanup CleanupCommands, cfg config.CleanupConfig, logger *slog.Logger) *CleanupScheduler {
	return &CleanupScheduler{
		cleanup: cleanup,
		cfg:     cfg,
		logger:  logger,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the schedule: one run right away, then one per interval.
// A second Start is a no-op.
func (s *CleanupScheduler) Start() {
	if !s.started.CompareAndSwap(false, true) {
		s.logger.Warn("cleanup scheduler already started, ignoring")
		return
	}

	if !s.cfg.ScheduleEnabled {
		s.logger.Info("cleanup scheduler disabled by configuration")
		close(s.done)
		return
	}

	interval := time.Duration(s.cfg.ScheduleIntervalHours) * time.Hour
	s.logger.Info("cleanup scheduler started", "interval", interval.String())

	go func() {
		defer close(s.done)
		s.tick()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.tick()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *CleanupScheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if _, err := s.cleanup.Run(ctx); err != nil {
		if errs.Is(err, ErrCleanupAlreadyRunning) {
			s.logger.Warn("skipping scheduled cleanup, previous run still active")
			return
		}
		s.logger.Error("scheduled cleanup failed", "error", err)
	}
}

func (s *CleanupScheduler) Stop() {
	if !s.started.Load() {
		return
	}
	close(s.stop)
	<-s.done
	s.logger.Info("cleanup scheduler stopped")
}
