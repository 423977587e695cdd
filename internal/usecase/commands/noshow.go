package commands

import (
	"context"
	"log/slog"
	"time"

	"repaircoin/internal/domain/noshow"
	reqdto "repaircoin/internal/handler/dto/request"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/clock"
	"repaircoin/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound = errs.New("customer not found")
	ErrHistoryNotFound  = errs.New("no-show history entry not found")
	ErrDisputeRejected  = errs.New("dispute request rejected")
)

type CustomerRepository interface {
	Find(ctx context.Context, address string) (*noshow.CustomerRecord, error)
	UpdateNoShowState(ctx context.Context, address string, count int, t noshow.Tier, suspendedUntil *time.Time) error
	RecordSuccessfulAppointment(ctx context.Context, address string, defaultReset int) (*ResetOutcome, error)
}

// ResetOutcome reports the customer state after the single-statement deposit
// reset.
type ResetOutcome struct {
	Tier                 noshow.Tier
	SuccessfulSinceTier3 int
}

type HistoryRepository interface {
	Insert(ctx context.Context, e *noshow.HistoryEntry) error
	Find(ctx context.Context, id uuid.UUID) (*noshow.HistoryEntry, error)
	UpdateDispute(ctx context.Context, e *noshow.HistoryEntry) error
}

type RecordNoShowResult struct {
	Entry          *noshow.HistoryEntry
	NoShowCount    int
	Tier           noshow.Tier
	SuspendedUntil *time.Time
}

type AppointmentResult struct {
	Tier                 noshow.Tier
	SuccessfulSinceTier3 int
	DemotedToCaution     bool
}

type NoShowCommands interface {
	RecordNoShow(ctx context.Context, shopID string, req reqdto.RecordNoShowRequest) (*RecordNoShowResult, error)
	RecordSuccessfulAppointment(ctx context.Context, customerAddress string) (*AppointmentResult, error)
	OpenDispute(ctx context.Context, entryID uuid.UUID, customerAddress string, reason string) (*noshow.HistoryEntry, error)
	ResolveDispute(ctx context.Context, entryID uuid.UUID, approve bool) (*noshow.HistoryEntry, error)
}

type noShowUseCaseImpl struct {
	customerRepo CustomerRepository
	historyRepo  HistoryRepository
	policyRepo   PolicyRepository
	clock        clock.Clock
	logger       *slog.Logger
}

func NewNoShowUseCase(
	customerRepo CustomerRepository,
	historyRepo HistoryRepository,
	policyRepo PolicyRepository,
	clk clock.Clock,
	logger *slog.Logger,
) NoShowCommands {
	return &noShowUseCaseImpl{
		customerRepo: customerRepo,
		historyRepo:  historyRepo,
		policyRepo:   policyRepo,
		clock:        clk,
		logger:       logger,
	}
}

func (u *noShowUseCaseImpl) shopPolicy(ctx context.Context, shopID string) (noshow.Policy, error) {
	p, err := u.policyRepo.Find(ctx, shopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return noshow.Default(shopID), nil
		}
		return noshow.Policy{}, errs.Wrap(err, "failed to load no-show policy")
	}
	return *p, nil
}

// RecordNoShow appends the audit entry and advances the customer one step on
// the ladder under the shop's thresholds.
func (u *noShowUseCaseImpl) RecordNoShow(ctx context.Context, shopID string, req reqdto.RecordNoShowRequest) (*RecordNoShowResult, error) {
	rec, err := u.customerRepo.Find(ctx, req.CustomerAddress)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrCustomerNotFound)
	}

	policy, err := u.shopPolicy(ctx, shopID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	entry := &noshow.HistoryEntry{
		ID:               uuid.New(),
		ShopID:           shopID,
		CustomerAddress:  rec.Address,
		BookingReference: req.BookingReference,
		MarkedAt:         now,
	}
	if err := u.historyRepo.Insert(ctx, entry); err != nil {
		return nil, errs.Wrap(err, "failed to record no-show history")
	}

	newCount, newTier, suspendedUntil := noshow.AdvanceOnNoShow(*rec, policy, now)
	if err := u.customerRepo.UpdateNoShowState(ctx, rec.Address, newCount, newTier, suspendedUntil); err != nil {
		return nil, errs.Wrap(err, "failed to advance no-show state")
	}

	if newTier != rec.Tier && u.shouldNotify(policy, newTier) {
		u.logger.Info("customer crossed no-show threshold",
			"customer", rec.Address, "shop_id", shopID,
			"tier", newTier.String(), "no_show_count", newCount)
	}

	return &RecordNoShowResult{
		Entry:          entry,
		NoShowCount:    newCount,
		Tier:           newTier,
		SuspendedUntil: suspendedUntil,
	}, nil
}

func (u *noShowUseCaseImpl) shouldNotify(p noshow.Policy, t noshow.Tier) bool {
	switch t {
	case noshow.TierWarning:
		return p.NotifyOnWarning
	case noshow.TierCaution:
		return p.NotifyOnCaution
	case noshow.TierDepositRequired:
		return p.NotifyOnDeposit
	case noshow.TierSuspended:
		return p.NotifyOnSuspension
	default:
		return false
	}
}

// RecordSuccessfulAppointment applies the deposit reset rule: the counter
// moves only while the customer sits at deposit_required, and reaching the
// policy threshold demotes them one step to caution.
func (u *noShowUseCaseImpl) RecordSuccessfulAppointment(ctx context.Context, customerAddress string) (*AppointmentResult, error) {
	rec, err := u.customerRepo.Find(ctx, customerAddress)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrCustomerNotFound)
	}

	if rec.Tier != noshow.TierDepositRequired {
		return &AppointmentResult{
			Tier:                 rec.Tier,
			SuccessfulSinceTier3: rec.SuccessfulSinceTier3,
		}, nil
	}

	defaultReset := noshow.Default(rec.ShopID).DepositResetAfterSuccessful
	outcome, err := u.customerRepo.RecordSuccessfulAppointment(ctx, customerAddress, defaultReset)
	if err != nil {
		return nil, errs.Wrap(err, "failed to apply deposit reset")
	}
	if outcome == nil {
		// Lost a race with another transition; report the freshest state.
		return &AppointmentResult{
			Tier:                 rec.Tier,
			SuccessfulSinceTier3: rec.SuccessfulSinceTier3,
		}, nil
	}

	demoted := outcome.Tier == noshow.TierCaution
	if demoted {
		u.logger.Info("customer demoted after successful appointments",
			"customer", customerAddress, "tier", outcome.Tier.String())
	}
	return &AppointmentResult{
		Tier:                 outcome.Tier,
		SuccessfulSinceTier3: outcome.SuccessfulSinceTier3,
		DemotedToCaution:     demoted,
	}, nil
}

// OpenDispute lets the customer contest an entry inside the policy's dispute
// window.
func (u *noShowUseCaseImpl) OpenDispute(ctx context.Context, entryID uuid.UUID, customerAddress string, reason string) (*noshow.HistoryEntry, error) {
	entry, err := u.historyRepo.Find(ctx, entryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, errs.Mark(err, ErrHistoryNotFound)
	}
	if entry.CustomerAddress != customerAddress {
		// Do not leak other customers' entries.
		return nil, ErrHistoryNotFound
	}

	policy, err := u.shopPolicy(ctx, entry.ShopID)
	if err != nil {
		return nil, err
	}

	if err := entry.OpenDispute(reason, policy.DisputeWindowDays, u.clock.Now()); err != nil {
		return nil, errs.Join(ErrDisputeRejected, err)
	}
	if err := u.historyRepo.UpdateDispute(ctx, entry); err != nil {
		return nil, errs.Wrap(err, "failed to store dispute")
	}
	return entry, nil
}

// ResolveDispute closes a pending dispute. Approval un-counts the no-show and
// re-evaluates the customer's tier downward.
func (u *noShowUseCaseImpl) ResolveDispute(ctx context.Context, entryID uuid.UUID, approve bool) (*noshow.HistoryEntry, error) {
	entry, err := u.historyRepo.Find(ctx, entryID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHistoryNotFound
		}
		return nil, errs.Mark(err, ErrHistoryNotFound)
	}

	if err := entry.ResolveDispute(approve, u.clock.Now()); err != nil {
		return nil, errs.Join(ErrDisputeRejected, err)
	}
	if err := u.historyRepo.UpdateDispute(ctx, entry); err != nil {
		return nil, errs.Wrap(err, "failed to store dispute resolution")
	}

	if approve {
		if err := u.rollBackNoShow(ctx, entry); err != nil {
			return nil, err
		}
	}
	return entry, nil
}

func (u *noShowUseCaseImpl) rollBackNoShow(ctx context.Context, entry *noshow.HistoryEntry) error {
	rec, err := u.customerRepo.Find(ctx, entry.CustomerAddress)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCustomerNotFound
		}
		return errs.Mark(err, ErrCustomerNotFound)
	}

	policy, err := u.shopPolicy(ctx, entry.ShopID)
	if err != nil {
		return err
	}

	newCount := rec.NoShowCount - 1
	if newCount < 0 {
		newCount = 0
	}
	newTier := noshow.TierForCount(newCount, policy)
	suspendedUntil := rec.BookingSuspendedUntil
	if newTier != noshow.TierSuspended {
		suspendedUntil = nil
	}

	if err := u.customerRepo.UpdateNoShowState(ctx, rec.Address, newCount, newTier, suspendedUntil); err != nil {
		return errs.Wrap(err, "failed to roll back no-show state")
	}
	u.logger.Info("no-show rolled back after approved dispute",
		"customer", rec.Address, "entry_id", entry.ID.String(), "tier", newTier.String())
	return nil
}
