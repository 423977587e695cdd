package commands

import (
	"context"
	"log/slog"

	"repaircoin/internal/domain/noshow"
	reqdto "repaircoin/internal/handler/dto/request"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrPolicyValidation = errs.New("policy validation error")

type PolicyRepository interface {
	Find(ctx context.Context, shopID string) (*noshow.Policy, error)
	Upsert(ctx context.Context, p noshow.Policy) error
}

type PolicyCommands interface {
	UpdateShopPolicy(ctx context.Context, shopID string, req reqdto.UpdateNoShowPolicyRequest) (noshow.Policy, error)
}

type policyUseCaseImpl struct {
	policyRepo PolicyRepository
	logger     *slog.Logger
}

func NewPolicyUseCase(policyRepo PolicyRepository, logger *slog.Logger) PolicyCommands {
	return &policyUseCaseImpl{policyRepo: policyRepo, logger: logger}
}

// UpdateShopPolicy merges the partial update over the shop's current policy
// (or the platform default) and writes the result only if the whole merged
// policy validates. No partial application on failure.
func (u *policyUseCaseImpl) UpdateShopPolicy(ctx context.Context, shopID string, req reqdto.UpdateNoShowPolicyRequest) (noshow.Policy, error) {
	current, err := u.policyRepo.Find(ctx, shopID)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			return noshow.Policy{}, errs.Wrap(err, "failed to load current policy")
		}
		def := noshow.Default(shopID)
		current = &def
	}

	merged := current.Apply(toPolicyPatch(req))
	// shopID is immutable through the update path.
	merged.ShopID = shopID

	if err := merged.Validate(); err != nil {
		return noshow.Policy{}, errs.Join(ErrPolicyValidation, err)
	}

	if err := u.policyRepo.Upsert(ctx, merged); err != nil {
		return noshow.Policy{}, errs.Wrap(err, "failed to store policy")
	}

	u.logger.Info("no-show policy updated", "shop_id", shopID)
	return merged, nil
}

func toPolicyPatch(req reqdto.UpdateNoShowPolicyRequest) noshow.Patch {
	patch := noshow.Patch{
		CautionThreshold:            req.CautionThreshold,
		DepositThreshold:            req.DepositThreshold,
		SuspensionThreshold:         req.SuspensionThreshold,
		CautionAdvanceBookingHours:  req.CautionAdvanceBookingHours,
		DepositAdvanceBookingHours:  req.DepositAdvanceBookingHours,
		RedemptionCapPercent:        req.RedemptionCapPercent,
		SuspensionDays:              req.SuspensionDays,
		GracePeriodMinutes:          req.GracePeriodMinutes,
		DepositResetAfterSuccessful: req.DepositResetAfterSuccessful,
		DisputeWindowDays:           req.DisputeWindowDays,
		NotifyOnWarning:             req.NotifyOnWarning,
		NotifyOnCaution:             req.NotifyOnCaution,
		NotifyOnDeposit:             req.NotifyOnDeposit,
		NotifyOnSuspension:          req.NotifyOnSuspension,
	}
	if req.DepositAmount != nil {
		amount := decimal.NewFromFloat(*req.DepositAmount)
		patch.DepositAmount = &amount
	}
	return patch
}
