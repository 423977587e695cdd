package queries

import (
	"context"

	"repaircoin/internal/domain/noshow"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/clock"
	"repaircoin/internal/pkg/errs"
)

var ErrCustomerNotFound = errs.New("customer not found")

// CustomerStatusView is the per-request booking view for a customer.
type CustomerStatusView struct {
	Address string
	ShopID  string
	noshow.BookingStatus
}

type CustomerReadStore interface {
	Find(ctx context.Context, address string) (*noshow.CustomerRecord, error)
}

type PolicyReadStore interface {
	Find(ctx context.Context, shopID string) (*noshow.Policy, error)
}

type HistoryReadStore interface {
	ListByCustomer(ctx context.Context, address string, limit int32) ([]*noshow.HistoryEntry, error)
}

type NoShowQueries interface {
	GetShopPolicy(ctx context.Context, shopID string) (noshow.Policy, error)
	GetCustomerStatus(ctx context.Context, address string) (*CustomerStatusView, error)
	GetCustomerHistory(ctx context.Context, address string, limit int32) ([]*noshow.HistoryEntry, error)
}

type noShowQueriesImpl struct {
	customers CustomerReadStore
	policies  PolicyReadStore
	history   HistoryReadStore
	clock     clock.Clock
}

func NewNoShowQueries(customers CustomerReadStore, policies PolicyReadStore, history HistoryReadStore, clk clock.Clock) NoShowQueries {
	return &noShowQueriesImpl{customers: customers, policies: policies, history: history, clock: clk}
}

// GetShopPolicy never fails on absence: a shop without a stored row gets the
// platform default.
func (q *noShowQueriesImpl) GetShopPolicy(ctx context.Context, shopID string) (noshow.Policy, error) {
	p, err := q.policies.Find(ctx, shopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return noshow.Default(shopID), nil
		}
		return noshow.Policy{}, errs.Wrap(err, "failed to load no-show policy")
	}
	return *p, nil
}

// GetCustomerStatus recomputes the booking view from the customers row and
// the applicable policy. Missing customers are a hard NotFound, unlike policy
// lookup which defaults silently.
func (q *noShowQueriesImpl) GetCustomerStatus(ctx context.Context, address string) (*CustomerStatusView, error) {
	rec, err := q.customers.Find(ctx, address)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrCustomerNotFound)
	}

	policy, err := q.GetShopPolicy(ctx, rec.ShopID)
	if err != nil {
		return nil, err
	}

	return &CustomerStatusView{
		Address:       rec.Address,
		ShopID:        rec.ShopID,
		BookingStatus: noshow.EvaluateStatus(*rec, policy, q.clock.Now()),
	}, nil
}

func (q *noShowQueriesImpl) GetCustomerHistory(ctx context.Context, address string, limit int32) ([]*noshow.HistoryEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	entries, err := q.history.ListByCustomer(ctx, address, limit)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load no-show history")
	}
	return entries, nil
}
