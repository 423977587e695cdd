package queries

import (
	"context"
	"log/slog"
	"time"

	"repaircoin/internal/domain/tier"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrShopNotFound = errs.New("shop not found")

// ShopSnapshot is the read-side projection of a shops row.
type ShopSnapshot struct {
	ShopID        string
	WalletAddress string
	RCGTier       tier.Tier
	RCGBalance    decimal.Decimal
	UpdatedAt     time.Time
}

// ShopTierView is the derived tier for a shop. Stale is set when the live
// balance read failed and cached values were served instead.
type ShopTierView struct {
	ShopID        string
	WalletAddress string
	RCGBalance    string
	Tier          tier.Tier
	RCNPrice      string
	Stale         bool
}

// ContractStats is the contract-level supply view for admin dashboards.
type ContractStats struct {
	ContractAddress string
	TotalSupply     decimal.Decimal
}

type ShopReadStore interface {
	Find(ctx context.Context, shopID string) (*ShopSnapshot, error)
}

// ShopTierCache persists the derived tier back onto the shop row. Cache only;
// the live balance stays authoritative.
type ShopTierCache interface {
	UpdateTier(ctx context.Context, shopID string, t tier.Tier, balance decimal.Decimal) error
}

// BalanceReader is the blockchain SDK surface this core consumes. A failed
// read is an error, never a silent zero balance.
type BalanceReader interface {
	Balance(ctx context.Context, wallet string) (decimal.Decimal, error)
	ContractStats(ctx context.Context) (*ContractStats, error)
}

type TierQueries interface {
	GetShopTier(ctx context.Context, shopID string) (*ShopTierView, error)
	GetContractStats(ctx context.Context) (*ContractStats, error)
}

type tierQueriesImpl struct {
	shops  ShopReadStore
	cache  ShopTierCache
	reader BalanceReader
	logger *slog.Logger
}

func NewTierQueries(shops ShopReadStore, cache ShopTierCache, reader BalanceReader, logger *slog.Logger) TierQueries {
	return &tierQueriesImpl{shops: shops, cache: cache, reader: reader, logger: logger}
}

// GetShopTier classifies the shop's live RCG balance. When the chain read
// fails the cached tier is served unchanged: a lookup failure must never
// downgrade a shop.
func (q *tierQueriesImpl) GetShopTier(ctx context.Context, shopID string) (*ShopTierView, error) {
	shop, err := q.shops.Find(ctx, shopID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrShopNotFound
		}
		return nil, errs.Mark(err, ErrShopNotFound)
	}

	balance, err := q.reader.Balance(ctx, shop.WalletAddress)
	if err != nil {
		q.logger.Warn("balance read failed, serving cached tier",
			"shop_id", shopID, "error", err.Error())
		cached := tier.Classify(shop.RCGBalance)
		return &ShopTierView{
			ShopID:        shop.ShopID,
			WalletAddress: shop.WalletAddress,
			RCGBalance:    shop.RCGBalance.String(),
			Tier:          shop.RCGTier,
			RCNPrice:      cached.RCNPrice.StringFixed(2),
			Stale:         true,
		}, nil
	}

	info := tier.Classify(balance)
	if err := q.cache.UpdateTier(ctx, shopID, info.Tier, balance); err != nil {
		// Cache refresh is best-effort; the derived view is still correct.
		q.logger.Warn("failed to cache shop tier", "shop_id", shopID, "error", err.Error())
	}

	return &ShopTierView{
		ShopID:        shop.ShopID,
		WalletAddress: shop.WalletAddress,
		RCGBalance:    balance.String(),
		Tier:          info.Tier,
		RCNPrice:      info.RCNPrice.StringFixed(2),
	}, nil
}

func (q *tierQueriesImpl) GetContractStats(ctx context.Context) (*ContractStats, error) {
	stats, err := q.reader.ContractStats(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to read contract stats")
	}
	return stats, nil
}
