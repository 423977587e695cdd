package repository

import (
	"context"

	"repaircoin/internal/domain/tier"
	"repaircoin/internal/infra"
	"repaircoin/internal/pkg/pgconv"
	"repaircoin/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type ShopRepository struct {
	db *pgxpool.Pool
}

func NewShopRepository(db *pgxpool.Pool) *ShopRepository {
	return &ShopRepository{db: db}
}

const findShopSQL = `
SELECT shop_id, wallet_address, rcg_tier, rcg_balance, updated_at
FROM shops
WHERE shop_id = $1`

func (r *ShopRepository) Find(ctx context.Context, shopID string) (*queries.ShopSnapshot, error) {
	var (
		row       queries.ShopSnapshot
		rcgTier   string
		balance   pgtype.Numeric
		updatedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, findShopSQL, shopID).Scan(
		&row.ShopID, &row.WalletAddress, &rcgTier, &balance, &updatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("shop not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shop", err)
	}

	row.RCGTier = tier.Parse(rcgTier)
	row.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	row.RCGBalance, err = pgconv.DecimalFromNumeric(balance)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert shop balance", err)
	}
	return &row, nil
}

const updateShopTierSQL = `
UPDATE shops
SET rcg_tier = $2, rcg_balance = $3, updated_at = now()
WHERE shop_id = $1`

// UpdateTier caches the derived tier onto the shop row. The live balance
// stays the source of truth.
func (r *ShopRepository) UpdateTier(ctx context.Context, shopID string, t tier.Tier, balance decimal.Decimal) error {
	tag, err := r.db.Exec(ctx, updateShopTierSQL, shopID, t.String(), pgconv.DecimalToNumeric(balance))
	if err != nil {
		return infra.WrapRepoErr("failed to update shop tier", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shop not found", nil, infra.KindNotFound)
	}
	return nil
}
