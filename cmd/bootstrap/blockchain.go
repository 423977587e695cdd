package bootstrap

import (
	"context"

	"repaircoin/internal/infra/blockchain"
	"repaircoin/internal/pkg/config"
	"repaircoin/internal/usecase/queries"

	"go.uber.org/fx"
)

var BlockchainModule = fx.Module("blockchain",
	fx.Provide(
		fx.Annotate(
			NewBalanceReader,
			fx.As(new(queries.BalanceReader)),
		),
	),
)

func NewBalanceReader(lc fx.Lifecycle, cfg config.BlockchainConfig) (*blockchain.Reader, error) {
	reader, cleanup, err := blockchain.NewReader(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return reader, nil
}
