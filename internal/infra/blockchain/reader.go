package blockchain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"repaircoin/internal/pkg/config"
	"repaircoin/internal/pkg/errs"
	"repaircoin/internal/usecase/queries"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shopspring/decimal"
)

// rcgTokenDecimals is the on-chain precision of the RCG governance token.
const rcgTokenDecimals = 18

// Minimal read surface of the token contract. Balance and supply only; all
// transfer paths live outside this repo.
const rcgABI = `[
  {"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"}
]`

var ErrInvalidAddress = errs.New("invalid wallet address")

// Reader reads RCG balances from the chain. Errors are propagated, never
// swallowed into a zero balance: callers must be able to distinguish a
// confirmed-empty wallet from a failed lookup.
type Reader struct {
	client   *ethclient.Client
	contract *bind.BoundContract
	address  common.Address
	cfg      config.BlockchainConfig
}

func NewReader(cfg config.BlockchainConfig) (*Reader, func(), error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to the RPC endpoint: %w", err)
	}

	if !common.IsHexAddress(cfg.RCGContractAddress) {
		client.Close()
		return nil, nil, fmt.Errorf("invalid RCG contract address: %s", cfg.RCGContractAddress)
	}
	contractAddr := common.HexToAddress(cfg.RCGContractAddress)

	parsedABI, err := abi.JSON(strings.NewReader(rcgABI))
	if err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("failed to parse RCG token ABI: %w", err)
	}

	reader := &Reader{
		client:   client,
		contract: bind.NewBoundContract(contractAddr, parsedABI, client, client, client),
		address:  contractAddr,
		cfg:      cfg,
	}
	cleanup := func() { client.Close() }
	return reader, cleanup, nil
}

// Balance returns the RCG holding of a wallet as a whole-token decimal.
func (r *Reader) Balance(ctx context.Context, wallet string) (decimal.Decimal, error) {
	if !common.IsHexAddress(wallet) {
		return decimal.Zero, ErrInvalidAddress
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	var out []any
	err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "balanceOf", common.HexToAddress(wallet))
	if err != nil {
		return decimal.Zero, errs.Wrap(err, "balanceOf call failed")
	}

	raw := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return decimal.NewFromBigInt(raw, -rcgTokenDecimals), nil
}

// ContractStats reads contract-level supply numbers.
func (r *Reader) ContractStats(ctx context.Context) (*queries.ContractStats, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout)
	defer cancel()

	var out []any
	err := r.contract.Call(&bind.CallOpts{Context: ctx}, &out, "totalSupply")
	if err != nil {
		return nil, errs.Wrap(err, "totalSupply call failed")
	}

	raw := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	return &queries.ContractStats{
		ContractAddress: r.address.Hex(),
		TotalSupply:     decimal.NewFromBigInt(raw, -rcgTokenDecimals),
	}, nil
}
