package response

import (
	"repaircoin/internal/usecase/queries"
)

type ShopTierResponse struct {
	ShopID        string `json:"shopId"`
	WalletAddress string `json:"walletAddress"`
	RCGBalance    string `json:"rcgBalance"`
	Tier          string `json:"tier"`
	RCNPrice      string `json:"rcnPrice"`
	Stale         bool   `json:"stale,omitempty"`
}

type ContractStatsResponse struct {
	ContractAddress string `json:"contractAddress"`
	TotalSupply     string `json:"totalSupply"`
}

func FromShopTierView(v *queries.ShopTierView) *ShopTierResponse {
	return &ShopTierResponse{
		ShopID:        v.ShopID,
		WalletAddress: v.WalletAddress,
		RCGBalance:    v.RCGBalance,
		Tier:          v.Tier.String(),
		RCNPrice:      v.RCNPrice,
		Stale:         v.Stale,
	}
}

func FromContractStats(s *queries.ContractStats) *ContractStatsResponse {
	return &ContractStatsResponse{
		ContractAddress: s.ContractAddress,
		TotalSupply:     s.TotalSupply.String(),
	}
}
