package tier

import (
	"github.com/shopspring/decimal"
)

// Tier is the partner level granted by a shop's RCG governance-token holding.
// Levels partition [0, inf) with inclusive lower bounds; higher tiers buy RCN
// at a lower per-token price.
type Tier string

const (
	TierNone     Tier = "none"
	TierStandard Tier = "standard"
	TierPremium  Tier = "premium"
	TierElite    Tier = "elite"
)

var (
	standardMin = decimal.NewFromInt(10_000)
	premiumMin  = decimal.NewFromInt(50_000)
	eliteMin    = decimal.NewFromInt(200_000)

	basePrice    = decimal.RequireFromString("0.10")
	premiumPrice = decimal.RequireFromString("0.08")
	elitePrice   = decimal.RequireFromString("0.06")
)

var tierRank = map[Tier]int{
	TierNone:     0,
	TierStandard: 1,
	TierPremium:  2,
	TierElite:    3,
}

// Rank gives the total order none < standard < premium < elite.
func (t Tier) Rank() int {
	return tierRank[t]
}

func (t Tier) String() string {
	return string(t)
}

// Info is the derived tier view for a shop: never persisted as truth, only
// cached onto the shop row. The live balance is always authoritative.
type Info struct {
	Tier     Tier
	RCNPrice decimal.Decimal
}

// Classify maps an RCG balance to a tier and RCN purchase price. Total over
// all inputs: negative balances clamp to the lowest tier.
func Classify(balance decimal.Decimal) Info {
	switch {
	case balance.GreaterThanOrEqual(eliteMin):
		return Info{Tier: TierElite, RCNPrice: elitePrice}
	case balance.GreaterThanOrEqual(premiumMin):
		return Info{Tier: TierPremium, RCNPrice: premiumPrice}
	case balance.GreaterThanOrEqual(standardMin):
		return Info{Tier: TierStandard, RCNPrice: basePrice}
	default:
		return Info{Tier: TierNone, RCNPrice: basePrice}
	}
}

// ClassifyString parses a string-encoded balance and classifies it. An
// unparseable input fails open to the least-privileged tier: this gates a
// purchase price display, not a security boundary.
func ClassifyString(balance string) Info {
	d, err := decimal.NewFromString(balance)
	if err != nil {
		return Info{Tier: TierNone, RCNPrice: basePrice}
	}
	return Classify(d)
}

// Parse returns the tier for a stored string, defaulting to none for
// unrecognized values.
func Parse(s string) Tier {
	t := Tier(s)
	if _, ok := tierRank[t]; !ok {
		return TierNone
	}
	return t
}
