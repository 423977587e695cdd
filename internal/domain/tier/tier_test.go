//go:build unit

package tier_test

import (
	"testing"

	"repaircoin/internal/domain/tier"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		balance   string
		wantTier  tier.Tier
		wantPrice string
	}{
		{name: "zero balance", balance: "0", wantTier: tier.TierNone, wantPrice: "0.10"},
		{name: "negative balance clamps to none", balance: "-500", wantTier: tier.TierNone, wantPrice: "0.10"},
		{name: "just below standard", balance: "9999.99", wantTier: tier.TierNone, wantPrice: "0.10"},
		{name: "standard lower bound inclusive", balance: "10000", wantTier: tier.TierStandard, wantPrice: "0.10"},
		{name: "mid standard", balance: "25000", wantTier: tier.TierStandard, wantPrice: "0.10"},
		{name: "just below premium", balance: "49999.99", wantTier: tier.TierStandard, wantPrice: "0.10"},
		{name: "premium lower bound inclusive", balance: "50000", wantTier: tier.TierPremium, wantPrice: "0.08"},
		{name: "just below elite", balance: "199999.99", wantTier: tier.TierPremium, wantPrice: "0.08"},
		{name: "elite lower bound inclusive", balance: "200000", wantTier: tier.TierElite, wantPrice: "0.06"},
		{name: "far above elite", balance: "10000000", wantTier: tier.TierElite, wantPrice: "0.06"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			info := tier.Classify(decimal.RequireFromString(c.balance))

			assert.Equal(t, c.wantTier, info.Tier)
			assert.Equal(t, c.wantPrice, info.RCNPrice.StringFixed(2))
		})
	}
}

func TestClassifyString(t *testing.T) {
	t.Run("parses and classifies", func(t *testing.T) {
		info := tier.ClassifyString("50000")

		assert.Equal(t, tier.TierPremium, info.Tier)
		assert.Equal(t, "0.08", info.RCNPrice.StringFixed(2))
	})

	t.Run("unparseable input fails open to none", func(t *testing.T) {
		info := tier.ClassifyString("not-a-number")

		assert.Equal(t, tier.TierNone, info.Tier)
		assert.Equal(t, "0.10", info.RCNPrice.StringFixed(2))
	})

	t.Run("empty input fails open to none", func(t *testing.T) {
		info := tier.ClassifyString("")

		assert.Equal(t, tier.TierNone, info.Tier)
	})
}

func TestParse(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  tier.Tier
	}{
		{name: "known tier", input: "premium", want: tier.TierPremium},
		{name: "unknown value defaults to none", input: "platinum", want: tier.TierNone},
		{name: "empty defaults to none", input: "", want: tier.TierNone},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, tier.Parse(c.input))
		})
	}
}

func TestRank(t *testing.T) {
	t.Run("rank is strictly increasing", func(t *testing.T) {
		assert.Less(t, tier.TierNone.Rank(), tier.TierStandard.Rank())
		assert.Less(t, tier.TierStandard.Rank(), tier.TierPremium.Rank())
		assert.Less(t, tier.TierPremium.Rank(), tier.TierElite.Rank())
	})
}
