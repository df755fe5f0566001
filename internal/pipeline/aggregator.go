// Package pipeline turns pricing tiers into revenue series and plot geometry.
package pipeline

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/mrrgen/internal/model"
)

// ComputeBaseRevenue sums UnitPrice * Subscribers over all tiers.
// Sums run in decimal so cent prices add up exactly (9.99 x 100 = 999).
// Input is not validated; that is the job of whoever built the tiers.
// A NaN or infinite price poisons the total instead of panicking.
func ComputeBaseRevenue(tiers []model.PricingTier) float64 {
	total := decimal.Zero
	var nonFinite float64
	for _, t := range tiers {
		if math.IsNaN(t.UnitPrice) || math.IsInf(t.UnitPrice, 0) {
			nonFinite += t.UnitPrice * float64(t.Subscribers)
			continue
		}
		price := decimal.NewFromFloat(t.UnitPrice)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(t.Subscribers))))
	}
	f, _ := total.Float64()
	return f + nonFinite
}
