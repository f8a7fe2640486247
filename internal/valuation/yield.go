package valuation

import (
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// OwnerEarningsYield is the ten-cap rule: owner earnings as a percentage of
// market cap. The value is the yield in percent, not a price.
func OwnerEarningsYield(snap metrics.Snapshot, _ float64, p Params) types.ValuationResult {
	if snap.MarketCap <= 0 {
		return notApplicable()
	}

	yieldPct := snap.OwnerEarnings / snap.MarketCap * 100

	var signal types.Signal
	switch {
	case yieldPct >= p.YieldBuyAbove:
		signal = types.SignalBuy
	case yieldPct >= p.YieldHoldAbove:
		signal = types.SignalHold
	default:
		signal = types.SignalSell
	}

	return types.ValuationResult{Value: yieldPct, Signal: signal}
}
