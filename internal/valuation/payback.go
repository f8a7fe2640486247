package valuation

import (
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// paybackCapYears bounds the simulation; a business that cannot repay its
// market cap within a century is treated as never recovering.
const paybackCapYears = 100

// PaybackTime simulates owner earnings compounding year over year until the
// cumulative sum covers the market cap. The value is the number of years
// simulated, capped at paybackCapYears.
func PaybackTime(snap metrics.Snapshot, growthRate float64, p Params) types.ValuationResult {
	if snap.OwnerEarnings <= 0 {
		return notApplicable()
	}

	cumulative := 0.0
	years := 0
	earnings := snap.OwnerEarnings
	for cumulative < snap.MarketCap && years < paybackCapYears {
		years++
		earnings *= 1 + growthRate
		cumulative += earnings
	}

	var signal types.Signal
	switch {
	case years <= p.PaybackBuyYears:
		signal = types.SignalBuy
	case years <= p.PaybackHoldYears:
		signal = types.SignalHold
	default:
		signal = types.SignalSell
	}

	return types.ValuationResult{Value: float64(years), Signal: signal}
}
