package valuation

import (
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// AssetBased values the company at book value per share and signals off the
// price-to-book ratio directly rather than the margin rule.
func AssetBased(snap metrics.Snapshot, _ float64, p Params) types.ValuationResult {
	if snap.BookValue <= 0 {
		return notApplicable()
	}

	var signal types.Signal
	switch {
	case snap.PriceToBook < p.PBBuyBelow:
		signal = types.SignalBuy
	case snap.PriceToBook < p.PBHoldBelow:
		signal = types.SignalHold
	default:
		signal = types.SignalSell
	}

	return types.ValuationResult{Value: snap.BookValue, Signal: signal}
}
