package valuation

import "fin-analyst/internal/types"

// marginSignal applies the shared margin rule: the gap between intrinsic
// value and market price, relative to price. Strict inequalities, so a gap
// of exactly +-threshold is HOLD.
func marginSignal(value, price, threshold float64) types.Signal {
	if price <= 0 {
		return types.SignalNA
	}
	margin := (value - price) / price
	switch {
	case margin > threshold:
		return types.SignalBuy
	case margin < -threshold:
		return types.SignalSell
	default:
		return types.SignalHold
	}
}

func notApplicable() types.ValuationResult {
	return types.ValuationResult{Value: 0, Signal: types.SignalNA}
}
