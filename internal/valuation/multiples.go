package valuation

import (
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// Sub-metric keys used by the multiples and PEG methods.
const (
	ComponentPE       = "PE"
	ComponentEVEBITDA = "EV_EBITDA"
)

// Multiples scores the P/E and EV/EBITDA ratios against independent
// threshold tables. Each ratio gets its own verdict; the rolled-up signal
// is the P/E verdict, with EV/EBITDA standing in when earnings make P/E
// meaningless.
func Multiples(snap metrics.Snapshot, _ float64, p Params) types.ModelResult {
	pe := thresholdResult(snap.PERatio, p.PEBuyBelow, p.PEHoldBelow)
	ev := thresholdResult(snap.EVToEBITDA, p.EVEBITDABuyBelow, p.EVEBITDAHoldBelow)

	rollup := pe
	if rollup.Signal == types.SignalNA {
		rollup = ev
	}

	return types.ModelResult{
		Result: rollup,
		Components: map[string]types.ValuationResult{
			ComponentPE:       pe,
			ComponentEVEBITDA: ev,
		},
	}
}

// thresholdResult scores a ratio where lower is cheaper: BUY below the
// first breakpoint, HOLD below the second, SELL above. A non-positive
// ratio means the metric is absent or meaningless.
func thresholdResult(ratio, buyBelow, holdBelow float64) types.ValuationResult {
	if ratio <= 0 {
		return notApplicable()
	}
	var signal types.Signal
	switch {
	case ratio < buyBelow:
		signal = types.SignalBuy
	case ratio < holdBelow:
		signal = types.SignalHold
	default:
		signal = types.SignalSell
	}
	return types.ValuationResult{Value: ratio, Signal: signal}
}
