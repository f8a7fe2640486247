package valuation

import (
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// PEG sub-metric keys.
const (
	ComponentPEPEG   = "PE_PEG"
	ComponentPSPEG   = "PS_PEG"
	ComponentPBPEG   = "PB_PEG"
	ComponentPFCFPEG = "PFCF_PEG"
)

// PEGRatios divides each price multiple by the growth rate in percent. A
// sub-metric with a non-positive underlying ratio (or non-positive growth)
// is recorded as 0 and excluded; the rolled-up signal scores the average of
// the valid entries.
func PEGRatios(snap metrics.Snapshot, growthRate float64, p Params) types.ModelResult {
	growthPct := growthRate * 100

	pFCF := 0.0
	if snap.MarketCap > 0 && snap.FreeCashFlowTTM > 0 {
		pFCF = snap.MarketCap / snap.FreeCashFlowTTM
	}

	ratios := map[string]float64{
		ComponentPEPEG:   pegOf(snap.PERatio, growthPct),
		ComponentPSPEG:   pegOf(snap.PriceToSales, growthPct),
		ComponentPBPEG:   pegOf(snap.PriceToBook, growthPct),
		ComponentPFCFPEG: pegOf(pFCF, growthPct),
	}

	components := make(map[string]types.ValuationResult, len(ratios))
	sum, valid := 0.0, 0
	for _, name := range []string{ComponentPEPEG, ComponentPSPEG, ComponentPBPEG, ComponentPFCFPEG} {
		peg := ratios[name]
		components[name] = pegResult(peg, p)
		if peg > 0 {
			sum += peg
			valid++
		}
	}

	if valid == 0 {
		return types.ModelResult{Result: notApplicable(), Components: components}
	}

	avg := sum / float64(valid)
	return types.ModelResult{Result: pegResult(avg, p), Components: components}
}

func pegOf(ratio, growthPct float64) float64 {
	if ratio <= 0 || growthPct <= 0 {
		return 0
	}
	return ratio / growthPct
}

func pegResult(peg float64, p Params) types.ValuationResult {
	if peg <= 0 {
		return notApplicable()
	}
	var signal types.Signal
	switch {
	case peg < p.PEGBuyBelow:
		signal = types.SignalBuy
	case peg < p.PEGHoldBelow:
		signal = types.SignalHold
	default:
		signal = types.SignalSell
	}
	return types.ValuationResult{Value: peg, Signal: signal}
}
