package valuation

import (
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// ddmGrowthGap keeps the growth rate strictly under the required return so
// the Gordon denominator stays positive.
const ddmGrowthGap = 0.01

// DDM applies the Gordon growth model to the dividend stream implied by the
// current yield. Non-dividend payers are N/A.
func DDM(snap metrics.Snapshot, growthRate float64, p Params) types.ValuationResult {
	if snap.DividendYield <= 0 {
		return notApplicable()
	}

	annualDividend := snap.CurrentPrice * snap.DividendYield
	g := growthRate
	if max := p.RequiredReturn - ddmGrowthGap; g > max {
		g = max
	}
	if p.RequiredReturn-g <= 0 {
		return notApplicable()
	}

	value := annualDividend * (1 + g) / (p.RequiredReturn - g)

	return types.ValuationResult{
		Value:  value,
		Signal: marginSignal(value, snap.CurrentPrice, p.MarginThreshold),
	}
}
