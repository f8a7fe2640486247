package valuation

import (
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// grahamNumerator is the 4.4 constant from Graham's revised formula, the
// average AAA corporate bond yield of his base period. The denominator is
// the current AAA yield supplied through Params.
const (
	grahamBase         = 8.5
	grahamGrowthWeight = 2.0
	grahamNumerator    = 4.4
)

// Graham computes V = EPS x (8.5 + 2g) x 4.4/Y with g the growth rate as a
// percentage figure (5, not 0.05).
func Graham(snap metrics.Snapshot, growthRate float64, p Params) types.ValuationResult {
	if snap.EPS <= 0 || p.AAAYield <= 0 {
		return notApplicable()
	}

	growthPct := growthRate * 100
	intrinsic := snap.EPS * (grahamBase + grahamGrowthWeight*growthPct) * grahamNumerator / p.AAAYield

	return types.ValuationResult{
		Value:  intrinsic,
		Signal: marginSignal(intrinsic, snap.CurrentPrice, p.MarginThreshold),
	}
}
