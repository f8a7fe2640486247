package valuation

import (
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// SOTP is a simplified sum-of-the-parts: enterprise value adjusted for net
// cash, spread over the share count. A true segment-level SOTP needs
// segment disclosures the snapshot does not model.
func SOTP(snap metrics.Snapshot, _ float64, p Params) types.ValuationResult {
	if snap.EnterpriseValue <= 0 || snap.SharesOutstanding <= 0 {
		return notApplicable()
	}

	value := (snap.EnterpriseValue + snap.Cash - snap.Debt) / snap.SharesOutstanding

	return types.ValuationResult{
		Value:  value,
		Signal: marginSignal(value, snap.CurrentPrice, p.MarginThreshold),
	}
}
