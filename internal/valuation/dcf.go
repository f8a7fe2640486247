package valuation

import (
	"math"

	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// dcfDecay is the per-year geometric decay applied to the growth rate once
// the projection moves past the explicit-growth window.
const (
	dcfDecay        = 0.9
	dcfGrowthWindow = 5
)

// DCF projects free cash flow forward and discounts it back to a per-share
// intrinsic value. Years 1..5 compound the base FCF at the growth rate;
// later years decay the rate geometrically (floored at terminal growth) and
// compound off the previous projection, so the tail is a recurrence, not a
// closed form. Terminal value is Gordon growth on the final projection.
func DCF(snap metrics.Snapshot, growthRate float64, p Params) types.ValuationResult {
	fcf := snap.FreeCashFlowTTM
	shares := snap.SharesOutstanding
	if fcf <= 0 || shares <= 0 {
		return notApplicable()
	}
	// Gordon growth divides by (discount - terminal growth).
	if p.DiscountRate <= p.TerminalGrowth {
		return notApplicable()
	}

	projections := make([]float64, 0, p.ProjectionYears)
	for year := 1; year <= p.ProjectionYears; year++ {
		var projected float64
		if year <= dcfGrowthWindow {
			projected = fcf * math.Pow(1+growthRate, float64(year))
		} else {
			adjGrowth := growthRate * math.Pow(dcfDecay, float64(year-dcfGrowthWindow))
			if adjGrowth < p.TerminalGrowth {
				adjGrowth = p.TerminalGrowth
			}
			projected = projections[len(projections)-1] * (1 + adjGrowth)
		}
		projections = append(projections, projected)
	}

	var pvFCF float64
	for i, projected := range projections {
		pvFCF += projected / math.Pow(1+p.DiscountRate, float64(i+1))
	}

	terminalFCF := projections[len(projections)-1] * (1 + p.TerminalGrowth)
	terminalValue := terminalFCF / (p.DiscountRate - p.TerminalGrowth)
	pvTerminal := terminalValue / math.Pow(1+p.DiscountRate, float64(p.ProjectionYears))

	totalValue := pvFCF + pvTerminal + snap.Cash - snap.Debt
	intrinsic := totalValue / shares

	return types.ValuationResult{
		Value:  intrinsic,
		Signal: marginSignal(intrinsic, snap.CurrentPrice, p.MarginThreshold),
	}
}
