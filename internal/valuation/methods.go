package valuation

import (
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// Method names as they appear in the bundle and the rendered report.
const (
	MethodDCF       = "DCF"
	MethodPayback   = "Payback Time"
	MethodYield     = "Owner Earnings Yield"
	MethodGraham    = "Graham Value"
	MethodMultiples = "Multiples"
	MethodAsset     = "Asset-Based"
	MethodSOTP      = "SOTP"
	MethodDDM       = "DDM"
	MethodPEG       = "PEG Ratios"
)

// Func evaluates one method against a snapshot.
type Func func(snap metrics.Snapshot, growthRate float64, p Params) types.ModelResult

// Method pairs a method name with its evaluator. PerShare marks methods
// whose value is a per-share intrinsic estimate, usable for the target
// price range; the others produce years, yields or ratios.
type Method struct {
	Name     string
	PerShare bool
	Run      Func
}

// Methods returns the nine evaluators in report order. The slice is built
// fresh on every call so callers can't interfere with each other.
func Methods() []Method {
	return []Method{
		{Name: MethodDCF, PerShare: true, Run: single(DCF)},
		{Name: MethodPayback, Run: single(PaybackTime)},
		{Name: MethodYield, Run: single(OwnerEarningsYield)},
		{Name: MethodGraham, PerShare: true, Run: single(Graham)},
		{Name: MethodMultiples, Run: Multiples},
		{Name: MethodAsset, PerShare: true, Run: single(AssetBased)},
		{Name: MethodSOTP, PerShare: true, Run: single(SOTP)},
		{Name: MethodDDM, PerShare: true, Run: single(DDM)},
		{Name: MethodPEG, Run: PEGRatios},
	}
}

func single(f func(metrics.Snapshot, float64, Params) types.ValuationResult) Func {
	return func(snap metrics.Snapshot, growthRate float64, p Params) types.ModelResult {
		return types.ModelResult{Result: f(snap, growthRate, p)}
	}
}
