package valuation

import (
	"math"
	"testing"

	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

// expectedDCF recomputes the projection independently of the production
// code: explicit compounding for the first five years, then the decayed
// recurrence, then discounting and Gordon terminal value.
func expectedDCF(fcf, growthRate, discountRate, terminalGrowth float64, years int, cash, debt, shares float64) float64 {
	proj := make([]float64, years)
	for i := 1; i <= years; i++ {
		if i <= 5 {
			proj[i-1] = fcf * math.Pow(1+growthRate, float64(i))
		} else {
			adj := growthRate * math.Pow(0.9, float64(i-5))
			if adj < terminalGrowth {
				adj = terminalGrowth
			}
			proj[i-1] = proj[i-2] * (1 + adj)
		}
	}
	pv := 0.0
	for i, p := range proj {
		pv += p / math.Pow(1+discountRate, float64(i+1))
	}
	terminal := proj[years-1] * (1 + terminalGrowth) / (discountRate - terminalGrowth)
	pv += terminal / math.Pow(1+discountRate, float64(years))
	return (pv + cash - debt) / shares
}

func TestDCFMatchesClosedFormRecomputation(t *testing.T) {
	snap := metrics.Snapshot{
		Ticker:            "TEST",
		CurrentPrice:      10,
		SharesOutstanding: 100,
		FreeCashFlowTTM:   100,
	}
	p := DefaultParams()

	got := DCF(snap, 0.10, p)
	want := expectedDCF(100, 0.10, 0.10, 0.03, 10, 0, 0, 100)

	if math.Abs(got.Value-want) > 1e-6 {
		t.Errorf("Expected intrinsic value %.8f, got %.8f", want, got.Value)
	}
	// With a per-share value well above 10 the margin rule must say BUY.
	if got.Signal != types.SignalBuy {
		t.Errorf("Expected BUY, got %s", got.Signal)
	}
}

func TestDCFTailIsARecurrence(t *testing.T) {
	// Year 6 must compound off the year-5 projection with the decayed
	// rate, not off the base FCF with a closed form.
	snap := metrics.Snapshot{
		CurrentPrice:      50,
		SharesOutstanding: 1,
		FreeCashFlowTTM:   100,
	}
	p := DefaultParams()
	p.ProjectionYears = 6

	got := DCF(snap, 0.10, p)

	year5 := 100 * math.Pow(1.10, 5)
	year6 := year5 * (1 + 0.10*0.9)
	pv := 0.0
	for i, v := range []float64{100 * 1.10, 100 * math.Pow(1.10, 2), 100 * math.Pow(1.10, 3), 100 * math.Pow(1.10, 4), year5, year6} {
		pv += v / math.Pow(1.10, float64(i+1))
	}
	terminal := year6 * 1.03 / (0.10 - 0.03)
	want := pv + terminal/math.Pow(1.10, 6)

	if math.Abs(got.Value-want) > 1e-6 {
		t.Errorf("Expected %.8f, got %.8f", want, got.Value)
	}
}

func TestDCFGrowthFloor(t *testing.T) {
	// A tiny growth rate decays below terminal growth immediately; the
	// floor keeps the tail compounding at terminal growth.
	snap := metrics.Snapshot{
		CurrentPrice:      1,
		SharesOutstanding: 1,
		FreeCashFlowTTM:   100,
	}
	p := DefaultParams()

	got := DCF(snap, 0.001, p)
	want := expectedDCF(100, 0.001, p.DiscountRate, p.TerminalGrowth, p.ProjectionYears, 0, 0, 1)

	if math.Abs(got.Value-want) > 1e-6 {
		t.Errorf("Expected %.8f, got %.8f", want, got.Value)
	}
}

func TestDCFNetCashAdjustment(t *testing.T) {
	base := metrics.Snapshot{
		CurrentPrice:      10,
		SharesOutstanding: 100,
		FreeCashFlowTTM:   100,
	}
	withCash := base
	withCash.Cash = 500
	withCash.Debt = 200

	plain := DCF(base, 0.10, DefaultParams())
	adjusted := DCF(withCash, 0.10, DefaultParams())

	want := plain.Value + (500.0-200.0)/100.0
	if math.Abs(adjusted.Value-want) > 1e-9 {
		t.Errorf("Expected net cash to add %.4f per share, got %.8f want %.8f", 3.0, adjusted.Value, want)
	}
}

func TestDCFNotApplicable(t *testing.T) {
	p := DefaultParams()

	if got := DCF(metrics.Snapshot{SharesOutstanding: 100}, 0.10, p); got.Signal != types.SignalNA || got.Value != 0 {
		t.Errorf("Expected N/A for zero FCF, got %+v", got)
	}
	if got := DCF(metrics.Snapshot{FreeCashFlowTTM: 100}, 0.10, p); got.Signal != types.SignalNA {
		t.Errorf("Expected N/A for zero shares, got %+v", got)
	}

	degenerate := p
	degenerate.DiscountRate = 0.03
	degenerate.TerminalGrowth = 0.03
	snap := metrics.Snapshot{CurrentPrice: 10, SharesOutstanding: 100, FreeCashFlowTTM: 100}
	if got := DCF(snap, 0.10, degenerate); got.Signal != types.SignalNA {
		t.Errorf("Expected N/A when discount rate does not exceed terminal growth, got %+v", got)
	}
}

func TestDCFIdempotent(t *testing.T) {
	snap := metrics.Snapshot{
		CurrentPrice:      25,
		SharesOutstanding: 40,
		FreeCashFlowTTM:   80,
		Cash:              10,
		Debt:              5,
	}
	first := DCF(snap, 0.07, DefaultParams())
	second := DCF(snap, 0.07, DefaultParams())

	if first != second {
		t.Errorf("Expected bit-identical results, got %+v and %+v", first, second)
	}
}
