package valuation

import (
	"math"
	"testing"

	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

func TestPEGSingleValidRatio(t *testing.T) {
	// P/E 20 against 5% growth: PEG 4.0. The other ratios are absent, so
	// the average is 4.0 and deep into SELL territory.
	snap := metrics.Snapshot{PERatio: 20}

	got := PEGRatios(snap, 0.05, DefaultParams())

	pe := got.Components[ComponentPEPEG]
	if math.Abs(pe.Value-4.0) > 1e-9 {
		t.Errorf("Expected PE PEG 4.0, got %f", pe.Value)
	}
	if got.Components[ComponentPSPEG].Value != 0 || got.Components[ComponentPSPEG].Signal != types.SignalNA {
		t.Errorf("Expected absent P/S PEG to be 0/N/A, got %+v", got.Components[ComponentPSPEG])
	}
	if math.Abs(got.Result.Value-4.0) > 1e-9 {
		t.Errorf("Expected average 4.0, got %f", got.Result.Value)
	}
	if got.Result.Signal != types.SignalSell {
		t.Errorf("Expected SELL, got %s", got.Result.Signal)
	}
}

func TestPEGAveragesOnlyValidEntries(t *testing.T) {
	snap := metrics.Snapshot{
		PERatio:         20,  // PEG 4.0
		PriceToSales:    2,   // PEG 0.4
		PriceToBook:     0,   // absent
		MarketCap:       100, // with FCF 50: P/FCF 2, PEG 0.4
		FreeCashFlowTTM: 50,
	}

	got := PEGRatios(snap, 0.05, DefaultParams())

	want := (4.0 + 0.4 + 0.4) / 3
	if math.Abs(got.Result.Value-want) > 1e-9 {
		t.Errorf("Expected average %.4f over valid entries, got %f", want, got.Result.Value)
	}
}

func TestPEGBreakpoints(t *testing.T) {
	p := DefaultParams()

	// PEG 0.4: growth dwarfs the multiple.
	buy := PEGRatios(metrics.Snapshot{PERatio: 2}, 0.05, p)
	if buy.Result.Signal != types.SignalBuy {
		t.Errorf("Expected BUY at PEG 0.4, got %s", buy.Result.Signal)
	}

	hold := PEGRatios(metrics.Snapshot{PERatio: 7.5}, 0.05, p)
	if hold.Result.Signal != types.SignalHold {
		t.Errorf("Expected HOLD at PEG 1.5, got %s", hold.Result.Signal)
	}

	// Exactly 2 is SELL: the HOLD band is a strict upper bound.
	sell := PEGRatios(metrics.Snapshot{PERatio: 10}, 0.05, p)
	if sell.Result.Signal != types.SignalSell {
		t.Errorf("Expected SELL at PEG 2.0, got %s", sell.Result.Signal)
	}
}

func TestPEGNoValidEntries(t *testing.T) {
	if got := PEGRatios(metrics.Snapshot{}, 0.05, DefaultParams()); got.Result.Signal != types.SignalNA {
		t.Errorf("Expected N/A with no ratios, got %s", got.Result.Signal)
	}

	// Non-positive growth invalidates every PEG.
	snap := metrics.Snapshot{PERatio: 20, PriceToSales: 2}
	if got := PEGRatios(snap, 0, DefaultParams()); got.Result.Signal != types.SignalNA {
		t.Errorf("Expected N/A with zero growth, got %s", got.Result.Signal)
	}
	if got := PEGRatios(snap, -0.05, DefaultParams()); got.Result.Signal != types.SignalNA {
		t.Errorf("Expected N/A with negative growth, got %s", got.Result.Signal)
	}
}
