package growth

import (
	"math"
	"testing"
)

func TestEstimateFromHistory(t *testing.T) {
	// Provider order is most recent first: 121 is the newest year.
	revenues := []float64{121, 110, 100}

	got := Estimate(revenues, 0, 0)
	want := 0.10 // (121/100)^(1/2) - 1

	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected CAGR %.6f, got %.6f", want, got)
	}
}

func TestEstimateDeclineIsAbsolute(t *testing.T) {
	// Shrinking revenue: newest 100, oldest 121. The magnitude is kept.
	revenues := []float64{100, 110, 121}

	got := Estimate(revenues, 0, 0)
	want := math.Abs(math.Pow(100.0/121.0, 0.5) - 1)

	if got < 0 {
		t.Fatalf("Expected non-negative rate, got %f", got)
	}
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected %.6f, got %.6f", want, got)
	}
}

func TestEstimateFallsBackToAnalyst(t *testing.T) {
	if got := Estimate(nil, 0.08, 0); got != 0.08 {
		t.Errorf("Expected analyst rate 0.08, got %f", got)
	}
	if got := Estimate([]float64{100}, 0.08, 0); got != 0.08 {
		t.Errorf("Expected analyst rate for single-year history, got %f", got)
	}
}

func TestEstimateDefaultRate(t *testing.T) {
	if got := Estimate(nil, 0, 0); got != DefaultRate {
		t.Errorf("Expected default rate %f, got %f", DefaultRate, got)
	}
	if got := Estimate(nil, 0, 0.07); got != 0.07 {
		t.Errorf("Expected configured fallback 0.07, got %f", got)
	}
}

func TestEstimateUnusableHistory(t *testing.T) {
	// Non-positive endpoints make the series unusable, not fatal.
	cases := [][]float64{
		{0, 100},
		{100, 0},
		{-50, 100},
	}
	for _, revenues := range cases {
		if got := Estimate(revenues, 0.06, 0); got != 0.06 {
			t.Errorf("Expected analyst fallback for %v, got %f", revenues, got)
		}
	}
}
