// Package growth derives the forward growth-rate estimate shared by the
// valuation methods.
package growth

import "math"

// DefaultRate applies when neither revenue history nor an analyst estimate
// is usable.
const DefaultRate = 0.05

// Estimate returns a growth rate from annual revenues (most recent first),
// falling back to the analyst estimate and then the fallback rate. The CAGR
// is returned as an absolute value: a shrinking business projects with the
// same magnitude as a growing one.
func Estimate(revenues []float64, analystRate, fallback float64) float64 {
	if g, ok := fromHistory(revenues); ok {
		return g
	}
	if analystRate != 0 {
		return analystRate
	}
	if fallback != 0 {
		return fallback
	}
	return DefaultRate
}

// fromHistory computes CAGR between the latest and earliest entries. The
// series arrives most recent first, so index 0 is the newest year. Any
// unusable series (too short, non-positive endpoints, degenerate result)
// reports ok=false rather than failing.
func fromHistory(revenues []float64) (float64, bool) {
	if len(revenues) < 2 {
		return 0, false
	}
	newest := revenues[0]
	oldest := revenues[len(revenues)-1]
	if newest <= 0 || oldest <= 0 {
		return 0, false
	}
	years := float64(len(revenues))
	g := math.Pow(newest/oldest, 1/(years-1)) - 1
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return 0, false
	}
	return math.Abs(g), true
}
