// Package valuation implements the nine valuation methods. Every method is
// a pure function over (snapshot, growth rate, params): no hidden state, no
// I/O, and numeric degeneracies degrade to an N/A signal instead of
// propagating NaN or panicking.
package valuation

// Params carries every tunable the methods accept. Zero values are filled
// by the config layer from DefaultParams, so a Params handed to a method is
// always fully populated.
type Params struct {
	// DCF
	DiscountRate    float64
	TerminalGrowth  float64
	ProjectionYears int

	// DDM and Graham
	RequiredReturn float64
	AAAYield       float64

	// Margin rule shared by the intrinsic-value methods: BUY above
	// +MarginThreshold, SELL below -MarginThreshold, HOLD between
	// (boundaries inclusive of HOLD).
	MarginThreshold float64

	// Multiples breakpoints
	PEBuyBelow        float64
	PEHoldBelow       float64
	EVEBITDABuyBelow  float64
	EVEBITDAHoldBelow float64

	// Asset-based price-to-book breakpoints
	PBBuyBelow  float64
	PBHoldBelow float64

	// Payback-time breakpoints in years
	PaybackBuyYears  int
	PaybackHoldYears int

	// Owner-earnings-yield breakpoints in percent
	YieldBuyAbove  float64
	YieldHoldAbove float64

	// PEG breakpoints
	PEGBuyBelow  float64
	PEGHoldBelow float64
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		DiscountRate:      0.10,
		TerminalGrowth:    0.03,
		ProjectionYears:   10,
		RequiredReturn:    0.10,
		AAAYield:          4.4,
		MarginThreshold:   0.20,
		PEBuyBelow:        15,
		PEHoldBelow:       25,
		EVEBITDABuyBelow:  10,
		EVEBITDAHoldBelow: 15,
		PBBuyBelow:        1,
		PBHoldBelow:       3,
		PaybackBuyYears:   10,
		PaybackHoldYears:  20,
		YieldBuyAbove:     10,
		YieldHoldAbove:    5,
		PEGBuyBelow:       1,
		PEGHoldBelow:      2,
	}
}
