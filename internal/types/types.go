package types

// Signal is the categorical verdict a valuation method emits.
type Signal string

const (
	SignalBuy  Signal = "BUY"
	SignalHold Signal = "HOLD"
	SignalSell Signal = "SELL"
	SignalNA   Signal = "N/A"
)

// Valid reports whether s is one of the four known signal values.
func (s Signal) Valid() bool {
	switch s {
	case SignalBuy, SignalHold, SignalSell, SignalNA:
		return true
	}
	return false
}

// Votes reports whether s participates in the majority vote.
// N/A signals are tallied but excluded from the denominator.
func (s Signal) Votes() bool {
	return s == SignalBuy || s == SignalHold || s == SignalSell
}

// ValuationResult is the output of a single valuation method: a numeric
// value (per-share intrinsic value, ratio, yield or years depending on the
// method) and the signal derived from it.
type ValuationResult struct {
	Value  float64 `json:"value"`
	Signal Signal  `json:"signal"`
}

// ModelResult is one method's contribution to the bundle. Multi-metric
// methods (multiples, PEG) carry their sub-metrics in Components and roll
// them up into a single Result.
type ModelResult struct {
	Method     string                     `json:"method"`
	Result     ValuationResult            `json:"result"`
	Components map[string]ValuationResult `json:"components,omitempty"`
}

// Tally counts signals per category across all methods.
type Tally struct {
	Buy  int `json:"buy"`
	Hold int `json:"hold"`
	Sell int `json:"sell"`
	NA   int `json:"na"`
}

// ValuationBundle is the complete output of one analysis run, handed to the
// external report renderer. It is constructed once and never mutated.
type ValuationBundle struct {
	RunID          string        `json:"run_id"`
	Ticker         string        `json:"ticker"`
	CurrentPrice   float64       `json:"current_price"`
	GrowthRate     float64       `json:"growth_rate"`
	Results        []ModelResult `json:"results"`
	Tally          Tally         `json:"tally"`
	Recommendation Signal        `json:"recommendation"`
	TargetLow      float64       `json:"target_low,omitempty"`
	TargetHigh     float64       `json:"target_high,omitempty"`
	Time           int64         `json:"time"`
}
