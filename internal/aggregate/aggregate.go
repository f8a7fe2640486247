// Package aggregate turns the per-method signals into one recommendation.
package aggregate

import "fin-analyst/internal/types"

// Policy controls the vote. TieBreak is returned whenever the voting
// signals tie for the highest count.
type Policy struct {
	TieBreak types.Signal
}

// DefaultPolicy returns the HOLD-on-tie policy.
func DefaultPolicy() Policy {
	return Policy{TieBreak: types.SignalHold}
}

// Aggregate tallies the rolled-up signal of every method and derives the
// final recommendation by majority among BUY, HOLD and SELL. N/A is counted
// in the tally but never votes. With no voting signals at all the
// recommendation is N/A.
func Aggregate(results []types.ModelResult, policy Policy) (types.Tally, types.Signal) {
	var tally types.Tally
	for _, r := range results {
		switch r.Result.Signal {
		case types.SignalBuy:
			tally.Buy++
		case types.SignalHold:
			tally.Hold++
		case types.SignalSell:
			tally.Sell++
		default:
			tally.NA++
		}
	}
	return tally, recommend(tally, policy)
}

func recommend(tally types.Tally, policy Policy) types.Signal {
	if tally.Buy+tally.Hold+tally.Sell == 0 {
		return types.SignalNA
	}

	max := tally.Buy
	if tally.Hold > max {
		max = tally.Hold
	}
	if tally.Sell > max {
		max = tally.Sell
	}

	leaders := 0
	leader := types.SignalHold
	if tally.Buy == max {
		leaders++
		leader = types.SignalBuy
	}
	if tally.Hold == max {
		leaders++
		leader = types.SignalHold
	}
	if tally.Sell == max {
		leaders++
		leader = types.SignalSell
	}
	if leaders > 1 {
		if policy.TieBreak.Votes() {
			return policy.TieBreak
		}
		return types.SignalHold
	}
	return leader
}
