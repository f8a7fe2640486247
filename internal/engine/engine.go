// Package engine runs the full valuation pipeline for one snapshot:
// growth estimate, the nine methods, the vote, the bundle.
package engine

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"fin-analyst/internal/aggregate"
	"fin-analyst/internal/growth"
	"fin-analyst/internal/interfaces"
	"fin-analyst/internal/logger"
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/runlog"
	"fin-analyst/internal/store"
	"fin-analyst/internal/types"
	"fin-analyst/internal/valuation"
)

type Engine struct {
	cfg *store.Config
}

var _ interfaces.Analyzer = (*Engine)(nil)

func New(cfg *store.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Analyze evaluates every valuation method against the snapshot and
// aggregates the signals into a recommendation. The methods are pure and
// independent, so they run concurrently, each writing only its own slot.
// A sparse or all-zero snapshot degrades methods to N/A; it never fails
// the run.
func (e *Engine) Analyze(ctx context.Context, snap metrics.Snapshot, hist metrics.History) (*types.ValuationBundle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	growthRate := snap.GrowthRate
	if growthRate == 0 {
		growthRate = growth.Estimate(hist.Revenues, hist.AnalystGrowth, e.cfg.Growth.DefaultRate)
		snap.GrowthRate = growthRate
	}
	logger.Debug(ctx, "Growth rate resolved",
		"ticker", snap.Ticker,
		"growth_rate", growthRate,
		"history_years", len(hist.Revenues),
	)

	params := e.cfg.Params()
	methods := valuation.Methods()
	results := make([]types.ModelResult, len(methods))

	var wg sync.WaitGroup
	for i, m := range methods {
		wg.Add(1)
		go func(i int, m valuation.Method) {
			defer wg.Done()
			r := m.Run(snap, growthRate, params)
			r.Method = m.Name
			results[i] = r
		}(i, m)
	}
	wg.Wait()

	tally, recommendation := aggregate.Aggregate(results, e.cfg.Policy())
	low, high := targetRange(methods, results)

	bundle := &types.ValuationBundle{
		RunID:          uuid.NewString(),
		Ticker:         snap.Ticker,
		CurrentPrice:   snap.CurrentPrice,
		GrowthRate:     growthRate,
		Results:        results,
		Tally:          tally,
		Recommendation: recommendation,
		TargetLow:      low,
		TargetHigh:     high,
		Time:           time.Now().Unix(),
	}

	logger.Info(ctx, "Valuation complete",
		"ticker", snap.Ticker,
		"run_id", bundle.RunID,
		"recommendation", string(recommendation),
		"buy", tally.Buy,
		"hold", tally.Hold,
		"sell", tally.Sell,
		"na", tally.NA,
	)

	if err := runlog.Append(runlog.EntryFor(bundle)); err != nil {
		logger.Warn(ctx, "Failed to append run log", "error", err, "ticker", snap.Ticker)
	}

	return bundle, nil
}

// targetRange spans the per-share intrinsic values the methods produced.
// Methods that yielded nothing (value 0 or N/A) are skipped; with no usable
// estimates both bounds are 0.
func targetRange(methods []valuation.Method, results []types.ModelResult) (low, high float64) {
	for i, m := range methods {
		if !m.PerShare {
			continue
		}
		r := results[i].Result
		if r.Signal == types.SignalNA || r.Value <= 0 {
			continue
		}
		if low == 0 || r.Value < low {
			low = r.Value
		}
		if r.Value > high {
			high = r.Value
		}
	}
	return low, high
}
