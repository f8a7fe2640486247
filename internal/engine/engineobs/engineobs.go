package engineobs

import (
	"context"
	"time"

	"fin-analyst/internal/interfaces"
	"fin-analyst/internal/logger"
	"fin-analyst/internal/metrics"
	"fin-analyst/internal/trace"
	"fin-analyst/internal/types"
)

type observableAnalyzer struct {
	analyzer interfaces.Analyzer
}

var _ interfaces.Analyzer = (*observableAnalyzer)(nil)

func Wrap(a interfaces.Analyzer) interfaces.Analyzer {
	return &observableAnalyzer{
		analyzer: a,
	}
}

func (oa *observableAnalyzer) Analyze(ctx context.Context, snap metrics.Snapshot, hist metrics.History) (*types.ValuationBundle, error) {
	ctx, span := trace.StartSpan(ctx, "engine.Analyze")
	defer span.End()

	start := time.Now()

	logger.InfoSkip(ctx, 1, "Starting valuation run",
		"ticker", snap.Ticker,
	)

	bundle, err := oa.analyzer.Analyze(ctx, snap, hist)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Valuation run failed", err,
			"ticker", snap.Ticker,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Valuation run completed",
		"ticker", snap.Ticker,
		"run_id", bundle.RunID,
		"recommendation", string(bundle.Recommendation),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return bundle, nil
}
