package interfaces

import (
	"context"

	"fin-analyst/internal/metrics"
	"fin-analyst/internal/types"
)

type Analyzer interface {
	Analyze(ctx context.Context, snap metrics.Snapshot, hist metrics.History) (*types.ValuationBundle, error)
}
