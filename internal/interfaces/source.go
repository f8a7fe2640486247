package interfaces

import (
	"context"

	"fin-analyst/internal/metrics"
)

// SnapshotSource is the boundary to the market-data collaborator. The core
// never fetches live data itself; a source hands it an already-retrieved
// snapshot plus the revenue history the growth estimator works from.
type SnapshotSource interface {
	Snapshot(ctx context.Context, ticker string) (metrics.Snapshot, metrics.History, error)
}
