// Package provider holds SnapshotSource implementations. The only one in
// the core is file-backed: it reads a provider payload saved to disk by the
// data-retrieval collaborator. Live fetching stays outside this repo.
package provider

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fin-analyst/internal/interfaces"
	"fin-analyst/internal/metrics"
)

type FileSource struct {
	dir string
}

var _ interfaces.SnapshotSource = (*FileSource)(nil)

func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Snapshot reads <dir>/<TICKER>.json and decodes it. The ticker is
// uppercased for the lookup, matching how payloads are saved.
func (s *FileSource) Snapshot(ctx context.Context, ticker string) (metrics.Snapshot, metrics.History, error) {
	if err := ctx.Err(); err != nil {
		return metrics.Snapshot{}, metrics.History{}, err
	}
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return metrics.Snapshot{}, metrics.History{}, fmt.Errorf("provider: empty ticker")
	}
	p := filepath.Join(s.dir, ticker+".json")
	payload, err := os.ReadFile(p)
	if err != nil {
		return metrics.Snapshot{}, metrics.History{}, fmt.Errorf("provider: read snapshot for %s: %w", ticker, err)
	}
	snap, hist, err := metrics.Decode(ticker, payload)
	if err != nil {
		return metrics.Snapshot{}, metrics.History{}, fmt.Errorf("provider: decode snapshot for %s: %w", ticker, err)
	}
	return snap, hist, nil
}
