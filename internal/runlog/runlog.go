// Package runlog appends one JSONL record per valuation run to a daily
// file, for offline inspection of how recommendations evolved. It is an
// observability sink, not a queryable store.
package runlog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fin-analyst/internal/types"
)

var mu sync.Mutex

type Entry struct {
	Time           string             `json:"time"`
	RunID          string             `json:"run_id"`
	Ticker         string             `json:"ticker"`
	Price          float64            `json:"price"`
	GrowthRate     float64            `json:"growth_rate"`
	Recommendation string             `json:"recommendation"`
	Tally          types.Tally        `json:"tally"`
	Signals        map[string]string  `json:"signals"`
	Values         map[string]float64 `json:"values"`
}

// EntryFor flattens a bundle into a log entry.
func EntryFor(b *types.ValuationBundle) Entry {
	signals := make(map[string]string, len(b.Results))
	values := make(map[string]float64, len(b.Results))
	for _, r := range b.Results {
		signals[r.Method] = string(r.Result.Signal)
		values[r.Method] = r.Result.Value
	}
	return Entry{
		RunID:          b.RunID,
		Ticker:         b.Ticker,
		Price:          b.CurrentPrice,
		GrowthRate:     b.GrowthRate,
		Recommendation: string(b.Recommendation),
		Tally:          b.Tally,
		Signals:        signals,
		Values:         values,
	}
}

func logDir() string {
	if v := os.Getenv("ANALYST_LOG_DIR"); v != "" {
		return v
	}
	return "logs"
}

func dailyFilepath(t time.Time) string {
	d := t.UTC().Format("2006-01-02")
	return filepath.Join(logDir(), "valuations", d+".txt")
}

func Append(e Entry) error {
	mu.Lock()
	defer mu.Unlock()
	now := time.Now().UTC()
	e.Time = now.Format("2006-01-02 15:04:05")
	p := dailyFilepath(now)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	b, _ := json.Marshal(e)
	_, err = fmt.Fprintln(f, string(b))
	return err
}

// CompressOlder gzips daily files older than the retention window.
func CompressOlder(retentionDays int) error {
	if retentionDays <= 0 {
		return nil
	}
	root := logDir()
	return filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(p) != ".txt" {
			return nil
		}
		info, er := os.Stat(p)
		if er != nil {
			return nil
		}
		cutoff := time.Now().AddDate(0, 0, -retentionDays)
		if info.ModTime().After(cutoff) {
			return nil
		}
		return compressFile(p)
	})
}

func compressFile(p string) error {
	src, err := os.Open(p)
	if err != nil {
		return err
	}
	defer src.Close()
	dst, err := os.Create(p + ".gz")
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(dst)
	if _, err := io.Copy(zw, src); err != nil {
		zw.Close()
		dst.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	return os.Remove(p)
}
