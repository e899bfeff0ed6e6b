package extractor

import (
	"context"
	"log"
	"sync"
)

// Engine owns the single in-memory snapshot of the latest extraction. One
// Refresh replaces the snapshot wholesale; a failed Refresh publishes the
// empty snapshot instead of leaving a stale one behind. refreshMu serializes
// refreshes, so no two extraction passes ever overlap.
type Engine struct {
	mu        sync.RWMutex
	refreshMu sync.Mutex
	cfg       Config
	format    string
	fetcher   Fetcher
	snap      Snapshot
	loading   bool
}

// NewEngine creates an engine around a fetcher. The engine starts with an
// empty snapshot; call Refresh to populate it.
func NewEngine(cfg Config, format string, fetcher Fetcher) *Engine {
	return &Engine{
		cfg:     cfg,
		format:  format,
		fetcher: fetcher,
		snap:    NewSnapshot(nil, nil, cfg.Aliases),
	}
}

// Refresh fetches the source and runs a full extraction pass, atomically
// replacing the published snapshot. Any fetch or read failure degrades to the
// empty snapshot and is reported to the caller; consumers only ever observe a
// complete snapshot, never a partial one.
func (e *Engine) Refresh(ctx context.Context) error {
	e.refreshMu.Lock()
	defer e.refreshMu.Unlock()

	e.mu.Lock()
	e.loading = true
	e.mu.Unlock()

	snap, err := e.extract(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.loading = false
	if err != nil {
		log.Printf("refresh failed, publishing empty snapshot: %v", err)
		e.snap = NewSnapshot(nil, nil, e.cfg.Aliases)
		return err
	}
	e.snap = snap
	return nil
}

func (e *Engine) extract(ctx context.Context) (Snapshot, error) {
	body, err := e.fetcher.Fetch(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	defer body.Close()

	return ProcessReader(body, e.format, e.cfg)
}

// Snapshot returns the current published snapshot.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap
}

// Loading reports whether a refresh is in flight.
func (e *Engine) Loading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.loading
}
