package content

import (
	"context"
	"sync"
	"time"

	"github.com/indigoandlavender/slow-tunisia/sheets"
)

// CachedSource wraps a Source with a per-table TTL snapshot, honoring the
// 60-second revalidation window the site advertises in its responses.
// Errors are never cached; a failed fetch is retried on the next read.
type CachedSource struct {
	mu  sync.RWMutex
	src Source
	ttl time.Duration

	tables map[string]snapshot
}

type snapshot struct {
	rows    []sheets.Row
	fetched time.Time
}

func NewCachedSource(src Source, ttl time.Duration) *CachedSource {
	return &CachedSource{
		src:    src,
		ttl:    ttl,
		tables: make(map[string]snapshot),
	}
}

// Rows returns the cached snapshot for table when it is still fresh,
// otherwise re-fetches from the wrapped source. It tries a read lock first
// and only takes the write lock when a reload is needed.
func (c *CachedSource) Rows(ctx context.Context, table string) ([]sheets.Row, error) {
	c.mu.RLock()
	if snap, ok := c.tables[table]; ok && time.Since(snap.fetched) < c.ttl {
		rows := snap.rows
		c.mu.RUnlock()
		return rows, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if snap, ok := c.tables[table]; ok && time.Since(snap.fetched) < c.ttl {
		return snap.rows, nil
	}
	rows, err := c.src.Rows(ctx, table)
	if err != nil {
		return nil, err
	}
	c.tables[table] = snapshot{rows: rows, fetched: time.Now()}
	return rows, nil
}

// Invalidate drops every snapshot so the next read triggers a fresh fetch.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.tables = make(map[string]snapshot)
	c.mu.Unlock()
}
