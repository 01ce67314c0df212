package dataset

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mmisra/sales-dashboard-api/internal/domain"
)

// cacheKey identifies a loaded file version. A changed mtime or size means
// the cached table is stale.
type cacheKey struct {
	modTimeNano int64
	size        int64
}

// CachedSource wraps a Source with a process-scoped cache keyed by the
// file's modification time and size. The cached table is read-only and safe
// for concurrent readers; reloads swap the whole pointer under the lock.
type CachedSource struct {
	path   string
	source Source

	mu       sync.RWMutex
	table    *domain.SalesTable
	key      cacheKey
	modTime  time.Time
	size     int64
	loadedAt time.Time
}

func NewCachedSource(path string, source Source) *CachedSource {
	return &CachedSource{
		path:   path,
		source: source,
	}
}

// Table returns the cached table, re-reading storage only when the file
// changed since the last load.
func (c *CachedSource) Table(ctx context.Context) (*domain.SalesTable, error) {
	info, err := os.Stat(c.path)
	if err != nil {
		return nil, &LoadError{Path: c.path, Err: err}
	}

	key := cacheKey{modTimeNano: info.ModTime().UnixNano(), size: info.Size()}

	c.mu.RLock()
	if c.table != nil && c.key == key {
		table := c.table
		c.mu.RUnlock()
		return table, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have reloaded while we waited for the lock
	if c.table != nil && c.key == key {
		return c.table, nil
	}

	start := time.Now()

	table, err := c.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	c.table = table
	c.key = key
	c.modTime = info.ModTime()
	c.size = info.Size()
	c.loadedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"path":        c.path,
		"rows":        table.Len(),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Info("dataset: table loaded into cache")

	return table, nil
}

// Invalidate drops the cached table so the next Table call re-reads storage.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.table = nil
	c.key = cacheKey{}

	logrus.WithField("path", c.path).Info("dataset: cache invalidated")
}

// Status reports the cached dataset currently in memory. Rows is zero when
// nothing has been loaded yet.
func (c *CachedSource) Status() *domain.DatasetStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := &domain.DatasetStatus{
		Path: c.path,
	}

	if c.table != nil {
		status.Rows = c.table.Len()
		status.SizeBytes = c.size
		status.ModTime = c.modTime
		status.LoadedAt = c.loadedAt
	}

	return status
}
