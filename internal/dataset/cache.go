package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/jobdeck/jobdeck/internal/common"

	"golang.org/x/sync/singleflight"
)

// Key identifies one version of a source file. A change to any field is a
// cache miss.
type Key struct {
	ModTime time.Time
	Path    string
	Size    int64
}

// FileKey stats path and builds its cache key.
func FileKey(path string) (Key, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Key{}, fmt.Errorf("%w: %s", common.ErrFileNotFound, path)
		}
		return Key{}, fmt.Errorf("stat %s: %w", path, err)
	}
	return Key{Path: path, ModTime: info.ModTime(), Size: info.Size()}, nil
}

// Persister is an optional second-level cache for cleaned datasets.
// Get returns (nil, nil) on a miss; any error is also treated as a miss
// by the cache, never surfaced to callers.
type Persister interface {
	GetDataset(ctx context.Context, key Key) (*Dataset, error)
	SaveDataset(ctx context.Context, key Key, ds *Dataset) error
}

// Cache memoizes load-and-clean results keyed by source file identity.
// Repeated loads of an unchanged file are free; a changed modification
// signature invalidates the entry and the next load recomputes it.
// Concurrent loads of the same file share a single computation.
type Cache struct {
	persister Persister
	entries   map[string]cacheEntry
	group     singleflight.Group
	mu        sync.RWMutex
}

type cacheEntry struct {
	ds  *Dataset
	key Key
}

// NewCache returns a cache with an optional persistent second level.
// persister may be nil.
func NewCache(persister Persister) *Cache {
	return &Cache{
		persister: persister,
		entries:   make(map[string]cacheEntry),
	}
}

// Load returns the cleaned dataset for path, from cache when the file is
// unchanged since the last load.
func (c *Cache) Load(ctx context.Context, path string) (*Dataset, error) {
	key, err := FileKey(path)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	entry, ok := c.entries[path]
	c.mu.RUnlock()
	if ok && entry.key == key {
		return entry.ds, nil
	}

	// First caller computes, the rest block and share the result.
	v, err, _ := c.group.Do(path, func() (any, error) {
		return c.loadSlow(ctx, key)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Dataset), nil
}

func (c *Cache) loadSlow(ctx context.Context, key Key) (*Dataset, error) {
	// Another waiter may have populated the entry while we queued.
	c.mu.RLock()
	entry, ok := c.entries[key.Path]
	c.mu.RUnlock()
	if ok && entry.key == key {
		return entry.ds, nil
	}

	ds, err := c.fromPersister(ctx, key)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key.Path] = cacheEntry{ds: ds, key: key}
	c.mu.Unlock()
	return ds, nil
}

func (c *Cache) fromPersister(ctx context.Context, key Key) (*Dataset, error) {
	if c.persister != nil {
		ds, err := c.persister.GetDataset(ctx, key)
		if err != nil {
			slog.Warn("persistent cache read failed, reloading source",
				"path", key.Path, "error", err)
		} else if ds != nil {
			return ds, nil
		}
	}

	raw, err := Load(key.Path)
	if err != nil {
		return nil, err
	}
	ds := Clean(raw)

	if c.persister != nil {
		if err := c.persister.SaveDataset(ctx, key, ds); err != nil {
			slog.Warn("persistent cache write failed",
				"path", key.Path, "error", err)
		}
	}
	return ds, nil
}

// Invalidate drops the in-memory entry for path. The next Load recomputes
// (or re-reads the persistent layer).
func (c *Cache) Invalidate(path string) {
	c.mu.Lock()
	delete(c.entries, path)
	c.mu.Unlock()
}
