package content

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sandevgo/reachout/internal/core"
)

const (
	DefaultTTL        = time.Hour
	DefaultMaxEntries = 512
)

type cacheEntry struct {
	rs        *core.ResultSet
	createdAt time.Time
}

// Cache maps fingerprints to result sets for a limited time. Expired entries are
// not swept; they read as absent and get replaced by the next Put. The least
// recently used entry is evicted once maxEntries is reached.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries *lru.Cache[string, cacheEntry]
	now     func() time.Time
}

type CacheOption func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		c.now = now
	}
}

func NewCache(ttl time.Duration, maxEntries int, opts ...CacheOption) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	// only fails for a non-positive size
	entries, _ := lru.New[string, cacheEntry](maxEntries)

	c := &Cache{
		ttl:     ttl,
		entries: entries,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) Get(fingerprint string) (*core.ResultSet, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries.Get(fingerprint)
	if !ok || c.now().Sub(e.createdAt) >= c.ttl {
		return nil, false
	}
	return e.rs, true
}

func (c *Cache) Put(fingerprint string, rs *core.ResultSet) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Add(fingerprint, cacheEntry{rs: rs, createdAt: c.now()})
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.entries.Len()
}

func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Purge()
}
