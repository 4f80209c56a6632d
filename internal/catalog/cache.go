package catalog

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/samigvnc/csgo-frontend/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

type cachedCaseEntry struct {
	Version  string
	Case     domain.Case
	CachedAt time.Time
}

// caseCache keeps recently loaded cases with contents so that openings and
// battle rounds do not refetch the same case.
type caseCache struct {
	lru *expirable.LRU[string, *cachedCaseEntry]
}

func newCaseCache(size int, ttl time.Duration) *caseCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &caseCache{
		lru: expirable.NewLRU[string, *cachedCaseEntry](size, nil, ttl),
	}
}

func (c *caseCache) Get(id string) (domain.Case, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return domain.Case{}, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id)
		return domain.Case{}, false
	}
	return entry.Case, true
}

func (c *caseCache) Set(id string, cs domain.Case) {
	c.lru.Add(id, &cachedCaseEntry{
		Version:  CacheSchemaVersion,
		Case:     cs,
		CachedAt: time.Now(),
	})
}

func (c *caseCache) Invalidate(id string) {
	c.lru.Remove(id)
}

func (c *caseCache) Clear() {
	c.lru.Purge()
}

func (c *caseCache) Len() int {
	return c.lru.Len()
}
