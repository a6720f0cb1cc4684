package user

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tesmond/QuarterBot_Go/internal/domain"
)

// userCache provides an in-memory LRU cache for user record lookups with
// time-based expiration. Entries are deep-copied on the way in and out so
// callers can mutate their checked-out record freely.
type userCache struct {
	lru *expirable.LRU[uint64, *domain.User]
}

// newUserCache creates a new user cache with the specified size and TTL.
func newUserCache(size int, ttl time.Duration) *userCache {
	return &userCache{
		lru: expirable.NewLRU[uint64, *domain.User](size, nil, ttl),
	}
}

// Get retrieves a copy of a cached user record.
func (c *userCache) Get(id uint64) (*domain.User, bool) {
	entry, found := c.lru.Get(id)
	if !found {
		return nil, false
	}
	return entry.Clone(), true
}

// Set stores a copy of the user record.
func (c *userCache) Set(id uint64, user *domain.User) {
	c.lru.Add(id, user.Clone())
}

// Invalidate removes a user record from the cache.
func (c *userCache) Invalidate(id uint64) {
	c.lru.Remove(id)
}

// Clear removes all entries from the cache.
func (c *userCache) Clear() {
	c.lru.Purge()
}
