// Package lru provides fixed-capacity least recently used caches over string
// keys and values.
package lru

import (
	"errors"
	"fmt"
	"sync"

	glru "github.com/golang/groupcache/lru"
	"github.com/zjkmxy/ownd/std/log"
)

var ErrInvalidCapacity = errors.New("lru: capacity must be positive")

// Store is the interface shared by Cache and Sharded.
type Store interface {
	Set(key, value string)
	Get(key string) (string, bool)
	Remove(key string) bool
	Len() int
}

// Cache is a least recently used cache. It is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	lru      *glru.Cache
	capacity int
	onEvict  func(key, value string)
}

// New creates a cache holding at most capacity entries.
func New(capacity int) (*Cache, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	c := &Cache{capacity: capacity}
	c.lru = glru.New(capacity)
	c.lru.OnEvicted = c.evicted
	return c, nil
}

func (c *Cache) String() string {
	return fmt.Sprintf("lru(cap=%d)", c.capacity)
}

// evicted runs with c.mu held.
func (c *Cache) evicted(key glru.Key, value any) {
	k, v := key.(string), value.(string)
	log.Debug(c, "Entry evicted", "key", k)
	if c.onEvict != nil {
		c.onEvict(k, v)
	}
}

// OnEvict registers f to be called whenever an entry leaves the cache,
// either by eviction or by Remove. f must not call back into the cache.
func (c *Cache) OnEvict(f func(key, value string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onEvict = f
}

// Set stores value under key and marks it most recently used.
// When the cache is full the least recently used entry is evicted.
func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Add(key, value)
}

// Get returns the value stored under key and marks it most recently used.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.lru.Get(key)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// Remove deletes key and reports whether it was present.
func (c *Cache) Remove(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.lru.Get(key); !ok {
		return false
	}
	c.lru.Remove(key)
	return true
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

// Capacity returns the maximum number of entries.
func (c *Cache) Capacity() int {
	return c.capacity
}
