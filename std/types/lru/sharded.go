package lru

import (
	"fmt"

	"github.com/cespare/xxhash"
)

// Sharded spreads keys over independent caches to reduce lock contention.
// Recency is tracked per shard.
type Sharded struct {
	shards []*Cache
}

// NewSharded creates n shards holding at most capacity entries each.
func NewSharded(n, capacity int) (*Sharded, error) {
	if n <= 0 {
		return nil, fmt.Errorf("lru: shard count must be positive: %d", n)
	}
	s := &Sharded{shards: make([]*Cache, n)}
	for i := range s.shards {
		c, err := New(capacity)
		if err != nil {
			return nil, err
		}
		s.shards[i] = c
	}
	return s, nil
}

func (s *Sharded) shard(key string) *Cache {
	return s.shards[xxhash.Sum64String(key)%uint64(len(s.shards))]
}

func (s *Sharded) Set(key, value string) {
	s.shard(key).Set(key, value)
}

func (s *Sharded) Get(key string) (string, bool) {
	return s.shard(key).Get(key)
}

func (s *Sharded) Remove(key string) bool {
	return s.shard(key).Remove(key)
}

func (s *Sharded) Len() (n int) {
	for _, c := range s.shards {
		n += c.Len()
	}
	return n
}

// Capacity returns the total number of entries the shards can hold.
func (s *Sharded) Capacity() int {
	return len(s.shards) * s.shards[0].Capacity()
}

// OnEvict registers f on every shard.
func (s *Sharded) OnEvict(f func(key, value string)) {
	for _, c := range s.shards {
		c.OnEvict(f)
	}
}
