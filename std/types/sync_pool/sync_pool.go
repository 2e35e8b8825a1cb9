// sync_pool is a generic sync.Pool wrapper
package sync_pool

import "sync"

// SyncPool recycles values of type T.
// Values are cleared by the reset hook when they are returned, so the pool
// never keeps garbage reachable.
type SyncPool[T any] struct {
	pool  sync.Pool
	reset func(T)
}

// New creates a new SyncPool[T].
// init allocates a fresh value; reset clears a value being returned.
func New[T any](init func() T, reset func(T)) SyncPool[T] {
	return SyncPool[T]{
		pool: sync.Pool{
			New: func() any { return init() },
		},
		reset: reset,
	}
}

// Get returns a recycled or freshly allocated T.
func (p *SyncPool[T]) Get() T {
	return p.pool.Get().(T)
}

// Put clears val and makes it available for reuse.
func (p *SyncPool[T]) Put(val T) {
	if p.reset != nil {
		p.reset(val)
	}
	p.pool.Put(val)
}
