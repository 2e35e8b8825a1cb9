package rc

import (
	"sync/atomic"

	"github.com/zjkmxy/ownd/std/types/sync_pool"
)

// Pool recycles InlineBlocks of one element type.
// A block made by the pool goes back to it when its last owner releases it.
type Pool[T any] struct {
	pool sync_pool.SyncPool[*InlineBlock[T]]
	live atomic.Int64
}

// NewPool creates a new Pool[T].
func NewPool[T any]() *Pool[T] {
	pool := &Pool[T]{}
	pool.pool = sync_pool.New(
		func() *InlineBlock[T] { return &InlineBlock[T]{pool: pool} },
		func(b *InlineBlock[T]) {
			var zero T
			b.value = zero
			b.built = false
		})
	return pool
}

// Make is like rc.Make with a block taken from the pool.
func (p *Pool[T]) Make(v T) Ptr[T] {
	return makeInline(p.get(), v)
}

// MakeWith is like rc.MakeWith with a block taken from the pool.
// A failed construction returns the block to the pool.
func (p *Pool[T]) MakeWith(init func(*T) error) (Ptr[T], error) {
	return makeInlineWith(p.get(), init)
}

// Live returns the number of blocks handed out and not yet returned.
func (p *Pool[T]) Live() int64 {
	return p.live.Load()
}

func (p *Pool[T]) get() *InlineBlock[T] {
	b := p.pool.Get()
	b.c.Store(1)
	p.live.Add(1)
	return b
}

func (p *Pool[T]) put(b *InlineBlock[T]) {
	p.live.Add(-1)
	p.pool.Put(b)
}
