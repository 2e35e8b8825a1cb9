// Package rc implements reference counted shared ownership.
//
// A Ptr is a handle sharing one ControlBlock with other handles. The block
// counts its owners and destroys the managed object when the last owner
// releases it. Two block kinds exist: PointerBlock manages an object
// allocated elsewhere, InlineBlock stores the object inside the block so a
// single allocation holds both.
package rc

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync/atomic"

	"github.com/zjkmxy/ownd/std/log"
)

// ErrOverRelease is the panic value when a block is released more times than
// it was acquired.
var ErrOverRelease = errors.New("rc: too many releases")

// ControlBlock is the shared bookkeeping record behind every non-empty Ptr.
type ControlBlock interface {
	// Inc adds an owner.
	Inc()
	// Dec removes an owner and returns the remaining count.
	// The managed object is destroyed when the count reaches zero.
	Dec() int32
	// Count returns the current number of owners.
	Count() int32
}

// Destroyer is implemented by objects with explicit teardown.
type Destroyer interface {
	Destroy()
}

// Deleter destroys a managed object.
type Deleter[T any] func(*T)

// Delete is the default Deleter.
// It calls Destroy or Close on the object, whichever it implements.
// Pointer and interface element types are inspected through one indirection.
func Delete[T any](p *T) {
	if p == nil {
		return
	}
	if destroy(any(p)) {
		return
	}
	destroy(any(*p))
}

func destroy(v any) bool {
	if isNil(v) {
		return false
	}
	switch obj := v.(type) {
	case Destroyer:
		obj.Destroy()
		return true
	case io.Closer:
		if err := obj.Close(); err != nil {
			log.Warn(nil, "Close failed during destruction", "type", fmt.Sprintf("%T", obj), "err", err)
		}
		return true
	}
	return false
}

// isNil reports whether v is nil or holds a nil pointer, interface, map,
// slice, channel or function. Destroying nil is a no-op.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// counter is the owner count shared by all block kinds.
type counter struct {
	c atomic.Int32
}

func (c *counter) Inc() {
	c.c.Add(1)
}

func (c *counter) Count() int32 {
	return c.c.Load()
}

func (c *counter) dec(tag any) int32 {
	n := c.c.Add(-1)
	if n < 0 {
		log.Error(tag, "Control block released too many times", "count", n)
		panic(ErrOverRelease)
	}
	return n
}

// PointerBlock manages an object allocated separately from the block.
type PointerBlock[U any] struct {
	counter
	ptr *U
	del Deleter[U]
}

// NewPointerBlock creates a block owning p with one owner.
// A nil deleter selects Delete. A nil p is tracked like any other pointer,
// but the deleter is never called for it.
func NewPointerBlock[U any](p *U, del Deleter[U]) *PointerBlock[U] {
	if del == nil {
		del = Delete[U]
	}
	b := &PointerBlock[U]{ptr: p, del: del}
	b.c.Store(1)
	return b
}

func (b *PointerBlock[U]) Dec() int32 {
	n := b.dec(b)
	if n == 0 {
		ptr := b.ptr
		b.ptr = nil
		if ptr != nil {
			b.del(ptr)
		}
		if log.HasTrace() {
			log.Trace(b, "Control block destroyed")
		}
	}
	return n
}

func (b *PointerBlock[U]) String() string {
	return fmt.Sprintf("pointer-block(%T)", (*U)(nil))
}

// InlineBlock stores the managed object by value inside the block.
type InlineBlock[U any] struct {
	counter
	value U
	built bool
	pool  *Pool[U]
}

func newInlineBlock[U any](pool *Pool[U]) *InlineBlock[U] {
	b := &InlineBlock[U]{pool: pool}
	b.c.Store(1)
	return b
}

// Get returns the address of the stored object.
func (b *InlineBlock[U]) Get() *U {
	return &b.value
}

func (b *InlineBlock[U]) Dec() int32 {
	n := b.dec(b)
	if n == 0 {
		if b.built {
			Delete(&b.value)
		}
		if log.HasTrace() {
			log.Trace(b, "Control block destroyed")
		}
		b.free()
	}
	return n
}

// free drops the storage without running the destruction policy.
func (b *InlineBlock[U]) free() {
	if b.pool != nil {
		b.pool.put(b)
		return
	}
	var zero U
	b.value = zero
	b.built = false
}

func (b *InlineBlock[U]) String() string {
	return fmt.Sprintf("inline-block(%T)", (*U)(nil))
}
