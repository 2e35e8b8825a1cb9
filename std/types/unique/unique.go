// Package unique implements exclusive ownership with a pluggable destruction
// policy. Unlike rc.Ptr there is no control block: ownership moves between
// handles and the object is destroyed by whichever handle holds it last.
package unique

import (
	"github.com/zjkmxy/ownd/std/types/pair"
	"github.com/zjkmxy/ownd/std/types/rc"
)

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Deleter is a destruction policy for objects of type T.
type Deleter[T any] interface {
	Delete(*T)
}

// Default destroys objects with rc.Delete. It has no state.
type Default[T any] struct{}

func (Default[T]) Delete(p *T) {
	rc.Delete(p)
}

// DeleterFunc adapts a function to Deleter.
type DeleterFunc[T any] func(*T)

func (f DeleterFunc[T]) Delete(p *T) {
	f(p)
}

// Ptr exclusively owns an object of type T.
// The zero value is empty. Ptr must not be copied; use Move.
type Ptr[T any, D Deleter[T]] struct {
	_ noCopy
	// deleter first, so a stateless D takes no space
	p pair.Pair[D, *T]
}

// New takes ownership of p with the default deleter.
func New[T any](p *T) Ptr[T, Default[T]] {
	return Ptr[T, Default[T]]{p: pair.New(Default[T]{}, p)}
}

// NewWithDeleter takes ownership of p, destroying it with del.
func NewWithDeleter[T any, D Deleter[T]](p *T, del D) Ptr[T, D] {
	return Ptr[T, D]{p: pair.New(del, p)}
}

// NewFunc takes ownership of p, destroying it with del.
func NewFunc[T any](p *T, del func(*T)) Ptr[T, DeleterFunc[T]] {
	return NewWithDeleter(p, DeleterFunc[T](del))
}

// Move transfers the object and the deleter to the returned pointer.
func (u *Ptr[T, D]) Move() Ptr[T, D] {
	return Ptr[T, D]{p: pair.New(*u.p.First(), u.Detach())}
}

// AssignMove destroys u's object, then takes other's object and deleter.
func (u *Ptr[T, D]) AssignMove(other *Ptr[T, D]) {
	u.Reset(other.Detach())
	*u.p.First() = *other.p.First()
}

// Detach gives up ownership without destroying the object.
func (u *Ptr[T, D]) Detach() *T {
	ptr := *u.p.Second()
	*u.p.Second() = nil
	return ptr
}

// Reset installs p and destroys the previous object.
// Resetting to the currently owned pointer does nothing.
func (u *Ptr[T, D]) Reset(p *T) {
	old := *u.p.Second()
	if old == p {
		return
	}
	*u.p.Second() = p
	if old != nil {
		(*u.p.First()).Delete(old)
	}
}

// Close destroys the owned object, if any, and leaves u empty.
func (u *Ptr[T, D]) Close() {
	u.Reset(nil)
}

// Swap exchanges objects and deleters.
func (u *Ptr[T, D]) Swap(other *Ptr[T, D]) {
	if *u.p.Second() == *other.p.Second() {
		return
	}
	u.p, other.p = other.p, u.p
}

// Get returns the owned pointer.
func (u *Ptr[T, D]) Get() *T {
	return *u.p.Second()
}

// Load dereferences the owned pointer. It panics if Valid is false.
func (u *Ptr[T, D]) Load() T {
	return **u.p.Second()
}

// Deleter returns the destruction policy.
func (u *Ptr[T, D]) Deleter() *D {
	return u.p.First()
}

// Valid reports whether an object is owned.
func (u *Ptr[T, D]) Valid() bool {
	return *u.p.Second() != nil
}
