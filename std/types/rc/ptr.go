package rc

import "fmt"

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Ptr is a shared owning pointer.
//
// The zero value is empty. A Ptr must not be copied by assignment: use Clone
// to add an owner and Move to transfer one. Every non-empty Ptr must be
// Released exactly once.
//
// The access pointer returned by Get is independent of the block keeping the
// object alive, which is what allows Alias to expose a part of an object.
type Ptr[T any] struct {
	_     noCopy
	ptr   *T
	block ControlBlock
}

// Null returns an empty pointer.
func Null[T any]() Ptr[T] {
	return Ptr[T]{}
}

// New takes ownership of p, destroying it with Delete.
// A block is allocated even when p is nil.
func New[T any](p *T) Ptr[T] {
	return NewWithDeleter(p, nil)
}

// NewWithDeleter takes ownership of p, destroying it with del.
func NewWithDeleter[T any](p *T, del Deleter[T]) Ptr[T] {
	return Ptr[T]{ptr: p, block: NewPointerBlock(p, del)}
}

// Alias returns a pointer sharing ownership with other but accessing ptr.
// ptr must stay valid as long as the object owned by other is alive.
func Alias[T, Y any](other *Ptr[Y], ptr *T) Ptr[T] {
	if other.block != nil {
		other.block.Inc()
	}
	return Ptr[T]{ptr: ptr, block: other.block}
}

// Convert is Clone across element types. conv maps the source access pointer
// to the new one and is not called for a nil access pointer.
func Convert[T, U any](src *Ptr[U], conv func(*U) *T) Ptr[T] {
	var ptr *T
	if src.ptr != nil {
		ptr = conv(src.ptr)
	}
	return Alias(src, ptr)
}

// ConvertMove is Move across element types. src is left empty.
func ConvertMove[T, U any](src *Ptr[U], conv func(*U) *T) Ptr[T] {
	var ptr *T
	if src.ptr != nil {
		ptr = conv(src.ptr)
	}
	block := src.block
	src.ptr, src.block = nil, nil
	return Ptr[T]{ptr: ptr, block: block}
}

// SameOwner reports whether a and b share one control block.
func SameOwner[T, U any](a *Ptr[T], b *Ptr[U]) bool {
	return a.block != nil && a.block == b.block
}

// Clone returns a new owner of the same object.
func (p *Ptr[T]) Clone() Ptr[T] {
	if p.block != nil {
		p.block.Inc()
	}
	return Ptr[T]{ptr: p.ptr, block: p.block}
}

// Move transfers ownership to the returned pointer and leaves p empty.
func (p *Ptr[T]) Move() Ptr[T] {
	ptr, block := p.ptr, p.block
	p.ptr, p.block = nil, nil
	return Ptr[T]{ptr: ptr, block: block}
}

// Assign makes p another owner of other's object, releasing what p held.
func (p *Ptr[T]) Assign(other *Ptr[T]) {
	tmp := other.Clone()
	tmp.Swap(p)
	tmp.Release()
}

// AssignMove moves other into p, releasing what p held. other is left empty.
func (p *Ptr[T]) AssignMove(other *Ptr[T]) {
	if other == p {
		return
	}
	tmp := other.Move()
	tmp.Swap(p)
	tmp.Release()
}

// Release drops p's ownership and leaves p empty.
// Releasing an empty pointer does nothing.
func (p *Ptr[T]) Release() {
	block := p.block
	p.ptr, p.block = nil, nil
	if block != nil {
		block.Dec()
	}
}

// Reset is Release expressed as assignment of an empty pointer.
func (p *Ptr[T]) Reset() {
	tmp := Null[T]()
	tmp.Swap(p)
	tmp.Release()
}

// ResetTo replaces the managed object with ptr, owned by a new block.
// ptr must not already be owned by another block.
func (p *Ptr[T]) ResetTo(ptr *T) {
	tmp := New(ptr)
	tmp.Swap(p)
	tmp.Release()
}

// Swap exchanges the contents of p and other. Counts are unchanged.
func (p *Ptr[T]) Swap(other *Ptr[T]) {
	p.ptr, other.ptr = other.ptr, p.ptr
	p.block, other.block = other.block, p.block
}

// Get returns the access pointer.
func (p *Ptr[T]) Get() *T {
	return p.ptr
}

// Load dereferences the access pointer. It panics if Valid is false.
func (p *Ptr[T]) Load() T {
	return *p.ptr
}

// Block returns the control block, or nil if p is empty.
func (p *Ptr[T]) Block() ControlBlock {
	return p.block
}

// UseCount returns the number of owners sharing p's block, 0 when empty.
func (p *Ptr[T]) UseCount() int {
	if p.block == nil {
		return 0
	}
	return int(p.block.Count())
}

// Valid reports whether the access pointer is non-nil.
// It does not look at the block: an owning alias of nil is not valid.
func (p *Ptr[T]) Valid() bool {
	return p.ptr != nil
}

func (p *Ptr[T]) String() string {
	return fmt.Sprintf("rc.Ptr(%p, use=%d)", p.ptr, p.UseCount())
}
