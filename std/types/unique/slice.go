package unique

import (
	"github.com/zjkmxy/ownd/std/types/rc"
	"github.com/zjkmxy/ownd/std/utils"
	"golang.org/x/exp/constraints"
)

// Slice exclusively owns a slice of objects.
// By default every element is destroyed with rc.Delete.
type Slice[T any] struct {
	_     noCopy
	items []T
	del   func([]T)
}

func deleteAll[T any](items []T) {
	for i := range items {
		rc.Delete(&items[i])
	}
}

// NewSlice takes ownership of items.
func NewSlice[T any](items []T) Slice[T] {
	return Slice[T]{items: items, del: deleteAll[T]}
}

// NewSliceWithDeleter takes ownership of items, destroying them with del.
func NewSliceWithDeleter[T any](items []T, del func([]T)) Slice[T] {
	return Slice[T]{items: items, del: del}
}

// Move transfers the elements to the returned slice.
func (s *Slice[T]) Move() Slice[T] {
	items := s.items
	s.items = nil
	return Slice[T]{items: items, del: s.del}
}

// Reset installs items and destroys the previous elements.
// Resetting to the same backing array and length does nothing.
// An empty but non-nil slice is owned like any other.
func (s *Slice[T]) Reset(items []T) {
	if items != nil && s.items != nil && utils.HeaderEqual(s.items, items) {
		return
	}
	old := s.items
	s.items = items
	if old != nil && s.del != nil {
		s.del(old)
	}
}

// Close destroys the elements and leaves s empty.
func (s *Slice[T]) Close() {
	s.Reset(nil)
}

// Get returns the owned elements.
func (s *Slice[T]) Get() []T {
	return s.items
}

// Len returns the number of owned elements.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// Valid reports whether a slice is owned.
func (s *Slice[T]) Valid() bool {
	return s.items != nil
}

// At returns the address of element i. It panics if i is out of range.
func At[T any, I constraints.Integer](s *Slice[T], i I) *T {
	return &s.items[i]
}
