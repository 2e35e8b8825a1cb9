// Package pair provides a two-element container for policy objects.
//
// Go already gives zero-size types no storage, except when such a field is
// the last one in a struct, where it is padded so its address stays inside
// the allocation. Pair stores First before Second, so stateless policies
// (deleters, comparators) belong in First.
package pair

// Pair holds two values. The zero value holds two zero values.
type Pair[F, S any] struct {
	first  F
	second S
}

// New creates a pair of f and s.
func New[F, S any](f F, s S) Pair[F, S] {
	return Pair[F, S]{first: f, second: s}
}

// First returns the address of the first element.
func (p *Pair[F, S]) First() *F {
	return &p.first
}

// Second returns the address of the second element.
func (p *Pair[F, S]) Second() *S {
	return &p.second
}
