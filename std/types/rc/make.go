package rc

import "github.com/zjkmxy/ownd/std/log"

// Make stores v in a new InlineBlock and returns its only owner.
// The object and its control block share one allocation.
func Make[T any](v T) Ptr[T] {
	return makeInline(newInlineBlock[T](nil), v)
}

// MakeWith constructs the object in place inside a new InlineBlock.
//
// If init returns an error or panics, the block is released without
// destroying the object and the error or panic reaches the caller unchanged.
func MakeWith[T any](init func(*T) error) (Ptr[T], error) {
	return makeInlineWith(newInlineBlock[T](nil), init)
}

func makeInline[T any](b *InlineBlock[T], v T) Ptr[T] {
	b.value = v
	b.built = true
	return Ptr[T]{ptr: &b.value, block: b}
}

func makeInlineWith[T any](b *InlineBlock[T], init func(*T) error) (_ Ptr[T], err error) {
	defer func() {
		if !b.built {
			log.Debug(b, "Construction failed, control block released", "err", err)
			b.free()
		}
	}()

	if err = init(&b.value); err != nil {
		return Ptr[T]{}, err
	}
	b.built = true
	return Ptr[T]{ptr: &b.value, block: b}, nil
}
