package buffer

import (
	"fmt"
	"iter"
)

// Fixed is a fixed-capacity buffer strategy: storage is allocated once at
// construction and never reallocates, so views returned by Slice and Bytes
// stay valid for the buffer's whole lifetime.
//
// Appending beyond the fixed capacity is a programmer error and panics.
type Fixed[T any] struct {
	values []T
}

var _ Buffer[int] = (*Fixed[int])(nil)

// NewFixed creates an empty Fixed buffer with room for capacity elements.
func NewFixed[T any](capacity int) *Fixed[T] {
	if capacity < 0 {
		panic("buffer: negative fixed buffer capacity")
	}

	return &Fixed[T]{values: make([]T, 0, capacity)}
}

// FixedOf creates a full Fixed buffer holding exactly values.
func FixedOf[T any](values ...T) *Fixed[T] {
	return &Fixed[T]{values: values[:len(values):len(values)]}
}

// Len returns the number of elements stored.
func (b *Fixed[T]) Len() int {
	return len(b.values)
}

// At returns the element at index i, or false when i is out of range.
func (b *Fixed[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(b.values) {
		var zero T
		return zero, false
	}

	return b.values[i], true
}

// Append appends values to the buffer.
//
// Panics if the fixed capacity would be exceeded.
func (b *Fixed[T]) Append(values ...T) {
	if len(b.values)+len(values) > cap(b.values) {
		panic(fmt.Sprintf("buffer: fixed buffer capacity %d exceeded", cap(b.values)))
	}

	b.values = append(b.values, values...)
}

// Slice returns the stored elements as a borrowed view.
func (b *Fixed[T]) Slice() []T {
	return b.values
}

// Take hands the backing slice to the caller. The buffer is left empty with
// no remaining capacity.
func (b *Fixed[T]) Take() []T {
	values := b.values
	b.values = nil

	return values
}

// All returns a restartable iterator over the stored elements.
func (b *Fixed[T]) All() iter.Seq[T] {
	return values2seq(func() []T { return b.values })
}
