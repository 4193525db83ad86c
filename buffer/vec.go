package buffer

import (
	"iter"

	"github.com/colvec/colvec/internal/options"
)

// Vec is the default buffer strategy: uniquely-owned storage with amortized
// growth, backed by an ordinary slice.
//
// The zero value is an empty, ready-to-use buffer.
type Vec[T any] struct {
	values []T
}

var _ Buffer[int] = (*Vec[int])(nil)

// NewVec creates an empty Vec buffer.
//
// Use WithCapacity to pre-allocate room when the final element count is
// known up front:
//
//	buf := buffer.NewVec[int64](buffer.WithCapacity(1024))
func NewVec[T any](opts ...Option) *Vec[T] {
	var cfg config
	options.Apply(&cfg, opts...)

	if cfg.capacity == 0 {
		return &Vec[T]{}
	}

	return &Vec[T]{values: make([]T, 0, cfg.capacity)}
}

// VecOf creates a Vec buffer holding values.
//
// When called with an expanded slice (VecOf(s...)) the buffer takes
// ownership of the slice's backing storage; the caller must not use it
// afterwards.
func VecOf[T any](values ...T) *Vec[T] {
	return &Vec[T]{values: values}
}

// Len returns the number of elements stored.
func (b *Vec[T]) Len() int {
	return len(b.values)
}

// At returns the element at index i, or false when i is out of range.
func (b *Vec[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(b.values) {
		var zero T
		return zero, false
	}

	return b.values[i], true
}

// Append appends values to the end of the buffer, growing it as needed.
func (b *Vec[T]) Append(values ...T) {
	b.values = append(b.values, values...)
}

// Slice returns the stored elements as a borrowed view.
func (b *Vec[T]) Slice() []T {
	return b.values
}

// Take hands the backing slice to the caller and leaves the buffer empty.
func (b *Vec[T]) Take() []T {
	values := b.values
	b.values = nil

	return values
}

// All returns a restartable iterator over the stored elements.
func (b *Vec[T]) All() iter.Seq[T] {
	return values2seq(func() []T { return b.values })
}
