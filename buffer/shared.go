package buffer

import (
	"iter"
	"sync/atomic"

	"github.com/colvec/colvec/internal/options"
)

// Shared is a reference-counted buffer strategy for concurrent read-only
// sharing: Retain produces additional handles to the same storage, and any
// number of holders may read concurrently.
//
// Mutation (Append, Take) is only permitted while the reference count is
// exactly one; attempting it on shared storage is a programmer error and
// panics. This mirrors the single-writer-or-externally-synchronized model
// of the rest of the module: releasing back to a unique reference makes the
// storage mutable again.
type Shared[T any] struct {
	state *sharedState[T]
}

type sharedState[T any] struct {
	refs   atomic.Int64
	values []T
}

var _ Buffer[int] = (*Shared[int])(nil)

// NewShared creates an empty Shared buffer with a reference count of one.
func NewShared[T any](opts ...Option) *Shared[T] {
	var cfg config
	options.Apply(&cfg, opts...)

	state := &sharedState[T]{}
	if cfg.capacity > 0 {
		state.values = make([]T, 0, cfg.capacity)
	}
	state.refs.Store(1)

	return &Shared[T]{state: state}
}

// SharedOf creates a Shared buffer holding values, with a reference count of
// one. When called with an expanded slice the buffer takes ownership of the
// slice's backing storage.
func SharedOf[T any](values ...T) *Shared[T] {
	state := &sharedState[T]{values: values}
	state.refs.Store(1)

	return &Shared[T]{state: state}
}

// Retain returns a new handle to the same storage and increments the
// reference count.
func (b *Shared[T]) Retain() *Shared[T] {
	b.state.refs.Add(1)

	return &Shared[T]{state: b.state}
}

// Release drops this handle's reference. Releasing a handle more times than
// it was retained is a programmer error and panics.
func (b *Shared[T]) Release() {
	if b.state.refs.Add(-1) < 0 {
		panic("buffer: shared buffer released below zero references")
	}
}

// Refs returns the current reference count.
func (b *Shared[T]) Refs() int64 {
	return b.state.refs.Load()
}

// Len returns the number of elements stored.
func (b *Shared[T]) Len() int {
	return len(b.state.values)
}

// At returns the element at index i, or false when i is out of range.
func (b *Shared[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(b.state.values) {
		var zero T
		return zero, false
	}

	return b.state.values[i], true
}

// Append appends values to the buffer.
//
// Panics unless this handle holds the only reference.
func (b *Shared[T]) Append(values ...T) {
	b.mustBeUnique()
	b.state.values = append(b.state.values, values...)
}

// Slice returns the stored elements as a borrowed view. While the storage
// is shared the caller must treat the view as read-only.
func (b *Shared[T]) Slice() []T {
	return b.state.values
}

// Take hands the backing slice to the caller and leaves the buffer empty.
//
// Panics unless this handle holds the only reference.
func (b *Shared[T]) Take() []T {
	b.mustBeUnique()

	values := b.state.values
	b.state.values = nil

	return values
}

// All returns a restartable iterator over the stored elements.
func (b *Shared[T]) All() iter.Seq[T] {
	return values2seq(func() []T { return b.state.values })
}

func (b *Shared[T]) mustBeUnique() {
	if b.state.refs.Load() != 1 {
		panic("buffer: mutation of shared buffer with multiple references")
	}
}
