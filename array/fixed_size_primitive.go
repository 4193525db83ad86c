package array

import (
	"iter"

	"github.com/colvec/colvec/buffer"
)

// FixedSizePrimitive is a sequence of fixed-width scalar values stored
// contiguously at the element kind's native width and alignment, with no
// inter-element padding. It carries no validity state; see
// NullableFixedSizePrimitive for the variant that does.
//
// The storage strategy is pluggable (see the buffer package) and defaults
// to owned growable storage.
//
// The zero value is an empty array over the default strategy.
type FixedSizePrimitive[T FixedSize] struct {
	data buffer.Buffer[T]
}

var _ Array = (*FixedSizePrimitive[int64])(nil)

// NewFixedSizePrimitive creates a primitive array holding values, backed by
// the default owned growable strategy.
func NewFixedSizePrimitive[T FixedSize](values ...T) *FixedSizePrimitive[T] {
	return &FixedSizePrimitive[T]{data: buffer.VecOf(values...)}
}

// NewFixedSizePrimitiveWith creates a primitive array over the given buffer
// strategy and appends values to it.
func NewFixedSizePrimitiveWith[T FixedSize](buf buffer.Buffer[T], values ...T) *FixedSizePrimitive[T] {
	buf.Append(values...)

	return &FixedSizePrimitive[T]{data: buf}
}

// Len returns the number of elements.
func (a *FixedSizePrimitive[T]) Len() int {
	if a.data == nil {
		return 0
	}

	return a.data.Len()
}

// At returns the value at index i. The second result is false when i is
// out of range.
func (a *FixedSizePrimitive[T]) At(i int) (T, bool) {
	if a.data == nil {
		var zero T
		return zero, false
	}

	return a.data.At(i)
}

// Append appends values to the end of the array.
func (a *FixedSizePrimitive[T]) Append(values ...T) {
	a.ensure()
	a.data.Append(values...)
}

// Values returns the stored elements as a borrowed view, valid until the
// next Append or Take.
func (a *FixedSizePrimitive[T]) Values() []T {
	if a.data == nil {
		return nil
	}

	return a.data.Slice()
}

// Bytes returns the raw native byte view of the stored elements: Len() ×
// sizeof(T) bytes equal to the concatenation of each element's native byte
// representation. The view aliases the array's storage.
func (a *FixedSizePrimitive[T]) Bytes() []byte {
	return buffer.AsBytes(a.Values())
}

// Buffer returns the underlying buffer strategy.
func (a *FixedSizePrimitive[T]) Buffer() buffer.Buffer[T] {
	a.ensure()

	return a.data
}

// All returns a restartable iterator over the values in insertion order.
func (a *FixedSizePrimitive[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.Values() {
			if !yield(v) {
				return
			}
		}
	}
}

// Take hands the backing storage to the caller and leaves the array empty.
// It is the owning counterpart of All.
func (a *FixedSizePrimitive[T]) Take() []T {
	if a.data == nil {
		return nil
	}

	return a.data.Take()
}

// ToNullable promotes the array to a NullableFixedSizePrimitive with every
// element valid. The promotion allocates only the validity bitmap; the
// value storage moves to the result and the receiver is left empty over
// the default strategy.
func (a *FixedSizePrimitive[T]) ToNullable() *NullableFixedSizePrimitive[T] {
	a.ensure()
	data := a.data
	a.data = buffer.NewVec[T]()

	return &NullableFixedSizePrimitive[T]{
		Nullable: wrapNullable[T, buffer.Buffer[T]](data),
	}
}

func (a *FixedSizePrimitive[T]) ensure() {
	if a.data == nil {
		a.data = buffer.NewVec[T]()
	}
}

func (a *FixedSizePrimitive[T]) isArray() {}

// NullableFixedSizePrimitive is a sequence of optional fixed-width scalar
// values: a contiguous value buffer and a validity bitmap grown in
// lock-step. A null slot still physically holds T's zero value — never a
// sentinel or uninitialized memory — so readers must consult the bitmap
// rather than infer nullness from stored values.
type NullableFixedSizePrimitive[T FixedSize] struct {
	Nullable[T, buffer.Buffer[T]]
}

var _ Array = (*NullableFixedSizePrimitive[int64])(nil)

// NewNullableFixedSizePrimitive creates a nullable primitive array from
// values and per-element validity, backed by the default owned growable
// strategy. A nil valid slice marks every element valid.
func NewNullableFixedSizePrimitive[T FixedSize](values []T, valid []bool) *NullableFixedSizePrimitive[T] {
	return NewNullableFixedSizePrimitiveWith[T](buffer.NewVec[T](buffer.WithCapacity(len(values))), values, valid)
}

// NewNullableFixedSizePrimitiveWith creates a nullable primitive array over
// the given buffer strategy. A nil valid slice marks every element valid.
func NewNullableFixedSizePrimitiveWith[T FixedSize](buf buffer.Buffer[T], values []T, valid []bool) *NullableFixedSizePrimitive[T] {
	a := &NullableFixedSizePrimitive[T]{
		Nullable: wrapNullable[T, buffer.Buffer[T]](buf),
	}
	a.AppendValues(values, valid)

	return a
}

// Values returns the stored elements as a borrowed view, including the
// zero values held by null slots.
func (a *NullableFixedSizePrimitive[T]) Values() []T {
	return a.Data().Slice()
}

// Bytes returns the raw native byte view of the value buffer, including
// the zero values held by null slots.
func (a *NullableFixedSizePrimitive[T]) Bytes() []byte {
	return buffer.AsBytes(a.Values())
}

func (a *NullableFixedSizePrimitive[T]) isArray() {}
