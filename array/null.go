package array

import "iter"

// Nulls is the run marker backing null arrays: it stores only an element
// count, occupying one machine word regardless of length. Element values
// are never materialized; iteration synthesizes T's zero value on demand.
//
// It satisfies Data so the Nullable wrapper can pair it with a validity
// bitmap.
type Nulls[T any] struct {
	count int
}

var _ Data[struct{}] = (*Nulls[struct{}])(nil)

// Len returns the element count.
func (n *Nulls[T]) Len() int {
	return n.count
}

// Append adds len(values) to the count. The values themselves carry no
// information and are discarded.
func (n *Nulls[T]) Append(values ...T) {
	n.count += len(values)
}

// AppendN adds n to the count.
func (n *Nulls[T]) AppendN(count int) {
	n.count += count
}

// All returns a restartable iterator yielding T's zero value Len() times.
// The iterator holds O(1) state.
func (n *Nulls[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		for range n.count {
			if !yield(zero) {
				return
			}
		}
	}
}

// Null is a degenerate array kind whose elements carry no information
// beyond count and type, for placeholder and unit-typed columns. Its
// storage is a single run marker, so memory use is constant regardless of
// length.
//
// T must be a registered unit kind (see RegisterUnit); constructors panic
// otherwise.
type Null[T any] struct {
	nulls Nulls[T]
}

var _ Array = (*Null[struct{}])(nil)

// NewNull creates a null array of the given length.
func NewNull[T any](length int) *Null[T] {
	mustUnit[T]()
	if length < 0 {
		panic("array: negative null array length")
	}

	return &Null[T]{nulls: Nulls[T]{count: length}}
}

// Len returns the number of elements.
func (a *Null[T]) Len() int {
	return a.nulls.Len()
}

// Append extends the array by len(values) elements. Only the count is
// retained.
func (a *Null[T]) Append(values ...T) {
	a.nulls.Append(values...)
}

// AppendN extends the array by n elements.
func (a *Null[T]) AppendN(n int) {
	if n < 0 {
		panic("array: negative null array extension")
	}
	a.nulls.AppendN(n)
}

// All returns a restartable iterator yielding T's zero value Len() times.
func (a *Null[T]) All() iter.Seq[T] {
	return a.nulls.All()
}

// ToNullable promotes the array to a NullableNull with every element
// valid, adding exactly ⌈Len()/8⌉ bytes of validity bitmap. The count
// moves to the result and the receiver is left empty.
func (a *Null[T]) ToNullable() *NullableNull[T] {
	nulls := a.nulls
	a.nulls = Nulls[T]{}

	return &NullableNull[T]{
		Nullable: wrapNullable[T, *Nulls[T]](&nulls),
	}
}

func (a *Null[T]) isArray() {}

// NullableNull is the nullable variant of Null: a run marker paired with a
// validity bitmap. A null slot conceptually is the unit value, flagged
// invalid; memory use is one word plus the bitmap bytes.
type NullableNull[T any] struct {
	Nullable[T, *Nulls[T]]
}

var _ Array = (*NullableNull[struct{}])(nil)

// NewNullableNull creates a nullable null array whose length and validity
// follow valid: element i is valid exactly when valid[i] is true.
func NewNullableNull[T any](valid []bool) *NullableNull[T] {
	mustUnit[T]()

	a := &NullableNull[T]{
		Nullable: wrapNullable[T, *Nulls[T]](&Nulls[T]{}),
	}
	a.AppendValues(make([]T, len(valid)), valid)

	return a
}

func (a *NullableNull[T]) isArray() {}
