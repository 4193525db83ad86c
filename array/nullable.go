package array

import (
	"fmt"
	"iter"

	"github.com/colvec/colvec/bitmap"
)

// Data is the storage contract the Nullable wrapper lifts to optional
// items: any length-aware, append-only producer of a value sequence. It is
// satisfied by every buffer strategy, by bitmap.Bitmap (for boolean
// arrays), and by the Nulls run marker.
type Data[T any] interface {
	// Len returns the number of stored elements.
	Len() int

	// Append appends values to the storage.
	Append(values ...T)

	// All returns a restartable iterator over the stored elements.
	All() iter.Seq[T]
}

// Nullable pairs value storage with a validity bitmap, keeping both the
// same length by construction: every append grows data and bitmap in
// lock-step. It is the single specialization mechanism shared by all
// nullable array kinds; the kinds differ only in the storage D they plug
// in.
//
// Length is defined as the data length. The bitmap length equals it by
// construction and is never re-validated on read.
type Nullable[T any, D Data[T]] struct {
	data     D
	validity bitmap.Bitmap
}

// wrapNullable pairs existing storage with a freshly allocated all-set
// bitmap of matching length. This is promotion: a plain array is an
// unconditional validity guarantee, so the bitmap contents follow from the
// length alone and the data is never rescanned.
func wrapNullable[T any, D Data[T]](data D) Nullable[T, D] {
	return Nullable[T, D]{
		data:     data,
		validity: *bitmap.NewSet(data.Len()),
	}
}

// Len returns the number of elements, valid and null.
func (n *Nullable[T, D]) Len() int {
	return n.data.Len()
}

// Append appends values as valid elements.
func (n *Nullable[T, D]) Append(values ...T) {
	n.data.Append(values...)
	n.validity.AppendN(len(values), true)
}

// AppendNull appends a null element. The data storage receives T's zero
// value so that null slots are physically initialized, never sentinels or
// uninitialized memory.
func (n *Nullable[T, D]) AppendNull() {
	var zero T
	n.data.Append(zero)
	n.validity.Append(false)
}

// AppendValues appends values with per-element validity. A nil valid slice
// marks every element valid. Elements whose valid entry is false store T's
// zero value in the data storage regardless of the provided value.
//
// Panics if valid is non-nil with a length different from values.
func (n *Nullable[T, D]) AppendValues(values []T, valid []bool) {
	if valid == nil {
		n.Append(values...)
		return
	}

	if len(values) != len(valid) {
		panic(fmt.Sprintf("array: %d values with %d validity flags", len(values), len(valid)))
	}

	for i, v := range values {
		if valid[i] {
			n.data.Append(v)
		} else {
			var zero T
			n.data.Append(zero)
		}
	}
	n.validity.Append(valid...)
}

// IsValid reports whether the element at index i is valid. The second
// result is false when i is out of range; an out-of-range query is a
// defined non-error signal, not a fault.
func (n *Nullable[T, D]) IsValid(i int) (bool, bool) {
	return n.validity.At(i)
}

// IsNull reports whether the element at index i is null. The second result
// is false when i is out of range.
func (n *Nullable[T, D]) IsNull(i int) (bool, bool) {
	valid, ok := n.validity.At(i)

	return !valid && ok, ok
}

// AllValid reports whether every element is valid.
func (n *Nullable[T, D]) AllValid() bool {
	return n.validity.AllSet()
}

// Data returns the underlying value storage. Null slots hold T's zero
// value.
func (n *Nullable[T, D]) Data() D {
	return n.data
}

// Bitmap returns the validity bitmap for direct read and write access.
//
// The caller owns the lock-step invariant after mutating through the
// returned bitmap: its bit length must still equal the data length when the
// array is next used. The wrapper does not re-check this.
func (n *Nullable[T, D]) Bitmap() *bitmap.Bitmap {
	return &n.validity
}

// All returns a restartable iterator producing (value, valid) pairs in
// insertion order. Null elements yield T's zero value with valid == false.
func (n *Nullable[T, D]) All() iter.Seq2[T, bool] {
	return func(yield func(T, bool) bool) {
		i := 0
		for v := range n.data.All() {
			valid, _ := n.validity.At(i)
			if !yield(v, valid) {
				return
			}
			i++
		}
	}
}
