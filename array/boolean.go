package array

import (
	"iter"

	"github.com/colvec/colvec/bitmap"
)

// Boolean is a sequence of boolean values stored as single bits in a
// bitmap. It carries no validity state; see NullableBoolean for the
// variant that does.
//
// The zero value is an empty array.
type Boolean struct {
	values bitmap.Bitmap
}

var _ Array = (*Boolean)(nil)

// NewBoolean creates a boolean array holding values.
func NewBoolean(values ...bool) *Boolean {
	a := &Boolean{}
	a.values.Append(values...)

	return a
}

// NewBooleanFromBitmap creates a boolean array over an existing bitmap,
// taking ownership of its storage. The source bitmap is left empty.
func NewBooleanFromBitmap(values *bitmap.Bitmap) *Boolean {
	return &Boolean{values: *values.Take()}
}

// Len returns the number of elements.
func (a *Boolean) Len() int {
	return a.values.Len()
}

// At returns the value at index i. The second result is false when i is
// out of range.
func (a *Boolean) At(i int) (bool, bool) {
	return a.values.At(i)
}

// Append appends values to the end of the array.
func (a *Boolean) Append(values ...bool) {
	a.values.Append(values...)
}

// Bytes returns the packed value bits as a borrowed view of ⌈Len()/8⌉
// bytes, bit 0 in the least-significant position of byte 0. The view
// aliases the array: flipping bits through it changes the stored values.
func (a *Boolean) Bytes() []byte {
	return a.values.Bytes()
}

// All returns a restartable iterator over the values in insertion order.
func (a *Boolean) All() iter.Seq[bool] {
	return a.values.All()
}

// Take hands the array's bitmap storage to the caller and leaves the array
// empty. It is the owning counterpart of All.
func (a *Boolean) Take() *bitmap.Bitmap {
	return a.values.Take()
}

// ToNullable promotes the array to a NullableBoolean with every element
// valid. The promotion allocates only the validity bitmap; the value
// storage moves to the result and the receiver is left empty.
func (a *Boolean) ToNullable() *NullableBoolean {
	return &NullableBoolean{
		Nullable: wrapNullable[bool, *bitmap.Bitmap](a.values.Take()),
	}
}

func (a *Boolean) isArray() {}

// NullableBoolean is a sequence of optional boolean values: a value bitmap
// and a validity bitmap grown in lock-step. An index may be (valid, true),
// (valid, false), or null, in which case the stored value bit is
// meaningless.
type NullableBoolean struct {
	Nullable[bool, *bitmap.Bitmap]
}

var _ Array = (*NullableBoolean)(nil)

// NewNullableBoolean creates a nullable boolean array from values and
// per-element validity. A nil valid slice marks every element valid.
func NewNullableBoolean(values []bool, valid []bool) *NullableBoolean {
	a := &NullableBoolean{
		Nullable: wrapNullable[bool, *bitmap.Bitmap](bitmap.New()),
	}
	a.AppendValues(values, valid)

	return a
}

// Bytes returns the packed value bits as a borrowed view. Bits at null
// indices are unspecified; consult the validity bitmap before trusting
// them.
func (a *NullableBoolean) Bytes() []byte {
	return a.Data().Bytes()
}

func (a *NullableBoolean) isArray() {}
