package array

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolean_RoundTrip(t *testing.T) {
	input := []bool{true, false, true, true}
	a := NewBoolean(input...)

	require.Equal(t, 4, a.Len())
	require.Equal(t, input, slices.Collect(a.All()))
}

func TestBoolean_PackedBytes(t *testing.T) {
	a := NewBoolean(true, false, true, true)

	require.Equal(t, 4, a.Len())
	require.Equal(t, []byte{0b00001101}, a.Bytes())
}

func TestBoolean_At(t *testing.T) {
	a := NewBoolean(true, false)

	v, ok := a.At(0)
	require.True(t, ok)
	require.True(t, v)

	v, ok = a.At(1)
	require.True(t, ok)
	require.False(t, v)

	_, ok = a.At(2)
	require.False(t, ok)
}

func TestBoolean_Append(t *testing.T) {
	a := NewBoolean(true)
	a.Append(false, true)

	require.Equal(t, []bool{true, false, true}, slices.Collect(a.All()))
}

func TestBoolean_ZeroValue(t *testing.T) {
	var a Boolean

	require.Equal(t, 0, a.Len())

	a.Append(true, true)
	require.Equal(t, 2, a.Len())
}

func TestBoolean_BytesMutation(t *testing.T) {
	a := NewBoolean(false, false, false, false)

	a.Bytes()[0] = 0b00001111

	require.Equal(t, []bool{true, true, true, true}, slices.Collect(a.All()))
}

func TestBoolean_Take(t *testing.T) {
	a := NewBoolean(true, false, true)

	bm := a.Take()
	require.Equal(t, 3, bm.Len())
	require.Equal(t, []byte{0b00000101}, bm.Bytes())
	require.Equal(t, 0, a.Len())
}

func TestBoolean_All_Restartable(t *testing.T) {
	a := NewBoolean(true, false, true, true)

	first := slices.Collect(a.All())
	second := slices.Collect(a.All())

	require.Equal(t, first, second)
}

func TestBoolean_ToNullable(t *testing.T) {
	a := NewBoolean(true, false)
	n := a.ToNullable()

	require.True(t, n.AllValid())
	require.Equal(t, 2, n.Len())
	require.Equal(t, 2, n.Bitmap().Len())

	var values []bool
	var validity []bool
	for v, valid := range n.All() {
		values = append(values, v)
		validity = append(validity, valid)
	}
	require.Equal(t, []bool{true, false}, values)
	require.Equal(t, []bool{true, true}, validity)

	// Promotion moves the storage out of the receiver.
	require.Equal(t, 0, a.Len())
}

func TestNullableBoolean_Scenario(t *testing.T) {
	// [Some(true), None, Some(true), Some(false)]
	a := NewNullableBoolean(
		[]bool{true, false, true, false},
		[]bool{true, false, true, true},
	)

	require.Equal(t, 4, a.Len())

	valid, ok := a.IsValid(1)
	require.True(t, ok)
	require.False(t, valid)

	isNull, ok := a.IsNull(1)
	require.True(t, ok)
	require.True(t, isNull)

	valid, ok = a.IsValid(0)
	require.True(t, ok)
	require.True(t, valid)

	valid, ok = a.IsValid(3)
	require.True(t, ok)
	require.True(t, valid)

	// Out of range is a defined absent result, not a fault.
	_, ok = a.IsValid(4)
	require.False(t, ok)
	_, ok = a.IsNull(4)
	require.False(t, ok)
}

func TestNullableBoolean_PreservesValuesAndValidity(t *testing.T) {
	values := []bool{true, false, true, false}
	valid := []bool{true, false, true, true}
	a := NewNullableBoolean(values, valid)

	i := 0
	for v, ok := range a.All() {
		require.Equal(t, valid[i], ok, "validity at %d", i)
		if ok {
			require.Equal(t, values[i], v, "value at %d", i)
		}
		i++
	}
	require.Equal(t, 4, i)
}

func TestNullableBoolean_AppendAndAppendNull(t *testing.T) {
	a := NewNullableBoolean(nil, nil)

	a.Append(true)
	a.AppendNull()
	a.Append(false)

	require.Equal(t, 3, a.Len())
	require.Equal(t, 3, a.Bitmap().Len())
	require.False(t, a.AllValid())

	isNull, ok := a.IsNull(1)
	require.True(t, ok)
	require.True(t, isNull)
}

func TestNullableBoolean_NilValidMeansAllValid(t *testing.T) {
	a := NewNullableBoolean([]bool{true, false, true}, nil)

	require.True(t, a.AllValid())
	require.Equal(t, 3, a.Len())
}

func TestNullableBoolean_DirectBitmapMutation(t *testing.T) {
	a := NewBoolean(true, false, true, true).ToNullable()
	require.True(t, a.AllValid())

	// Mark index 1 null through the validity bitmap. Keeping lengths in
	// lock-step afterwards is the caller's obligation; flipping bits in
	// place preserves it.
	a.Bitmap().Clear(1)

	require.False(t, a.AllValid())
	isNull, ok := a.IsNull(1)
	require.True(t, ok)
	require.True(t, isNull)
}

func TestNullableBoolean_ValueBytesIndependentOfValidity(t *testing.T) {
	a := NewNullableBoolean(
		[]bool{true, true, true, true},
		[]bool{true, false, true, true},
	)

	// Null slots store the zero value (false) in the value bitmap.
	require.Equal(t, []byte{0b00001101}, a.Bytes())
	require.Equal(t, []byte{0b00001101}, a.Bitmap().Bytes())
}
