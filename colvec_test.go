package colvec

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colvec/colvec/array"
)

func TestNewBooleanArray(t *testing.T) {
	a := NewBooleanArray(true, false, true, true)

	require.Equal(t, 4, a.Len())
	require.Equal(t, []byte{0b00001101}, a.Bytes())
}

func TestNewNullableBooleanArray(t *testing.T) {
	a := NewNullableBooleanArray([]bool{true, false}, []bool{true, false})

	require.Equal(t, 2, a.Len())
	isNull, ok := a.IsNull(1)
	require.True(t, ok)
	require.True(t, isNull)
}

func TestNewPrimitiveArray(t *testing.T) {
	a := NewPrimitiveArray[int64](1, 2, 3)

	require.Equal(t, []int64{1, 2, 3}, slices.Collect(a.All()))
}

func TestNewNullablePrimitiveArray(t *testing.T) {
	a := NewNullablePrimitiveArray([]uint64{1, 0, 3, 4}, []bool{true, false, true, true})

	require.Equal(t, []uint64{1, 0, 3, 4}, a.Values())
	require.False(t, a.AllValid())
}

func TestNewNullArray(t *testing.T) {
	a := NewNullArray[struct{}](7)

	require.Equal(t, 7, a.Len())
}

func TestNewNullableNullArray(t *testing.T) {
	a := NewNullableNullArray[struct{}]([]bool{true, false, true})

	require.Equal(t, 3, a.Len())
	require.False(t, a.AllValid())
}

func TestArrayMarker_CoversAllKinds(t *testing.T) {
	arrays := []array.Array{
		NewBooleanArray(true),
		NewNullableBooleanArray([]bool{true}, nil),
		NewPrimitiveArray[int32](1),
		NewNullablePrimitiveArray([]float64{1.5}, nil),
		NewNullArray[struct{}](1),
		NewNullableNullArray[struct{}]([]bool{true}),
	}

	for _, a := range arrays {
		require.Equal(t, 1, a.Len())
	}
}
