package bitmap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/colvec/colvec/buffer"
)

func TestBitmap_PackingOrder(t *testing.T) {
	b := Of(true, false, true, true)

	require.Equal(t, 4, b.Len())
	require.Equal(t, []byte{0b00001101}, b.Bytes())
}

func TestBitmap_ZeroValue(t *testing.T) {
	var b Bitmap

	require.Equal(t, 0, b.Len())
	require.True(t, b.AllSet())

	b.Append(true, true, false)
	require.Equal(t, 3, b.Len())
	require.Equal(t, []byte{0b00000011}, b.Bytes())
}

func TestBitmap_CrossesByteBoundary(t *testing.T) {
	b := New()
	b.AppendN(9, true)

	require.Equal(t, 9, b.Len())
	require.Equal(t, []byte{0xff, 0x01}, b.Bytes())
	require.Equal(t, 9, b.CountSet())
}

func TestBitmap_At(t *testing.T) {
	b := Of(true, false, true)

	v, ok := b.At(0)
	require.True(t, ok)
	require.True(t, v)

	v, ok = b.At(1)
	require.True(t, ok)
	require.False(t, v)

	_, ok = b.At(3)
	require.False(t, ok)

	_, ok = b.At(-1)
	require.False(t, ok)
}

func TestBitmap_SetClear(t *testing.T) {
	b := Of(false, false, false, false)

	b.Set(0)
	b.Set(2)
	require.Equal(t, []byte{0b00000101}, b.Bytes())

	b.Clear(0)
	require.Equal(t, []byte{0b00000100}, b.Bytes())

	b.SetTo(3, true)
	require.Equal(t, []byte{0b00001100}, b.Bytes())

	require.Panics(t, func() { b.Set(4) })
	require.Panics(t, func() { b.Clear(-1) })
}

func TestBitmap_BytesAliasesStorage(t *testing.T) {
	b := Of(false, false, false, false)

	b.Bytes()[0] = 0b00001111

	require.Equal(t, []bool{true, true, true, true}, slices.Collect(b.All()))
}

func TestBitmap_All_Restartable(t *testing.T) {
	b := Of(true, false, true, true)

	first := slices.Collect(b.All())
	second := slices.Collect(b.All())

	require.Equal(t, []bool{true, false, true, true}, first)
	require.Equal(t, first, second)
}

func TestBitmap_NewSet(t *testing.T) {
	b := NewSet(10)

	require.Equal(t, 10, b.Len())
	require.True(t, b.AllSet())
	require.Equal(t, 10, b.CountSet())
	require.Len(t, b.Bytes(), 2)
}

func TestBitmap_AllSet(t *testing.T) {
	b := Of(true, true, true)
	require.True(t, b.AllSet())

	b.Clear(1)
	require.False(t, b.AllSet())
}

func TestBitmap_Take(t *testing.T) {
	b := Of(true, false, true)

	taken := b.Take()
	require.Equal(t, 3, taken.Len())
	require.Equal(t, []byte{0b00000101}, taken.Bytes())
	require.Equal(t, 0, b.Len())
	require.Empty(t, slices.Collect(b.All()))
}

func TestBitmap_WithFixedBuffer(t *testing.T) {
	b := New(WithBuffer(buffer.NewFixed[byte](1)))

	b.Append(true, false, true, true, false, false, false, false)
	require.Equal(t, []byte{0b00001101}, b.Bytes())

	// A ninth bit would need a second byte, which the fixed strategy
	// cannot provide.
	require.Panics(t, func() { b.Append(true) })
}

func TestBitmap_WithSharedBuffer(t *testing.T) {
	buf := buffer.NewShared[byte]()
	b := New(WithBuffer(buf))

	b.Append(true, true)
	require.Equal(t, []byte{0b00000011}, b.Bytes())

	handle := buf.Retain()
	defer handle.Release()
	require.Panics(t, func() { b.Append(true, true, true, true, true, true, true) })
}

func TestBitmap_AppendPreservesEarlierBits(t *testing.T) {
	b := Of(true, false)
	b.Append(true)
	b.AppendN(2, false)
	b.Append(true)

	require.Equal(t, []bool{true, false, true, false, false, true}, slices.Collect(b.All()))
	require.Equal(t, []byte{0b00100101}, b.Bytes())
}
