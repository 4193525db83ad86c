// Package bitmap provides a bit-packed boolean sequence over a pluggable
// buffer strategy.
//
// Bits are packed 8 per byte in LSB-first order: bit 0 is the
// least-significant bit of byte 0, and increasing indices move through a
// byte before spilling into the next one. The bit count equals the logical
// length; trailing bits beyond the length in the final byte are
// unspecified.
//
// A Bitmap serves two roles in this module: it is the value storage of
// boolean arrays and the validity storage of every nullable array. Both
// roles share the same packing rules, so a codec reproducing this layout
// round-trips either one.
//
// The zero value is an empty bitmap backed by owned growable storage.
package bitmap

import (
	"iter"

	"github.com/colvec/colvec/buffer"
	"github.com/colvec/colvec/internal/bitutil"
	"github.com/colvec/colvec/internal/options"
)

// Bitmap is an append-only sequence of bits over a byte buffer.
type Bitmap struct {
	buf  buffer.Buffer[byte]
	bits int
}

type config struct {
	capacity int
	buf      buffer.Buffer[byte]
}

// Option configures bitmap construction.
type Option = options.Option[*config]

// WithBitCapacity pre-allocates room for n bits.
func WithBitCapacity(n int) Option {
	return options.New(func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	})
}

// WithBuffer selects the byte buffer strategy backing the bitmap. The
// buffer must be empty; its existing capacity is kept.
func WithBuffer(buf buffer.Buffer[byte]) Option {
	return options.New(func(c *config) {
		c.buf = buf
	})
}

// New creates an empty bitmap.
func New(opts ...Option) *Bitmap {
	var cfg config
	options.Apply(&cfg, opts...)

	b := &Bitmap{buf: cfg.buf}
	if b.buf == nil {
		if cfg.capacity > 0 {
			b.buf = buffer.NewVec[byte](buffer.WithCapacity(bitutil.BytesForBits(cfg.capacity)))
		} else {
			b.buf = buffer.NewVec[byte]()
		}
	}

	return b
}

// Of creates a bitmap holding values.
func Of(values ...bool) *Bitmap {
	b := New(WithBitCapacity(len(values)))
	b.Append(values...)

	return b
}

// NewSet creates a bitmap of n bits, all set.
//
// It allocates ⌈n/8⌉ bytes and never inspects any paired data, which makes
// it the primitive behind promotion of non-nullable arrays: a non-nullable
// array is an unconditional validity guarantee, so its freshly promoted
// bitmap is all-set by definition.
func NewSet(n int) *Bitmap {
	b := New(WithBitCapacity(n))
	b.AppendN(n, true)

	return b
}

// Len returns the number of bits.
func (b *Bitmap) Len() int {
	return b.bits
}

// At returns the bit at index i. The second result is false when i is out
// of range.
func (b *Bitmap) At(i int) (bool, bool) {
	if i < 0 || i >= b.bits {
		return false, false
	}

	return bitutil.BitIsSet(b.bytes(), i), true
}

// Append appends values as bits at the end of the bitmap.
func (b *Bitmap) Append(values ...bool) {
	b.grow(len(values))
	data := b.bytes()
	for _, v := range values {
		bitutil.SetBitTo(data, b.bits, v)
		b.bits++
	}
}

// AppendN appends n copies of v.
func (b *Bitmap) AppendN(n int, v bool) {
	b.grow(n)
	data := b.bytes()
	for range n {
		bitutil.SetBitTo(data, b.bits, v)
		b.bits++
	}
}

// Set sets the bit at index i.
//
// Panics if i is out of range.
func (b *Bitmap) Set(i int) {
	b.checkBounds(i)
	bitutil.SetBit(b.bytes(), i)
}

// Clear clears the bit at index i.
//
// Panics if i is out of range.
func (b *Bitmap) Clear(i int) {
	b.checkBounds(i)
	bitutil.ClearBit(b.bytes(), i)
}

// SetTo sets the bit at index i to v.
//
// Panics if i is out of range.
func (b *Bitmap) SetTo(i int, v bool) {
	b.checkBounds(i)
	bitutil.SetBitTo(b.bytes(), i, v)
}

// Bytes returns the packed byte storage as a borrowed view of ⌈Len()/8⌉
// bytes. The view aliases the bitmap: flipping bits through it changes the
// bitmap, and bits at indices ≥ Len() are unspecified.
func (b *Bitmap) Bytes() []byte {
	return b.bytes()
}

// All returns a restartable iterator over the bits in index order.
func (b *Bitmap) All() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		data := b.bytes()
		for i := range b.bits {
			if !yield(bitutil.BitIsSet(data, i)) {
				return
			}
		}
	}
}

// CountSet returns the number of set bits.
func (b *Bitmap) CountSet() int {
	return bitutil.CountSetBits(b.bytes(), b.bits)
}

// AllSet reports whether every bit is set. An empty bitmap is all-set.
func (b *Bitmap) AllSet() bool {
	return b.CountSet() == b.bits
}

// Take hands the bitmap's storage to a new bitmap and leaves the receiver
// empty. It is the owning counterpart of Bytes.
func (b *Bitmap) Take() *Bitmap {
	if b.buf == nil {
		return New()
	}

	bits := b.bits
	data := b.buf.Take()
	b.bits = 0

	return &Bitmap{buf: buffer.VecOf(data...), bits: bits}
}

func (b *Bitmap) bytes() []byte {
	if b.buf == nil {
		return nil
	}

	return b.buf.Slice()
}

// grow extends the byte storage to hold n more bits.
func (b *Bitmap) grow(n int) {
	if b.buf == nil {
		b.buf = buffer.NewVec[byte]()
	}

	need := bitutil.BytesForBits(b.bits+n) - b.buf.Len()
	if need > 0 {
		b.buf.Append(make([]byte, need)...)
	}
}

func (b *Bitmap) checkBounds(i int) {
	if i < 0 || i >= b.bits {
		panic("bitmap: bit index out of range")
	}
}
