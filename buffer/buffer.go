// Package buffer provides the backing storage strategies used by the array
// and bitmap packages.
//
// A Buffer is a contiguous, append-only sequence of values of a single
// element kind. Three strategies are provided:
//
//   - Vec: uniquely-owned growable storage (the default everywhere)
//   - Fixed: fixed-capacity storage that never reallocates
//   - Shared: reference-counted storage for concurrent read-only sharing
//
// # Ownership
//
// Buffers are append-only: no operation removes or truncates elements. The
// only way storage leaves a buffer is Take, which hands the backing slice to
// the caller and leaves the buffer empty.
//
// # Raw byte views
//
// Bytes reinterprets a buffer's contents as its native byte representation
// without copying. The view is only meaningful for element kinds without
// internal padding (all fixed-width integer and float kinds qualify), and it
// aliases the buffer: writes through the view are visible to the buffer and
// vice versa.
//
// # Thread safety
//
// Vec and Fixed require external synchronization for any concurrent use.
// Shared permits concurrent readers; mutation is only allowed while the
// reference count is exactly one.
package buffer

import (
	"iter"
	"unsafe"

	"github.com/colvec/colvec/internal/options"
)

// Buffer is a contiguous append-only sequence of T.
//
// All implementations in this package satisfy it with pointer receivers, so
// a Buffer value is always a pointer to the underlying strategy.
type Buffer[T any] interface {
	// Len returns the number of elements stored.
	Len() int

	// At returns the element at index i. The second result is false when i
	// is out of range.
	At(i int) (T, bool)

	// Append appends values to the end of the buffer.
	Append(values ...T)

	// Slice returns the stored elements as a borrowed view. The view is
	// valid until the next Append or Take and must not be resized by the
	// caller.
	Slice() []T

	// Take hands the backing storage to the caller and leaves the buffer
	// empty. It is the owning counterpart of Slice.
	Take() []T

	// All returns a restartable iterator over the stored elements in
	// insertion order. The iterator reflects the buffer contents at the
	// time of each restart.
	All() iter.Seq[T]
}

type config struct {
	capacity int
}

// Option configures buffer construction.
type Option = options.Option[*config]

// WithCapacity pre-allocates room for n elements.
func WithCapacity(n int) Option {
	return options.New(func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	})
}

// AsBytes reinterprets values as its native byte representation without
// copying. The result aliases the input slice.
//
// The reinterpretation is only meaningful when T has no internal padding;
// for padded kinds the padding bytes are unspecified.
func AsBytes[T any](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	size := int(unsafe.Sizeof(values[0]))

	return unsafe.Slice((*byte)(unsafe.Pointer(&values[0])), len(values)*size)
}

// Bytes returns the raw native byte view of buf's contents.
//
// The view has length buf.Len() × sizeof(T) and equals the concatenation of
// each element's native byte representation. It aliases the buffer's
// storage and is valid until the next Append or Take.
func Bytes[T any](buf Buffer[T]) []byte {
	return AsBytes(buf.Slice())
}

// values2seq adapts a slice-backed store to the All contract.
func values2seq[T any](values func() []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values() {
			if !yield(v) {
				return
			}
		}
	}
}
