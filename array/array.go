// Package array provides the foundational array kinds of a columnar
// in-memory format: bit-packed boolean arrays, fixed-width primitive
// arrays, and zero-footprint null arrays.
//
// # Nullability
//
// Every kind exists in two variants chosen at compile time by picking the
// concrete type: a plain variant (Boolean, FixedSizePrimitive, Null) whose
// storage is just the value buffer, and a nullable variant
// (NullableBoolean, NullableFixedSizePrimitive, NullableNull) that pairs
// the same storage with a validity bitmap through the shared Nullable
// wrapper. The plain variant carries no validity state at all, so choosing
// it costs nothing in memory or indirection.
//
// A logically-null slot in a nullable array still physically holds the
// element kind's zero value. Readers must consult the validity bitmap and
// never infer nullness from the stored value.
//
// Promotion from plain to nullable is one-way and explicit via the
// ToNullable methods; no inverse operation exists.
//
// # Growth model
//
// Arrays are append-only: they grow through Append-style operations and are
// never shrunk or truncated, consistent with write-once columnar batches.
//
// # Thread safety
//
// Arrays are plain in-memory aggregates with no internal synchronization.
// Cross-goroutine sharing follows the chosen buffer strategy: shared
// ref-counted storage permits concurrent read-only access, uniquely-owned
// storage requires the holder to serialize mutation.
package array

import "golang.org/x/exp/constraints"

// Array is the capability shared by every concrete array kind. It carries
// no behavior beyond length; its purpose is to identify array values
// uniformly regardless of element kind and nullability.
type Array interface {
	// Len returns the number of elements in the array.
	Len() int

	isArray()
}

// FixedSize constrains the element kinds usable with fixed-size primitive
// arrays: the fixed-width integer and floating-point kinds, including named
// types derived from them. All of them are padding-free, so their raw byte
// views are well defined.
type FixedSize interface {
	constraints.Integer | constraints.Float
}
