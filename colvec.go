// Package colvec provides the foundational array types of a columnar
// in-memory data format: bit-packed boolean arrays, fixed-width primitive
// arrays, and zero-footprint null arrays, each in a plain and a nullable
// variant.
//
// # Core Features
//
//   - Compile-time nullability: plain and nullable variants are distinct
//     types; the plain variant carries zero validity overhead
//   - Shared specialization mechanism: one Nullable wrapper pairs any value
//     storage with a validity bitmap, grown in lock-step
//   - Pluggable buffer strategies: owned growable (default), fixed, and
//     reference-counted shared storage
//   - LSB-first bit packing shared by value and validity bitmaps
//   - One-way, O(1)-per-bit promotion from plain to nullable
//   - Append-only growth, consistent with write-once columnar batches
//
// # Basic Usage
//
// Building and reading a plain primitive array:
//
//	import "github.com/colvec/colvec"
//
//	a := colvec.NewPrimitiveArray[int64](1, 2, 3, 4)
//	for v := range a.All() {
//	    fmt.Println(v)
//	}
//
// Building a nullable array and inspecting validity:
//
//	n := colvec.NewNullablePrimitiveArray(
//	    []uint64{1, 0, 3, 4},
//	    []bool{true, false, true, true},
//	)
//	for v, valid := range n.All() {
//	    if valid {
//	        fmt.Println(v)
//	    } else {
//	        fmt.Println("null")
//	    }
//	}
//
// Promoting a plain array to nullable:
//
//	a := colvec.NewBooleanArray(true, false)
//	n := a.ToNullable() // all elements valid, storage moves to n
//
// # Package Structure
//
// This package provides convenient top-level constructors around the array
// package, simplifying the most common use cases. For buffer strategy
// selection and direct bitmap access, use the array, buffer, and bitmap
// packages directly.
package colvec

import "github.com/colvec/colvec/array"

// NewBooleanArray creates a boolean array holding values.
func NewBooleanArray(values ...bool) *array.Boolean {
	return array.NewBoolean(values...)
}

// NewNullableBooleanArray creates a nullable boolean array from values and
// per-element validity. A nil valid slice marks every element valid.
func NewNullableBooleanArray(values []bool, valid []bool) *array.NullableBoolean {
	return array.NewNullableBoolean(values, valid)
}

// NewPrimitiveArray creates a fixed-size primitive array holding values,
// backed by the default owned growable strategy.
func NewPrimitiveArray[T array.FixedSize](values ...T) *array.FixedSizePrimitive[T] {
	return array.NewFixedSizePrimitive(values...)
}

// NewNullablePrimitiveArray creates a nullable fixed-size primitive array
// from values and per-element validity. A nil valid slice marks every
// element valid.
func NewNullablePrimitiveArray[T array.FixedSize](values []T, valid []bool) *array.NullableFixedSizePrimitive[T] {
	return array.NewNullableFixedSizePrimitive(values, valid)
}

// NewNullArray creates a null array of the given length. T must be a
// registered unit kind (see array.RegisterUnit); struct{} works out of the
// box.
func NewNullArray[T any](length int) *array.Null[T] {
	return array.NewNull[T](length)
}

// NewNullableNullArray creates a nullable null array whose length and
// validity follow valid.
func NewNullableNullArray[T any](valid []bool) *array.NullableNull[T] {
	return array.NewNullableNull[T](valid)
}
