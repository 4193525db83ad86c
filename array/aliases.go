package array

// Named specializations of FixedSizePrimitive for the twelve fixed-width
// scalar kinds. They are pure aliases with no behavioral difference.
type (
	// Int8Array is an array of int8 values.
	Int8Array = FixedSizePrimitive[int8]
	// Int16Array is an array of int16 values.
	Int16Array = FixedSizePrimitive[int16]
	// Int32Array is an array of int32 values.
	Int32Array = FixedSizePrimitive[int32]
	// Int64Array is an array of int64 values.
	Int64Array = FixedSizePrimitive[int64]
	// Uint8Array is an array of uint8 values.
	Uint8Array = FixedSizePrimitive[uint8]
	// Uint16Array is an array of uint16 values.
	Uint16Array = FixedSizePrimitive[uint16]
	// Uint32Array is an array of uint32 values.
	Uint32Array = FixedSizePrimitive[uint32]
	// Uint64Array is an array of uint64 values.
	Uint64Array = FixedSizePrimitive[uint64]
	// IntArray is an array of native-width int values.
	IntArray = FixedSizePrimitive[int]
	// UintArray is an array of native-width uint values.
	UintArray = FixedSizePrimitive[uint]
	// Float32Array is an array of float32 values.
	Float32Array = FixedSizePrimitive[float32]
	// Float64Array is an array of float64 values.
	Float64Array = FixedSizePrimitive[float64]
)

// Nullable counterparts of the twelve named specializations.
type (
	// NullableInt8Array is a nullable array of int8 values.
	NullableInt8Array = NullableFixedSizePrimitive[int8]
	// NullableInt16Array is a nullable array of int16 values.
	NullableInt16Array = NullableFixedSizePrimitive[int16]
	// NullableInt32Array is a nullable array of int32 values.
	NullableInt32Array = NullableFixedSizePrimitive[int32]
	// NullableInt64Array is a nullable array of int64 values.
	NullableInt64Array = NullableFixedSizePrimitive[int64]
	// NullableUint8Array is a nullable array of uint8 values.
	NullableUint8Array = NullableFixedSizePrimitive[uint8]
	// NullableUint16Array is a nullable array of uint16 values.
	NullableUint16Array = NullableFixedSizePrimitive[uint16]
	// NullableUint32Array is a nullable array of uint32 values.
	NullableUint32Array = NullableFixedSizePrimitive[uint32]
	// NullableUint64Array is a nullable array of uint64 values.
	NullableUint64Array = NullableFixedSizePrimitive[uint64]
	// NullableIntArray is a nullable array of native-width int values.
	NullableIntArray = NullableFixedSizePrimitive[int]
	// NullableUintArray is a nullable array of native-width uint values.
	NullableUintArray = NullableFixedSizePrimitive[uint]
	// NullableFloat32Array is a nullable array of float32 values.
	NullableFloat32Array = NullableFixedSizePrimitive[float32]
	// NullableFloat64Array is a nullable array of float64 values.
	NullableFloat64Array = NullableFixedSizePrimitive[float64]
)
