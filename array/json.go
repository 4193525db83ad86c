package array

import (
	"slices"

	json "github.com/goccy/go-json"
)

// JSON and string rendering for debugging and test output. Null slots
// render as JSON null. This is a readable projection of the in-memory
// layout, not an interchange format.

// MarshalJSON renders the array as a JSON array of booleans.
func (a *Boolean) MarshalJSON() ([]byte, error) {
	return marshalValues(slices.Collect(a.All()))
}

// String returns the JSON rendering of the array.
func (a *Boolean) String() string {
	return jsonString(a)
}

// MarshalJSON renders the array as a JSON array of booleans and nulls.
func (a *NullableBoolean) MarshalJSON() ([]byte, error) {
	return marshalValues(optionalValues(&a.Nullable))
}

// String returns the JSON rendering of the array.
func (a *NullableBoolean) String() string {
	return jsonString(a)
}

// MarshalJSON renders the array as a JSON array of numbers.
func (a *FixedSizePrimitive[T]) MarshalJSON() ([]byte, error) {
	return marshalValues(a.Values())
}

// String returns the JSON rendering of the array.
func (a *FixedSizePrimitive[T]) String() string {
	return jsonString(a)
}

// MarshalJSON renders the array as a JSON array of numbers and nulls.
func (a *NullableFixedSizePrimitive[T]) MarshalJSON() ([]byte, error) {
	return marshalValues(optionalValues(&a.Nullable))
}

// String returns the JSON rendering of the array.
func (a *NullableFixedSizePrimitive[T]) String() string {
	return jsonString(a)
}

// MarshalJSON renders the array as a JSON array of nulls: unit elements
// carry no information to render.
func (a *Null[T]) MarshalJSON() ([]byte, error) {
	return marshalValues(make([]*T, a.Len()))
}

// String returns the JSON rendering of the array.
func (a *Null[T]) String() string {
	return jsonString(a)
}

// MarshalJSON renders the array as a JSON array with the unit value's
// rendering at valid indices and null elsewhere.
func (a *NullableNull[T]) MarshalJSON() ([]byte, error) {
	return marshalValues(optionalValues(&a.Nullable))
}

// String returns the JSON rendering of the array.
func (a *NullableNull[T]) String() string {
	return jsonString(a)
}

// marshalValues renders values, mapping an empty slice to "[]" rather than
// JSON null.
func marshalValues[T any](values []T) ([]byte, error) {
	if len(values) == 0 {
		return []byte("[]"), nil
	}

	return json.Marshal(values)
}

// optionalValues projects a nullable wrapper to pointer-typed values with
// nil marking null slots.
func optionalValues[T any, D Data[T]](n *Nullable[T, D]) []*T {
	out := make([]*T, 0, n.Len())
	for v, valid := range n.All() {
		if valid {
			out = append(out, &v)
		} else {
			out = append(out, nil)
		}
	}

	return out
}

func jsonString(m json.Marshaler) string {
	data, err := m.MarshalJSON()
	if err != nil {
		return "[]"
	}

	return string(data)
}
