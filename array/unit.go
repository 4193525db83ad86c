package array

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// The unit registry is the closed family of element kinds accepted by null
// arrays. Registration is explicit and checked for zero size; the rest of
// the unit contract is a caller obligation (see RegisterUnit).
var (
	unitsMu sync.RWMutex
	units   = map[reflect.Type]struct{}{
		reflect.TypeOf(struct{}{}): {},
	}
)

// RegisterUnit admits T into the family of unit kinds usable as a null
// array's element kind.
//
// T must be zero-size; registration panics otherwise. By registering, the
// caller certifies that T's zero value is its only possible value. This
// cardinality property cannot be checked at runtime and is not: violating
// it makes null array iteration produce values that never round-trip.
//
// Zero-size kinds carry no data, so registered units are safely shareable
// across concurrent readers and writers without synchronization.
//
// struct{} is registered out of the box.
func RegisterUnit[T any]() {
	var zero T
	if size := unsafe.Sizeof(zero); size != 0 {
		panic(fmt.Sprintf("array: unit kind %T has size %d, want 0", zero, size))
	}

	unitsMu.Lock()
	defer unitsMu.Unlock()
	units[reflect.TypeOf(&zero).Elem()] = struct{}{}
}

// IsUnit reports whether T is a registered unit kind.
func IsUnit[T any]() bool {
	var zero T

	unitsMu.RLock()
	defer unitsMu.RUnlock()
	_, ok := units[reflect.TypeOf(&zero).Elem()]

	return ok
}

// mustUnit panics unless T is a registered unit kind. Null array
// constructors call it to keep the family closed.
func mustUnit[T any]() {
	if !IsUnit[T]() {
		var zero T
		panic(fmt.Sprintf("array: %T is not a registered unit kind; call RegisterUnit first", zero))
	}
}
