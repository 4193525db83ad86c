// Package options provides the generic functional-option plumbing shared by
// the public packages of this module.
//
// Public packages declare their own option aliases on top of these types so
// callers never import this package directly:
//
//	type Option = options.Option[*config]
//
//	func WithCapacity(n int) Option {
//	    return options.New(func(c *config) { c.capacity = n })
//	}
package options

// Option configures a target of type T.
type Option[T any] interface {
	apply(T)
}

// funcOption adapts a plain function to the Option interface.
type funcOption[T any] struct {
	fn func(T)
}

func (o funcOption[T]) apply(target T) {
	o.fn(target)
}

// New wraps fn as an Option.
func New[T any](fn func(T)) Option[T] {
	return funcOption[T]{fn: fn}
}

// Apply applies opts to target in order.
func Apply[T any](target T, opts ...Option[T]) {
	for _, opt := range opts {
		opt.apply(target)
	}
}
