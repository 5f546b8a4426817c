package bst

import (
	"fmt"
)

// Optional holds a value that may be absent.
// [Bounds] uses it for its begin and end keys, where absent means unbounded.
// The zero value `Optional[someType]{}` is empty.
type Optional[T any] struct {
	value T
	ok    bool
}

// OptionalOf returns a new Optional containing value.
func OptionalOf[T any](value T) Optional[T] {
	return Optional[T]{value, true}
}

// IsEmpty returns whether o does not contain a value.
func (o *Optional[T]) IsEmpty() bool {
	return !o.ok
}

// Get returns the value contained by o and whether or not it exists.
func (o *Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Set sets the value contained by o, returning the previous value and whether or not it existed.
func (o *Optional[T]) Set(value T) (T, bool) {
	prev, ok := o.value, o.ok
	o.value, o.ok = value, true
	return prev, ok
}

// Clear removes the value contained by o, returning the previous value and whether or not it existed.
func (o *Optional[T]) Clear() (T, bool) {
	prev, ok := o.value, o.ok
	var zero T
	o.value, o.ok = zero, false
	return prev, ok
}

// String returns the value formatted with `%v`, or "none" if o is empty.
func (o Optional[T]) String() string {
	if !o.ok {
		return "none"
	}
	return fmt.Sprintf("%v", o.value)
}
