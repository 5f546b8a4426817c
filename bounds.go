package bst

import (
	"fmt"
)

// Bounds is the argument type for [Tree.Range] and the other range operations.
// An empty [Bounds.Begin] or [Bounds.End] means unbounded on that side.
// For non-empty values, Begin is inclusive and End is exclusive regardless of the direction.
// Step must be +1 (ascending) or -1 (descending), anything else is rejected with [ErrInvalidStep].
// A Begin that is not present in the tree is rejected with [ErrKeyNotFound].
// A Begin that is already beyond End is not an error, the range is simply empty.
//
// While a Bounds instance can be constructed directly, using one of these is clearer:
//
//	From(begin).To(end)      // Step is +1
//	From(begin).DownTo(end)  // Step is -1
//	Everything[K]()          // all keys ascending
//	Everything[K]().Reverse()
type Bounds[K any] struct {
	Begin, End Optional[K]
	Step       int
}

// From returns a new ascending Bounds with Begin=key and no End.
func From[K any](key K) *Bounds[K] {
	return &Bounds[K]{Begin: OptionalOf(key), Step: +1}
}

// Everything returns a new ascending Bounds with neither Begin nor End.
func Everything[K any]() *Bounds[K] {
	return &Bounds[K]{Step: +1}
}

// Clone returns a copy of b.
func (b *Bounds[K]) Clone() *Bounds[K] {
	clone := *b
	return &clone
}

// To sets b.End to key and b.Step to +1, returning b.
func (b *Bounds[K]) To(key K) *Bounds[K] {
	b.End = OptionalOf(key)
	b.Step = +1
	return b
}

// DownTo sets b.End to key and b.Step to -1, returning b.
func (b *Bounds[K]) DownTo(key K) *Bounds[K] {
	b.End = OptionalOf(key)
	b.Step = -1
	return b
}

// Reverse negates b.Step, returning b.
func (b *Bounds[K]) Reverse() *Bounds[K] {
	b.Step = -b.Step
	return b
}

// WithStep sets b.Step to step, returning b.
// It does not validate step, see [Bounds.Validate].
func (b *Bounds[K]) WithStep(step int) *Bounds[K] {
	b.Step = step
	return b
}

// IsReverse returns whether b describes a descending range.
func (b *Bounds[K]) IsReverse() bool {
	return b.Step < 0
}

// Validate returns an error matching [ErrInvalidStep] if b.Step is neither +1 nor -1.
func (b *Bounds[K]) Validate() error {
	if b.Step != +1 && b.Step != -1 {
		return invalidStep(b.Step)
	}
	return nil
}

func (b *Bounds[K]) String() string {
	if b.IsReverse() {
		return fmt.Sprintf("[%s down to %s]", b.Begin, b.End)
	}
	return fmt.Sprintf("[%s to %s]", b.Begin, b.End)
}

// Compare returns where key is in relation to b, taking the direction into account.
// If b is ascending, the result will be -1 if key < begin, 0 if begin <= key < end, and +1 if end <= key.
// If b is descending, the result will be -1 if key > begin, 0 if begin >= key > end, and +1 if end >= key.
// In other words, 0 if within the bounds, -1 if beyond b.Begin, and +1 if beyond b.End.
func (b *Bounds[K]) Compare(key K, compare func(a, b K) int) int {
	sign := +1
	if b.IsReverse() {
		sign = -1
	}
	if begin, ok := b.Begin.Get(); ok && sign*compare(key, begin) < 0 {
		return -1
	}
	if end, ok := b.End.Get(); ok && sign*compare(end, key) <= 0 {
		return +1
	}
	return 0
}
