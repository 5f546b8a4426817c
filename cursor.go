package bst

import (
	"iter"
)

// Cursor is a pull-based iterator over the entries of a [Tree] within some [Bounds],
// returned by [Tree.Range].
// It holds a live reference into the tree and produces entries lazily,
// so mutating the tree while a Cursor is in use invalidates it.
// A Cursor cannot be rewound, call [Tree.Range] again to restart.
type Cursor[K, V any] struct {
	tree   *Tree[K, V]
	bounds Bounds[K]
	next   handle
	step   func(handle) handle
}

// Range returns a cursor over the entries of t within bounds, in the direction of bounds.Step.
// It returns an error matching [ErrInvalidStep] if bounds.Step is neither +1 nor -1,
// or an error matching [ErrKeyNotFound] if bounds.Begin is set but not present in t.
// bounds is copied, later changes to it do not affect the cursor.
func (t *Tree[K, V]) Range(bounds *Bounds[K]) (*Cursor[K, V], error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	c := &Cursor[K, V]{tree: t, bounds: *bounds}
	if c.bounds.IsReverse() {
		c.next, c.step = t.maxNode, t.predecessor
	} else {
		c.next, c.step = t.minNode, t.successor
	}
	if begin, ok := c.bounds.Begin.Get(); ok {
		c.next = t.find(begin)
		if c.next == none {
			return nil, keyNotFound(begin)
		}
	}
	c.skipPastEnd()
	return c, nil
}

func (c *Cursor[K, V]) skipPastEnd() {
	if c.next != none && c.bounds.Compare(c.tree.at(c.next).key, c.tree.compare) > 0 {
		c.next = none
	}
}

// HasNext returns whether a call to Next will return another entry.
func (c *Cursor[K, V]) HasNext() bool {
	return c.next != none
}

// Next returns the next entry and advances c.
// Next will panic if HasNext returns false.
func (c *Cursor[K, V]) Next() (K, V) {
	if c.next == none {
		panic("cursor is exhausted")
	}
	n := c.tree.at(c.next)
	key, value := n.key, n.value
	c.next = c.step(c.next)
	c.skipPastEnd()
	return key, value
}

// All returns the remaining entries of c as a sequence, advancing c as the sequence is consumed.
func (c *Cursor[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for c.HasNext() {
			if !yield(c.Next()) {
				return
			}
		}
	}
}

// keys drains c, returning the keys it produced.
func (c *Cursor[K, V]) keys() []K {
	var keys []K
	for k := range c.All() {
		keys = append(keys, k)
	}
	return keys
}
