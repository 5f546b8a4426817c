package bst

import (
	"iter"
)

// successor returns the next node in ascending key order, or none if h is the maximum.
func (t *Tree[K, V]) successor(h handle) handle {
	if right := t.at(h).right; right != none {
		// one step right, then all the way left
		return t.leftmost(right)
	}
	// up while h is a right child, then one more step up
	parent := t.at(h).parent
	for parent != none && t.at(parent).right == h {
		h, parent = parent, t.at(parent).parent
	}
	return parent
}

// predecessor returns the previous node in ascending key order, or none if h is the minimum.
func (t *Tree[K, V]) predecessor(h handle) handle {
	if left := t.at(h).left; left != none {
		// one step left, then all the way right
		return t.rightmost(left)
	}
	// up while h is a left child, then one more step up
	parent := t.at(h).parent
	for parent != none && t.at(parent).left == h {
		h, parent = parent, t.at(parent).parent
	}
	return parent
}

// walk yields entries starting at h, stepping with next until it runs off the tree.
func (t *Tree[K, V]) walk(h handle, next func(handle) handle) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for cur := h; cur != none; cur = next(cur) {
			n := t.at(cur)
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// All returns all entries in ascending key order.
// The sequence is lazy, and must not be used after t is mutated.
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.walk(t.minNode, t.successor)(yield)
	}
}

// Backward returns all entries in descending key order.
// The sequence is lazy, and must not be used after t is mutated.
func (t *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		t.walk(t.maxNode, t.predecessor)(yield)
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns all values in ascending key order.
func (t *Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}
