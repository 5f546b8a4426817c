package bst

import (
	"cmp"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// Tree is an ordered map backed by an unbalanced binary search tree.
// The zero value is not usable, create instances with [New], [NewFunc], or one of the bulk constructors.
type Tree[K, V any] struct {
	nodes   []node[K, V] // nodes[0] is unused
	free    []handle
	root    handle
	minNode handle
	maxNode handle
	size    int
	compare func(a, b K) int
	log     *logrus.Logger
}

// New returns an empty Tree whose keys are ordered by [cmp.Compare].
func New[K constraints.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc returns an empty Tree whose keys are ordered by compare,
// which must define a total order and return a negative number, zero, or a positive number
// when a < b, a == b, or a > b respectively.
func NewFunc[K, V any](compare func(a, b K) int, opts ...Option) *Tree[K, V] {
	if compare == nil {
		panic("compare must be non-nil")
	}
	o := newOptions(opts)
	return &Tree[K, V]{
		nodes:   make([]node[K, V], 1, o.capacity+1),
		compare: compare,
		log:     o.logger,
	}
}

// Len returns the number of keys in t.
func (t *Tree[K, V]) Len() int {
	return t.size
}

// find returns the node with key, or none.
func (t *Tree[K, V]) find(key K) handle {
	h := t.root
	for h != none {
		n := t.at(h)
		c := t.compare(key, n.key)
		switch {
		case c < 0:
			h = n.left
		case c > 0:
			h = n.right
		default:
			return h
		}
	}
	return none
}

// Get returns the value for key, or an error matching [ErrKeyNotFound].
func (t *Tree[K, V]) Get(key K) (V, error) {
	h := t.find(key)
	if h == none {
		var zero V
		return zero, keyNotFound(key)
	}
	return t.at(h).value, nil
}

// Lookup returns the value for key and whether or not it exists.
func (t *Tree[K, V]) Lookup(key K) (V, bool) {
	h := t.find(key)
	if h == none {
		var zero V
		return zero, false
	}
	return t.at(h).value, true
}

// Contains returns whether key is present in t.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.find(key) != none
}

// Min returns the entry with the smallest key, or ok=false if t is empty.
func (t *Tree[K, V]) Min() (key K, value V, ok bool) {
	if t.minNode == none {
		return key, value, false
	}
	n := t.at(t.minNode)
	return n.key, n.value, true
}

// Max returns the entry with the largest key, or ok=false if t is empty.
func (t *Tree[K, V]) Max() (key K, value V, ok bool) {
	if t.maxNode == none {
		return key, value, false
	}
	n := t.at(t.maxNode)
	return n.key, n.value, true
}

// Set sets the value for key, returning the previous value and whether or not the previous value existed.
// Setting an existing key only replaces its value, the shape of the tree does not change.
func (t *Tree[K, V]) Set(key K, value V) (V, bool) {
	parent, c := none, 0
	for h := t.root; h != none; {
		n := t.at(h)
		c = t.compare(key, n.key)
		if c == 0 {
			prev := n.value
			n.value = value
			return prev, true
		}
		parent = h
		if c < 0 {
			h = n.left
		} else {
			h = n.right
		}
	}

	var zero V
	h := t.alloc(key, value, parent)
	t.size++
	if parent == none {
		t.root, t.minNode, t.maxNode = h, h, h
		return zero, false
	}
	if c < 0 {
		t.at(parent).left = h
		if t.compare(key, t.at(t.minNode).key) < 0 {
			t.minNode = h
		}
	} else {
		t.at(parent).right = h
		if t.compare(key, t.at(t.maxNode).key) > 0 {
			t.maxNode = h
		}
	}
	return zero, false
}

// Delete removes key from t, returning its value, or an error matching [ErrKeyNotFound].
// t is unchanged if key is absent.
func (t *Tree[K, V]) Delete(key K) (V, error) {
	h := t.find(key)
	if h == none {
		var zero V
		return zero, keyNotFound(key)
	}
	prev := t.at(h).value
	updateMin := h == t.minNode
	updateMax := h == t.maxNode

	// When h has two children, the freed slot is its successor's, which may be the cached max.
	freed := t.remove(h)
	if freed == t.maxNode {
		updateMax = true
	}
	if updateMin {
		t.minNode = t.leftmost(t.root)
	}
	if updateMax {
		t.maxNode = t.rightmost(t.root)
	}
	t.size--
	if t.debugEnabled() && (updateMin || updateMax) {
		t.log.WithFields(logrus.Fields{
			"op": "delete", "key": key, "size": t.size, "min": updateMin, "max": updateMax,
		}).Debug("recomputed extremes")
	}
	return prev, nil
}

// Clear removes all keys from t.
func (t *Tree[K, V]) Clear() {
	clear(t.nodes)
	t.nodes = t.nodes[:1]
	t.free = t.free[:0]
	t.root, t.minNode, t.maxNode = none, none, none
	t.size = 0
}

// remove structurally removes h, returning the handle of the slot that was released.
// A node with two children is never unlinked directly:
// its in-order successor's key and value are copied into it, and the successor is removed instead.
func (t *Tree[K, V]) remove(h handle) handle {
	n := t.at(h)
	switch {
	case n.left == none && n.right == none:
		t.replaceInParent(h, none)
	case n.left == none:
		t.replaceInParent(h, n.right)
	case n.right == none:
		t.replaceInParent(h, n.left)
	default:
		succ := t.leftmost(n.right)
		s := t.at(succ)
		n.key, n.value = s.key, s.value
		if t.debugEnabled() {
			t.log.WithFields(logrus.Fields{"op": "remove", "key": s.key}).Debug("copied successor into two-child node")
		}
		// succ has no left child, so this terminates in one of the cases above.
		return t.remove(succ)
	}
	t.release(h)
	return h
}

// replaceInParent makes replacement take old's place under old's parent, or as the root.
// replacement may be none.
func (t *Tree[K, V]) replaceInParent(old, replacement handle) {
	parent := t.at(old).parent
	switch {
	case parent == none:
		t.root = replacement
	case t.at(parent).left == old:
		t.at(parent).left = replacement
	default:
		t.at(parent).right = replacement
	}
	if replacement != none {
		t.at(replacement).parent = parent
	}
}
