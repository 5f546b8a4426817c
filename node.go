package bst

// Nodes live in an arena owned by the tree and refer to each other by handle,
// so the parent back-references do not form a cycle of owning pointers.

// A handle is an index into Tree.nodes.
// Slot 0 is never used, which makes the zero handle mean "absent".
type handle int32

const none handle = 0

type node[K, V any] struct {
	key    K
	value  V
	parent handle
	left   handle
	right  handle
}

// Returns 0, 1, or 2.
func (n *node[K, V]) cardinality() int {
	count := 0
	if n.left != none {
		count++
	}
	if n.right != none {
		count++
	}
	return count
}

// The returned pointer is only valid until the next alloc.
func (t *Tree[K, V]) at(h handle) *node[K, V] {
	return &t.nodes[h]
}

// alloc returns a new leaf holding key and value, reusing a freed slot if there is one.
func (t *Tree[K, V]) alloc(key K, value V, parent handle) handle {
	if n := len(t.free); n > 0 {
		h := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[h] = node[K, V]{key: key, value: value, parent: parent}
		return h
	}
	t.nodes = append(t.nodes, node[K, V]{key: key, value: value, parent: parent})
	return handle(len(t.nodes) - 1)
}

// release zeroes the slot so the arena doesn't retain keys and values, and puts it on the free list.
func (t *Tree[K, V]) release(h handle) {
	t.nodes[h] = node[K, V]{}
	t.free = append(t.free, h)
}

// leftmost returns the node with the smallest key in the subtree rooted at h.
func (t *Tree[K, V]) leftmost(h handle) handle {
	if h == none {
		return none
	}
	for t.nodes[h].left != none {
		h = t.nodes[h].left
	}
	return h
}

// rightmost returns the node with the largest key in the subtree rooted at h.
func (t *Tree[K, V]) rightmost(h handle) handle {
	if h == none {
		return none
	}
	for t.nodes[h].right != none {
		h = t.nodes[h].right
	}
	return h
}
