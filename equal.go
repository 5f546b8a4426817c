package bst

// EqualFunc returns whether t and other have the same size and the same entries in ascending order.
// Keys are compared with t's ordering, values with eq.
func (t *Tree[K, V]) EqualFunc(other *Tree[K, V], eq func(a, b V) bool) bool {
	if t.size != other.size {
		return false
	}
	h, o := t.minNode, other.minNode
	for h != none && o != none {
		n, m := t.at(h), other.at(o)
		if t.compare(n.key, m.key) != 0 || !eq(n.value, m.value) {
			return false
		}
		h, o = t.successor(h), other.successor(o)
	}
	return h == none && o == none
}

// Equal is [Tree.EqualFunc] for comparable values.
func Equal[K any, V comparable](a, b *Tree[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}
