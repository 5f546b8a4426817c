package bst

import (
	"iter"
)

// An adjacency function from paths to nodes adjacent to the path's end.
// Adjacency functions should be idempotent.
type adjFunction[T any] func([]T) iter.Seq[T]

// A traverser returns a sequence of paths given a root node and an adjacency function.
// Traversers should be idempotent.
type traverser[T any] func(T, adjFunction[T]) iter.Seq[[]T]

// The returned sequence references a volatile internal slice,
// clone it if you need it after a step in the iteration.
func preOrder[T any](root T, adj adjFunction[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		preOrderRecurse([]T{root}, adj, yield)
	}
}

// Returns true if done (some yield has returned false).
func preOrderRecurse[T any](path []T, adj adjFunction[T], yield func([]T) bool) bool {
	if !yield(path) {
		return true
	}
	for node := range adj(path) {
		if preOrderRecurse(append(path, node), adj, yield) {
			return true
		}
	}
	return false
}

// The returned sequence references a volatile internal slice,
// clone it if you need it after a step in the iteration.
func postOrder[T any](root T, adj adjFunction[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		postOrderRecurse([]T{root}, adj, yield)
	}
}

// Returns true if done (some yield has returned false).
func postOrderRecurse[T any](path []T, adj adjFunction[T], yield func([]T) bool) bool {
	for node := range adj(path) {
		if postOrderRecurse(append(path, node), adj, yield) {
			return true
		}
	}
	return !yield(path)
}

// childAdj is the adjacency function of the tree's nodes, left child first.
func (t *Tree[K, V]) childAdj(path []handle) iter.Seq[handle] {
	return func(yield func(handle) bool) {
		n := t.at(path[len(path)-1])
		if n.left != none && !yield(n.left) {
			return
		}
		if n.right != none {
			yield(n.right)
		}
	}
}

// paths returns the paths from the root to every node using traverse, or nothing if t is empty.
func (t *Tree[K, V]) paths(traverse traverser[handle]) iter.Seq[[]handle] {
	if t.root == none {
		return func(func([]handle) bool) {}
	}
	return traverse(t.root, t.childAdj)
}

// The generic traversers can't do in-order, they don't know which child is the left one.
// Returns true if done (some yield has returned false).
func (t *Tree[K, V]) inOrderRecurse(h handle, yield func(handle) bool) bool {
	if h == none {
		return false
	}
	n := t.at(h)
	return t.inOrderRecurse(n.left, yield) || !yield(h) || t.inOrderRecurse(n.right, yield)
}

func (t *Tree[K, V]) visit(traverse traverser[handle]) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.size)
	for path := range t.paths(traverse) {
		n := t.at(path[len(path)-1])
		entries = append(entries, Entry[K, V]{n.key, n.value})
	}
	return entries
}

// VisitPreOrder returns all entries, each node before its left and then right subtrees.
// The order reflects the shape of the tree, it is meant for structural inspection.
func (t *Tree[K, V]) VisitPreOrder() []Entry[K, V] {
	return t.visit(preOrder[handle])
}

// VisitPostOrder returns all entries, each node after its left and then right subtrees.
// The order reflects the shape of the tree, it is meant for structural inspection.
func (t *Tree[K, V]) VisitPostOrder() []Entry[K, V] {
	return t.visit(postOrder[handle])
}

// VisitInOrder returns all entries in ascending key order, collected by a recursive walk.
func (t *Tree[K, V]) VisitInOrder() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, t.size)
	t.inOrderRecurse(t.root, func(h handle) bool {
		n := t.at(h)
		entries = append(entries, Entry[K, V]{n.key, n.value})
		return true
	})
	return entries
}
