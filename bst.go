// Package bst provides an ordered map backed by an unbalanced binary search tree.
//
// A [Tree] works almost like a map with sorted keys.
// Besides the usual get/set/delete operations it supports ordered iteration in both directions,
// range queries described by [Bounds], range assignment and deletion,
// pre/in/post-order visits, and a few shape metrics ([Tree.Height], [Tree.Density], [Tree.Unbalance]).
//
// The tree is never rebalanced.
// Inserting keys in sorted order degrades it to a linked list, and that is accepted behavior.
// The bulk constructors ([FromMap], [FromEntries], [FromEntriesFunc]) insert entries in an order
// that yields a tree of near-minimal height, but only once, at construction.
//
// A Tree is not safe for concurrent use.
// Iterators and cursors hold a live reference into the tree and advance lazily;
// mutating the tree while one is outstanding invalidates it, and using it afterwards is undefined behavior.
package bst

import (
	"iter"
)

// OrderedMap is essentially an ordered map[K]V.
// [Tree] is the only implementation in this package,
// the interface exists so tests and benchmarks can substitute a reference model.
type OrderedMap[K, V any] interface {
	// Set sets the value for key, returning the previous value and whether or not the previous value existed.
	Set(key K, value V) (previous V, ok bool)

	// Get returns the value for key, or an error matching [ErrKeyNotFound].
	Get(key K) (V, error)

	// Delete removes key, returning its value, or an error matching [ErrKeyNotFound].
	Delete(key K) (previous V, err error)

	// Contains returns whether key is present.
	Contains(key K) bool

	// Len returns the number of keys.
	Len() int

	// All returns all entries in ascending key order.
	All() iter.Seq2[K, V]

	// Backward returns all entries in descending key order.
	Backward() iter.Seq2[K, V]
}

// Entry is a key/value pair, as returned by the visit methods and consumed by the bulk constructors.
type Entry[K, V any] struct {
	Key   K
	Value V
}

var _ OrderedMap[int, int] = (*Tree[int, int])(nil)
