package bst

import (
	"cmp"
	"slices"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// FromMap returns a new Tree holding the entries of m, inserted in an order that minimizes its height.
func FromMap[K constraints.Ordered, V any](m map[K]V, opts ...Option) *Tree[K, V] {
	entries := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[K, V]{k, v})
	}
	return FromEntriesFunc(cmp.Compare[K], entries, opts...)
}

// FromEntries returns a new Tree holding entries, inserted in an order that minimizes its height.
// If a key appears more than once, the last entry with that key wins, as if the entries had been Set in order.
func FromEntries[K constraints.Ordered, V any](entries []Entry[K, V], opts ...Option) *Tree[K, V] {
	return FromEntriesFunc(cmp.Compare[K], entries, opts...)
}

// FromEntriesFunc is like [FromEntries], with keys ordered by compare as in [NewFunc].
//
// The entries are sorted once, then the midpoint of each sorted run is inserted before the two halves on either side.
// Replaying that order through [Tree.Set] yields a tree of near-minimal height.
// The tree is not rebalanced afterwards, later mutations can still degrade its shape.
func FromEntriesFunc[K, V any](compare func(a, b K) int, entries []Entry[K, V], opts ...Option) *Tree[K, V] {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry[K, V]) int {
		return compare(a.Key, b.Key)
	})
	// Keep the last of each run of equal keys.
	unique := sorted[:0]
	for i, e := range sorted {
		if i+1 < len(sorted) && compare(e.Key, sorted[i+1].Key) == 0 {
			continue
		}
		unique = append(unique, e)
	}

	t := NewFunc[K, V](compare, append(slices.Clip(opts), WithCapacity(len(unique)))...)
	for _, e := range balancedOrder(unique) {
		t.Set(e.Key, e.Value)
	}
	if t.debugEnabled() {
		t.log.WithFields(logrus.Fields{
			"op": "build", "entries": len(entries), "size": t.size,
		}).Debug("built balanced tree")
	}
	return t
}

// balancedOrder returns the elements of sorted in insertion order for a balanced tree:
// the midpoint first, then recursively the lower half, then the upper half.
func balancedOrder[T any](sorted []T) []T {
	order := make([]T, 0, len(sorted))
	var recurse func(start, end int)
	recurse = func(start, end int) {
		if start >= end {
			return
		}
		mid := start + (end-start)/2
		order = append(order, sorted[mid])
		recurse(start, mid)
		recurse(mid+1, end)
	}
	recurse(0, len(sorted))
	return order
}
