package bst_test

import (
	"iter"
	rand "math/rand/v2"
	"testing"

	bst "github.com/squillero/pythonic-bst"
	"github.com/stretchr/testify/require"
)

// This file contains things that help in writing tests.
// There are no top-level tests here.

type (
	Bounds  = bst.Bounds[int]
	entry   = bst.Entry[int, int]
	intTree = bst.Tree[int, int]
)

var (
	From       = bst.From[int]
	forwardAll = bst.Everything[int]()
	reverseAll = bst.Everything[int]().Reverse()
)

func newRandom(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Returns 0, 1, ..., n-1 in random order.
func shuffled(n int, random *rand.Rand) []int {
	return random.Perm(n)
}

func collect(c *bst.Cursor[int, int]) []entry {
	return collectSeq(c.All())
}

func collectSeq(seq iter.Seq2[int, int]) []entry {
	entries := []entry{}
	for k, v := range seq {
		entries = append(entries, entry{k, v})
	}
	return entries
}

func keysOf(entries []entry) []int {
	keys := make([]int, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Returns entries {k, k} for each of keys, in order.
func identityEntries(keys ...int) []entry {
	entries := make([]entry, len(keys))
	for i, k := range keys {
		entries[i] = entry{k, k}
	}
	return entries
}

// Returns the ints in [low, high), or (high, low] in descending order if high < low.
func span(low, high int) []int {
	result := []int{}
	if low <= high {
		for i := low; i < high; i++ {
			result = append(result, i)
		}
		return result
	}
	for i := low; i > high; i-- {
		result = append(result, i)
	}
	return result
}

// Sets each key in order, with the key as its value.
func newIntTree(keys ...int) *intTree {
	tree := bst.New[int, int]()
	for _, k := range keys {
		tree.Set(k, k)
	}
	return tree
}

// Asserts that tree is structurally sound, and has the same contents as ref.
func requireSameAs(t *testing.T, ref *reference, tree *intTree) {
	t.Helper()
	require.NoError(t, tree.TestingCheck())
	require.Equal(t, ref.Len(), tree.Len())
	require.Equal(t, collectSeq(ref.All()), tree.VisitInOrder())
	refMin, _, refOk := ref.Min()
	treeMin, _, treeOk := tree.Min()
	require.Equal(t, refOk, treeOk)
	require.Equal(t, refMin, treeMin)
	refMax, _, refOk := ref.Max()
	treeMax, _, treeOk := tree.Max()
	require.Equal(t, refOk, treeOk)
	require.Equal(t, refMax, treeMax)
}
