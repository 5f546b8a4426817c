package bst

import (
	"fmt"
)

// Things that need to be exported for testing, but should not be part of the public API.
// The identifiers are in the bst package, but the filename ends in _test.go,
// preventing their inclusion in the public API.

type (
	TestingAdjFunction = adjFunction[int]
	TestingTraverser   = traverser[int]
)

var (
	TestingPreOrder      = preOrder[int]
	TestingPostOrder     = postOrder[int]
	TestingBalancedOrder = balancedOrder[int]
)

// TestingArenaSize returns the number of arena slots ever allocated, live or free.
func (t *Tree[K, V]) TestingArenaSize() int {
	return len(t.nodes) - 1
}

// TestingCheck returns an error describing the first violated structural invariant, or nil.
func (t *Tree[K, V]) TestingCheck() error {
	if t.root != none && t.at(t.root).parent != none {
		return fmt.Errorf("root %v has a parent", t.at(t.root).key)
	}
	var err error
	count, prev := 0, none
	t.inOrderRecurse(t.root, func(h handle) bool {
		count++
		n := t.at(h)
		for _, child := range []handle{n.left, n.right} {
			if child != none && t.at(child).parent != h {
				err = fmt.Errorf("child %v of %v has the wrong parent", t.at(child).key, n.key)
				return false
			}
		}
		if prev != none && t.compare(t.at(prev).key, n.key) >= 0 {
			err = fmt.Errorf("keys out of order: %v, %v", t.at(prev).key, n.key)
			return false
		}
		prev = h
		return true
	})
	switch {
	case err != nil:
		return err
	case count != t.size:
		return fmt.Errorf("size is %d, but %d nodes are reachable", t.size, count)
	case t.minNode != t.leftmost(t.root):
		return fmt.Errorf("cached min is stale")
	case t.maxNode != t.rightmost(t.root):
		return fmt.Errorf("cached max is stale")
	case count+len(t.free) != t.TestingArenaSize():
		return fmt.Errorf("%d live + %d free slots, but the arena has %d", count, len(t.free), t.TestingArenaSize())
	}
	return nil
}
