package bst

import (
	"math"
)

// Shape holds the shape metrics of a tree, see [Tree.Shape].
type Shape struct {
	Height    int
	Density   float64
	Unbalance float64
}

// Shape computes [Tree.Height], [Tree.Density], and [Tree.Unbalance] with a single walk of t.
// Like those methods, it is O(n); nothing is cached.
func (t *Tree[K, V]) Shape() Shape {
	if t.size == 0 {
		return Shape{0, math.NaN(), math.NaN()}
	}

	var (
		maxDepth         = 0
		inner, skewed    = 0, 0 // nodes with at least one child, exactly one child
		minTerm, maxTerm = math.MaxInt, 0
	)
	for path := range t.paths(preOrder[handle]) {
		depth := len(path) - 1
		maxDepth = max(maxDepth, depth)
		children := t.at(path[depth]).cardinality()
		if children > 0 {
			inner++
		}
		if children == 1 {
			skewed++
		}
		// only nodes with fewer than two children can end a path
		if children < 2 {
			minTerm = min(minTerm, depth)
			maxTerm = max(maxTerm, depth)
		}
	}

	density := math.NaN()
	if inner > 0 {
		density = 1 - float64(skewed)/float64(inner)
	}
	return Shape{
		Height:    1 + maxDepth,
		Density:   density,
		Unbalance: float64(maxTerm-minTerm) / float64(1+maxTerm),
	}
}

// Height returns the number of nodes on the longest path from the root, 0 if t is empty.
// It walks the whole tree.
func (t *Tree[K, V]) Height() int {
	return t.Shape().Height
}

// Density returns 1 minus the fraction of nodes with exactly one child among nodes with any children.
// 1 means no node has a single child; lower values indicate chain-like stretches.
// It returns NaN if t is empty or no node has a child. It walks the whole tree.
func (t *Tree[K, V]) Density() float64 {
	return t.Shape().Density
}

// Unbalance compares the depths of the nodes with fewer than two children, which are where paths end.
// It returns (max - min) / (1 + max) of those depths, so 0 means all paths have the same length.
// It returns NaN if t is empty. It walks the whole tree.
func (t *Tree[K, V]) Unbalance() float64 {
	return t.Shape().Unbalance
}
