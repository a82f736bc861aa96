// Package generator implements the dungeon generation pipeline: space
// partitioning, room placement and typing, graph connection, corridor
// carving, wall finalization and door placement, sequenced by Builder.
package generator

import (
	"math/rand"

	"deepwarren/pkg/engine/geom"
	"deepwarren/pkg/engine/rng"
)

// Region is a node of the partition tree. Children exactly cover their
// parent with no overlap.
type Region struct {
	Rect  geom.Rect
	Depth int
	Left  *Region
	Right *Region
}

// IsLeaf reports whether the region was not split further.
func (r *Region) IsLeaf() bool {
	return r.Left == nil && r.Right == nil
}

// Leaves returns the leaf regions in left-to-right tree order.
func (r *Region) Leaves() []*Region {
	if r.IsLeaf() {
		return []*Region{r}
	}
	return append(r.Left.Leaves(), r.Right.Leaves()...)
}

// MaxDepth returns the deepest node level in the subtree.
func (r *Region) MaxDepth() int {
	if r.IsLeaf() {
		return r.Depth
	}
	left := r.Left.MaxDepth()
	right := r.Right.MaxDepth()
	if left > right {
		return left
	}
	return right
}

// Count returns the total number of nodes and the number of leaves.
func (r *Region) Count() (total, leaves int) {
	if r.IsLeaf() {
		return 1, 1
	}
	lt, ll := r.Left.Count()
	rt, rl := r.Right.Count()
	return lt + rt + 1, ll + rl
}

// Partitioner recursively splits space into leaf regions that each hold
// at most one room.
type Partitioner struct {
	// MinSplitSize is the smallest region side a split may produce.
	MinSplitSize int
	// MaxDepth bounds the recursion.
	MaxDepth int

	rnd *rand.Rand
}

// NewPartitioner creates a Partitioner drawing randomness from rnd.
func NewPartitioner(minSplitSize, maxDepth int, rnd *rand.Rand) *Partitioner {
	return &Partitioner{MinSplitSize: minSplitSize, MaxDepth: maxDepth, rnd: rnd}
}

// Partition splits bounds recursively and returns the tree root.
func (p *Partitioner) Partition(bounds geom.Rect) *Region {
	root := &Region{Rect: bounds}
	p.split(root)
	return root
}

func (p *Partitioner) split(node *Region) {
	if node.Depth >= p.MaxDepth {
		return
	}

	// An axis is splittable when both halves can keep MinSplitSize.
	canW := node.Rect.W >= 2*p.MinSplitSize
	canH := node.Rect.H >= 2*p.MinSplitSize
	if !canW && !canH {
		return
	}

	// Weight splittable axes by their squared length so long regions
	// split along the long axis most of the time.
	weights := make([]float64, 2)
	if canW {
		weights[0] = float64(node.Rect.W) * float64(node.Rect.W)
	}
	if canH {
		weights[1] = float64(node.Rect.H) * float64(node.Rect.H)
	}

	depth := node.Depth + 1
	if rng.WeightedIndex(p.rnd, weights) == 0 {
		offset := rng.IntBetween(p.rnd, p.MinSplitSize, node.Rect.W-p.MinSplitSize)
		node.Left = &Region{
			Rect:  geom.NewRect(node.Rect.X, node.Rect.Y, offset, node.Rect.H),
			Depth: depth,
		}
		node.Right = &Region{
			Rect:  geom.NewRect(node.Rect.X+offset, node.Rect.Y, node.Rect.W-offset, node.Rect.H),
			Depth: depth,
		}
	} else {
		offset := rng.IntBetween(p.rnd, p.MinSplitSize, node.Rect.H-p.MinSplitSize)
		node.Left = &Region{
			Rect:  geom.NewRect(node.Rect.X, node.Rect.Y, node.Rect.W, offset),
			Depth: depth,
		}
		node.Right = &Region{
			Rect:  geom.NewRect(node.Rect.X, node.Rect.Y+offset, node.Rect.W, node.Rect.H-offset),
			Depth: depth,
		}
	}

	p.split(node.Left)
	p.split(node.Right)
}
