package generator

import (
	"math/rand"
	"testing"

	"deepwarren/pkg/engine/geom"
)

func TestPartitionCoversParentExactly(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	p := NewPartitioner(10, 5, rnd)

	bounds := geom.NewRect(0, 0, 120, 100)
	root := p.Partition(bounds)

	area := 0
	for _, leaf := range root.Leaves() {
		area += leaf.Rect.Area()
	}
	if area != bounds.Area() {
		t.Errorf("leaf areas sum to %d, want %d", area, bounds.Area())
	}

	leaves := root.Leaves()
	for i := 0; i < len(leaves); i++ {
		for j := i + 1; j < len(leaves); j++ {
			if leaves[i].Rect.Intersects(leaves[j].Rect) {
				t.Fatalf("leaves %v and %v overlap", leaves[i].Rect, leaves[j].Rect)
			}
		}
	}
}

func TestPartitionRespectsDepthBound(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	p := NewPartitioner(5, 3, rnd)

	root := p.Partition(geom.NewRect(0, 0, 200, 200))
	if d := root.MaxDepth(); d > 3 {
		t.Errorf("tree depth %d exceeds bound 3", d)
	}
}

func TestPartitionRespectsMinSplitSize(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	p := NewPartitioner(12, 8, rnd)

	root := p.Partition(geom.NewRect(0, 0, 150, 130))
	for _, leaf := range root.Leaves() {
		if leaf.Rect.W < 12 || leaf.Rect.H < 12 {
			t.Fatalf("leaf %v smaller than the minimum split size", leaf.Rect)
		}
	}
}

func TestPartitionTooSmallToSplit(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	p := NewPartitioner(10, 6, rnd)

	root := p.Partition(geom.NewRect(0, 0, 19, 19))
	if !root.IsLeaf() {
		t.Error("a region below twice the minimum on both axes must stay whole")
	}
	total, leaves := root.Count()
	if total != 1 || leaves != 1 {
		t.Errorf("Count() = (%d,%d), want (1,1)", total, leaves)
	}
}

func TestPartitionForcedAxis(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	p := NewPartitioner(10, 1, rnd)

	// Only the width is splittable, so the cut must be vertical.
	root := p.Partition(geom.NewRect(0, 0, 40, 12))
	if root.IsLeaf() {
		t.Fatal("splittable region was not split")
	}
	if root.Left.Rect.H != 12 || root.Right.Rect.H != 12 {
		t.Error("forced vertical split should keep full height in both children")
	}
	if root.Left.Rect.W < 10 || root.Right.Rect.W < 10 {
		t.Errorf("split offset out of range: %v | %v", root.Left.Rect, root.Right.Rect)
	}
}
