package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"deepwarren/pkg/engine/geom"
	"deepwarren/pkg/engine/graph"
	"deepwarren/pkg/game/dungeon"
)

// Extra edges longer than this multiple of the mean MST edge are dropped.
const extraEdgeLengthFactor = 1.5

// GraphBuilder decides which room pairs get corridors: the MST over the
// room centers guarantees connectivity, plus a configurable share of
// extra edges for loops.
type GraphBuilder struct {
	// ExtraRatio is the fraction of surviving non-tree candidates that
	// become loop edges.
	ExtraRatio float64

	rnd *rand.Rand
}

// NewGraphBuilder creates a GraphBuilder drawing randomness from rnd.
func NewGraphBuilder(extraRatio float64, rnd *rand.Rand) *GraphBuilder {
	return &GraphBuilder{ExtraRatio: extraRatio, rnd: rnd}
}

// Connect returns the edges to carve between rooms, indexed by room
// slice position. The MST comes first, extra edges after it.
func (b *GraphBuilder) Connect(rooms []*dungeon.Room) []graph.Edge {
	if len(rooms) < 2 {
		return nil
	}

	centers := make([]geom.Point, len(rooms))
	for i, room := range rooms {
		centers[i] = room.Center()
	}

	all := graph.Complete(centers)
	tree := graph.KruskalMST(len(rooms), all)
	if b.ExtraRatio <= 0 || len(rooms) < 3 {
		return tree
	}

	extras := b.pickExtras(rooms, centers, all, tree)
	return append(tree, extras...)
}

// pickExtras filters the non-tree edges down to short, non-redundant,
// unobstructed candidates and samples the configured share of them.
func (b *GraphBuilder) pickExtras(rooms []*dungeon.Room, centers []geom.Point, all, tree []graph.Edge) []graph.Edge {
	inTree := mapset.New[[2]int]()
	adjacency := make(map[int]mapset.Set[int])
	neighbors := func(n int) mapset.Set[int] {
		set, ok := adjacency[n]
		if !ok {
			set = mapset.New[int]()
			adjacency[n] = set
		}
		return set
	}
	for _, e := range tree {
		inTree.Put(edgeKey(e.A, e.B))
		neighbors(e.A).Put(e.B)
		neighbors(e.B).Put(e.A)
	}

	maxLength := extraEdgeLengthFactor * graph.TotalWeight(tree) / float64(len(tree))

	var candidates []graph.Edge
	for _, e := range all {
		if inTree.Has(edgeKey(e.A, e.B)) {
			continue
		}
		if e.Weight > maxLength {
			continue
		}
		// A shared tree neighbour means the loop would be a trivial triangle.
		if shareNeighbor(neighbors(e.A), neighbors(e.B)) {
			continue
		}
		if b.crossesRoom(centers[e.A], centers[e.B], e.A, e.B, rooms) {
			continue
		}
		candidates = append(candidates, e)
	}

	take := int(b.ExtraRatio * float64(len(candidates)))
	if take <= 0 {
		return nil
	}

	b.rnd.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return candidates[:take]
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func shareNeighbor(a, b mapset.Set[int]) bool {
	found := false
	a.Each(func(n int) {
		if b.Has(n) {
			found = true
		}
	})
	return found
}

// crossesRoom reports whether the straight segment between the two
// centers passes through any third room's rectangle.
func (b *GraphBuilder) crossesRoom(from, to geom.Point, a, c int, rooms []*dungeon.Room) bool {
	for i, room := range rooms {
		if i == a || i == c {
			continue
		}
		if geom.SegmentIntersectsRect(from, to, room.Rect) {
			return true
		}
	}
	return false
}
