// Package graph implements the connectivity layer used to link rooms:
// complete graphs over centers, a union-find, Kruskal's MST and a couple
// of diagnostic queries.
package graph

import (
	"sort"

	"deepwarren/pkg/engine/geom"
)

// Edge connects two node indices with a weight.
type Edge struct {
	A      int
	B      int
	Weight float64
}

// Complete returns every undirected edge over the given points, weighted
// by Euclidean distance. Nodes are identified by their index in points.
func Complete(points []geom.Point) []Edge {
	var edges []Edge
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			edges = append(edges, Edge{
				A:      i,
				B:      j,
				Weight: points[i].Euclidean(points[j]),
			})
		}
	}
	return edges
}

// UnionFind is a disjoint-set forest with path compression and union by rank.
type UnionFind struct {
	parent []int
	rank   []int
}

// NewUnionFind creates n singleton sets, one per node index.
func NewUnionFind(n int) *UnionFind {
	u := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

// Find returns the representative of x's set.
func (u *UnionFind) Find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

// Union merges the sets holding a and b. Returns false if they were
// already in the same set.
func (u *UnionFind) Union(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return true
}

// Same reports whether a and b are in the same set.
func (u *UnionFind) Same(a, b int) bool {
	return u.Find(a) == u.Find(b)
}

// KruskalMST returns a minimum spanning tree over n nodes. Ties are broken
// by input order. With fewer than two nodes or a disconnected input the
// result simply holds as many edges as can be joined.
func KruskalMST(n int, edges []Edge) []Edge {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	uf := NewUnionFind(n)
	var tree []Edge
	for _, e := range sorted {
		if uf.Union(e.A, e.B) {
			tree = append(tree, e)
			if len(tree) == n-1 {
				break
			}
		}
	}
	return tree
}

// TotalWeight sums the weights of the given edges.
func TotalWeight(edges []Edge) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.Weight
	}
	return total
}

// Connected reports whether the edges join all n nodes into one component.
func Connected(n int, edges []Edge) bool {
	if n <= 1 {
		return true
	}
	return len(Components(n, edges)) == 1
}

// Components returns the connected components over n nodes, each as a
// sorted list of node indices, ordered by their smallest member.
func Components(n int, edges []Edge) [][]int {
	uf := NewUnionFind(n)
	for _, e := range edges {
		uf.Union(e.A, e.B)
	}

	groups := make(map[int][]int)
	for i := 0; i < n; i++ {
		root := uf.Find(i)
		groups[root] = append(groups[root], i)
	}

	var roots []int
	for root := range groups {
		roots = append(roots, root)
	}
	sort.Slice(roots, func(i, j int) bool {
		return groups[roots[i]][0] < groups[roots[j]][0]
	})

	components := make([][]int, 0, len(roots))
	for _, root := range roots {
		components = append(components, groups[root])
	}
	return components
}
