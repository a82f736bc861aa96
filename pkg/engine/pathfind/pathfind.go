// Package pathfind runs A* and flood-fill searches over a tile grid.
package pathfind

import (
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"deepwarren/pkg/engine/geom"
	"deepwarren/pkg/engine/world"
)

// Finder searches a grid with a configurable movement model. The zero
// cost of a tile is 1; tiles absent from the passable set block movement,
// except the scaffold tile which is always traversable.
type Finder struct {
	grid     *world.Grid
	diagonal bool

	passable    mapset.Set[world.Tile]
	hasPassable bool

	costs map[world.Tile]float64

	scaffold    world.Tile
	hasScaffold bool
}

// New creates a Finder over grid. With diagonal set, moves cover all
// eight neighbours and the heuristic switches to Chebyshev distance.
func New(grid *world.Grid, diagonal bool) *Finder {
	return &Finder{grid: grid, diagonal: diagonal}
}

// SetPassable restricts movement to the given tiles. Without a passable
// set every tile is traversable.
func (f *Finder) SetPassable(tiles ...world.Tile) {
	f.passable = mapset.New[world.Tile]()
	for _, t := range tiles {
		f.passable.Put(t)
	}
	f.hasPassable = true
}

// SetPassableSet restricts movement to the tiles in set.
func (f *Finder) SetPassableSet(set mapset.Set[world.Tile]) {
	f.passable = set
	f.hasPassable = true
}

// SetCosts assigns per-tile step costs. Tiles missing from the map cost 1.
func (f *Finder) SetCosts(costs map[world.Tile]float64) {
	f.costs = costs
}

// SetScaffold marks a tile as traversable regardless of the passable set.
// Corridor carving walks over unbuilt ground this way.
func (f *Finder) SetScaffold(t world.Tile) {
	f.scaffold = t
	f.hasScaffold = true
}

func (f *Finder) traversable(p geom.Point) bool {
	t := f.grid.GetPoint(p)
	if f.hasScaffold && t == f.scaffold {
		return true
	}
	if !f.hasPassable {
		return true
	}
	return f.passable.Has(t)
}

func (f *Finder) stepCost(p geom.Point) float64 {
	if f.costs == nil {
		return 1
	}
	if c, ok := f.costs[f.grid.GetPoint(p)]; ok {
		return c
	}
	return 1
}

func (f *Finder) heuristic(a, b geom.Point) float64 {
	if f.diagonal {
		return float64(a.Chebyshev(b))
	}
	return float64(a.Manhattan(b))
}

func (f *Finder) directions() []world.Direction {
	if f.diagonal {
		return world.AllDirections()
	}
	return world.CardinalDirections()
}

type frontierNode struct {
	p     geom.Point
	f     float64
	order int
}

// FindPath returns the cheapest path from start to goal, inclusive of
// both endpoints. The empty slice means no path exists. Either endpoint
// being out of bounds or blocked yields no path.
func (f *Finder) FindPath(start, goal geom.Point) []geom.Point {
	if !f.grid.IsValidPosition(start.X, start.Y) || !f.grid.IsValidPosition(goal.X, goal.Y) {
		return nil
	}
	if !f.traversable(start) || !f.traversable(goal) {
		return nil
	}
	if start == goal {
		return []geom.Point{start}
	}

	frontier := heap.New[frontierNode](func(a, b frontierNode) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.order < b.order
	})

	gScore := map[geom.Point]float64{start: 0}
	cameFrom := make(map[geom.Point]geom.Point)
	closed := mapset.New[geom.Point]()

	order := 0
	frontier.Push(frontierNode{p: start, f: f.heuristic(start, goal)})

	for frontier.Size() > 0 {
		node, _ := frontier.Pop()
		current := node.p

		if current == goal {
			return reconstruct(cameFrom, current)
		}
		if closed.Has(current) {
			continue
		}
		closed.Put(current)

		for _, dir := range f.directions() {
			dx, dy := dir.Delta()
			next := geom.Pt(current.X+dx, current.Y+dy)

			if !f.grid.IsValidPosition(next.X, next.Y) || !f.traversable(next) {
				continue
			}

			tentative := gScore[current] + f.stepCost(next)
			if prev, seen := gScore[next]; seen && tentative >= prev {
				continue
			}

			gScore[next] = tentative
			cameFrom[next] = current
			order++
			frontier.Push(frontierNode{
				p:     next,
				f:     tentative + f.heuristic(next, goal),
				order: order,
			})
		}
	}

	return nil
}

func reconstruct(cameFrom map[geom.Point]geom.Point, end geom.Point) []geom.Point {
	path := []geom.Point{end}
	for {
		prev, ok := cameFrom[end]
		if !ok {
			break
		}
		path = append(path, prev)
		end = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// FindPaths searches from start to every goal. Unreachable goals yield
// nil entries, keeping results aligned with goals.
func (f *Finder) FindPaths(start geom.Point, goals []geom.Point) [][]geom.Point {
	paths := make([][]geom.Point, len(goals))
	for i, goal := range goals {
		paths[i] = f.FindPath(start, goal)
	}
	return paths
}

// Reachable returns every traversable position within maxDist steps of
// start, including start itself. A negative maxDist removes the bound.
func (f *Finder) Reachable(start geom.Point, maxDist int) mapset.Set[geom.Point] {
	visited := mapset.New[geom.Point]()
	if !f.grid.IsValidPosition(start.X, start.Y) || !f.traversable(start) {
		return visited
	}

	type hop struct {
		p    geom.Point
		dist int
	}
	queue := []hop{{p: start}}
	visited.Put(start)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if maxDist >= 0 && cur.dist == maxDist {
			continue
		}

		for _, dir := range f.directions() {
			dx, dy := dir.Delta()
			next := geom.Pt(cur.p.X+dx, cur.p.Y+dy)

			if !f.grid.IsValidPosition(next.X, next.Y) || visited.Has(next) || !f.traversable(next) {
				continue
			}
			visited.Put(next)
			queue = append(queue, hop{p: next, dist: cur.dist + 1})
		}
	}

	return visited
}
