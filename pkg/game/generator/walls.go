package generator

import (
	"deepwarren/pkg/engine/geom"
	"deepwarren/pkg/engine/world"
	"deepwarren/pkg/game/dungeon"
)

// AddInitialWalls turns every outside cell 8-adjacent to a passable cell
// into a generic wall. Returns the number of walls raised.
func AddInitialWalls(grid *world.Grid) int {
	var raise []geom.Point
	grid.ForEach(func(x, y int, t world.Tile) {
		if t != dungeon.TileOutside {
			return
		}
		for _, q := range grid.AllNeighbors(geom.Pt(x, y)) {
			if dungeon.IsPassable(grid.GetPoint(q)) {
				raise = append(raise, geom.Pt(x, y))
				return
			}
		}
	})

	for _, p := range raise {
		grid.SetPoint(p, dungeon.TileWall)
	}
	return len(raise)
}

// wallShape is the passability of the eight neighbours around a wall.
type wallShape struct {
	n, e, s, w     bool
	ne, se, sw, nw bool
}

func (s wallShape) cardinals() int {
	count := 0
	for _, b := range []bool{s.n, s.e, s.s, s.w} {
		if b {
			count++
		}
	}
	return count
}

func (s wallShape) diagonals() int {
	count := 0
	for _, b := range []bool{s.ne, s.se, s.sw, s.nw} {
		if b {
			count++
		}
	}
	return count
}

// AdjustWalls reshapes every wall tile from its 8-neighbour passability
// pattern. All shapes are read from a snapshot and written to a fresh
// grid, so a rule never observes another rule's output.
//
// Priority, highest first:
//  1. three or more passable cardinals: the wall is stranded inside
//     walkable space and is demoted to corridor
//  2. a single passable diagonal whose adjacent cardinals are blocked:
//     concave corner, named for the corner opposite the open diagonal
//  3. two adjacent passable cardinals with their shared diagonal open:
//     convex corner, again named for the opposite corner
//  4. exactly one passable cardinal: straight side facing it
//  5. generic wall
func AdjustWalls(grid *world.Grid) *world.Grid {
	snapshot := grid.Snapshot()
	out := grid.Snapshot()

	snapshot.ForEach(func(x, y int, t world.Tile) {
		if !dungeon.IsWall(t) {
			return
		}
		out.Set(x, y, shapeWall(readShape(snapshot, x, y)))
	})

	return out
}

func readShape(grid *world.Grid, x, y int) wallShape {
	passable := func(dx, dy int) bool {
		return dungeon.IsPassable(grid.Get(x+dx, y+dy))
	}
	return wallShape{
		n:  passable(0, -1),
		e:  passable(1, 0),
		s:  passable(0, 1),
		w:  passable(-1, 0),
		ne: passable(1, -1),
		se: passable(1, 1),
		sw: passable(-1, 1),
		nw: passable(-1, -1),
	}
}

func shapeWall(s wallShape) world.Tile {
	if s.cardinals() >= 3 {
		return dungeon.TileCorridor
	}

	if s.diagonals() == 1 {
		switch {
		case s.nw && !s.n && !s.w:
			return dungeon.TileWallConcaveBottomRight
		case s.ne && !s.n && !s.e:
			return dungeon.TileWallConcaveBottomLeft
		case s.sw && !s.s && !s.w:
			return dungeon.TileWallConcaveTopRight
		case s.se && !s.s && !s.e:
			return dungeon.TileWallConcaveTopLeft
		}
	}

	switch {
	case s.e && s.s && s.se:
		return dungeon.TileWallConvexTopLeft
	case s.w && s.s && s.sw:
		return dungeon.TileWallConvexTopRight
	case s.e && s.n && s.ne:
		return dungeon.TileWallConvexBottomLeft
	case s.w && s.n && s.nw:
		return dungeon.TileWallConvexBottomRight
	}

	if s.cardinals() == 1 {
		switch {
		case s.s:
			return dungeon.TileWallTop
		case s.n:
			return dungeon.TileWallBottom
		case s.e:
			return dungeon.TileWallLeft
		case s.w:
			return dungeon.TileWallRight
		}
	}

	return dungeon.TileWall
}

// FinalizeWalls runs the full wall pass: raise the initial ring, then
// shape it. Returns the reshaped grid.
func FinalizeWalls(grid *world.Grid) *world.Grid {
	AddInitialWalls(grid)
	return AdjustWalls(grid)
}
