package generator

import (
	"log"

	"deepwarren/pkg/engine/geom"
	"deepwarren/pkg/engine/graph"
	"deepwarren/pkg/engine/pathfind"
	"deepwarren/pkg/engine/world"
	"deepwarren/pkg/game/dungeon"
)

// CorridorCarver stamps corridors along A* paths between room anchors.
// Every tile is traversable during carving; the cost map steers paths
// toward existing walkways so corridors merge instead of running parallel.
type CorridorCarver struct {
	Costs map[world.Tile]float64
}

// DefaultCarveCosts makes existing corridors and floors cheaper than
// open ground.
func DefaultCarveCosts() map[world.Tile]float64 {
	return map[world.Tile]float64{
		dungeon.TileCorridor: 0.5,
		dungeon.TileFloor:    0.8,
	}
}

// NewCorridorCarver creates a carver with the default cost map.
func NewCorridorCarver() *CorridorCarver {
	return &CorridorCarver{Costs: DefaultCarveCosts()}
}

// Carve connects each edge's rooms by walking A* between their facing
// anchors and converting outside cells on the path into corridor. An
// edge with no path is logged and skipped; the dungeon stays usable as
// long as other edges keep it connected.
func (c *CorridorCarver) Carve(grid *world.Grid, rooms []*dungeon.Room, edges []graph.Edge) {
	finder := pathfind.New(grid, false)
	finder.SetCosts(c.Costs)

	for _, e := range edges {
		if e.A < 0 || e.A >= len(rooms) || e.B < 0 || e.B >= len(rooms) {
			continue
		}
		from := rooms[e.A]
		to := rooms[e.B]

		path := finder.FindPath(from.AnchorToward(to.Center()), to.AnchorToward(from.Center()))
		if len(path) == 0 {
			log.Printf("no corridor path between rooms %d and %d, skipping edge", from.ID, to.ID)
			continue
		}

		for _, p := range path {
			if grid.GetPoint(p) == dungeon.TileOutside {
				grid.SetPoint(p, dungeon.TileCorridor)
			}
		}
	}
}

// Dilate widens corridors by one pass: every outside cell 4-adjacent to
// a corridor becomes corridor. Targets are collected before writing so
// the pass cannot cascade.
func (c *CorridorCarver) Dilate(grid *world.Grid) int {
	var grow []geom.Point
	grid.ForEach(func(x, y int, t world.Tile) {
		if t != dungeon.TileCorridor {
			return
		}
		for _, q := range grid.CardinalNeighbors(geom.Pt(x, y)) {
			if grid.GetPoint(q) == dungeon.TileOutside {
				grow = append(grow, q)
			}
		}
	})

	n := 0
	for _, p := range grow {
		if grid.GetPoint(p) == dungeon.TileOutside {
			grid.SetPoint(p, dungeon.TileCorridor)
			n++
		}
	}
	return n
}
