package generator

import (
	"deepwarren/pkg/engine/geom"
	"deepwarren/pkg/engine/world"
	"deepwarren/pkg/game/dungeon"
)

// PlaceDoors converts every wall-family tile 4-adjacent to a corridor
// into a door. Returns the number of doors placed.
func PlaceDoors(grid *world.Grid) int {
	var doors []geom.Point
	grid.ForEach(func(x, y int, t world.Tile) {
		if !dungeon.IsWall(t) {
			return
		}
		for _, q := range grid.CardinalNeighbors(geom.Pt(x, y)) {
			if grid.GetPoint(q) == dungeon.TileCorridor {
				doors = append(doors, geom.Pt(x, y))
				return
			}
		}
	})

	for _, p := range doors {
		grid.SetPoint(p, dungeon.TileDoor)
	}
	return len(doors)
}

// CountDoors returns the number of door tiles on the grid.
func CountDoors(grid *world.Grid) int {
	return grid.Count(dungeon.TileDoor)
}
