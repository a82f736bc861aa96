package world

import (
	"deepwarren/pkg/engine/geom"
)

// Tile is the label held by a single grid cell, e.g. "outside" or "corridor".
type Tile string

// Grid represents the dungeon map. Every cell always holds exactly one
// tile label; cells start out as the fill tile.
type Grid struct {
	cells  [][]Tile
	width  int
	height int
	fill   Tile
}

// NewGrid creates a new grid of the given dimensions, filled with fill.
func NewGrid(width, height int, fill Tile) *Grid {
	g := &Grid{}
	g.Build(width, height, fill)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(width, height int, fill Tile) {
	if width <= 0 || height <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.width = width
	g.height = height
	g.fill = fill

	g.cells = make([][]Tile, height)
	for y := 0; y < height; y++ {
		g.cells[y] = make([]Tile, width)
		for x := 0; x < width; x++ {
			g.cells[y][x] = fill
		}
	}
}

// Width returns the number of columns in the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid
func (g *Grid) Height() int {
	return g.height
}

// Fill returns the tile used for empty and out-of-bounds cells
func (g *Grid) Fill() Tile {
	return g.fill
}

// Bounds returns the grid extent as a rectangle at the origin.
func (g *Grid) Bounds() geom.Rect {
	return geom.NewRect(0, 0, g.width, g.height)
}

// IsValidPosition checks if an x/y position is within grid bounds
func (g *Grid) IsValidPosition(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile at the given position. Out-of-bounds positions
// read as the fill tile, so neighbour scans never need bounds checks.
func (g *Grid) Get(x, y int) Tile {
	if !g.IsValidPosition(x, y) {
		return g.fill
	}
	return g.cells[y][x]
}

// GetPoint returns the tile at p.
func (g *Grid) GetPoint(p geom.Point) Tile {
	return g.Get(p.X, p.Y)
}

// Set writes the tile at the given position. Returns false if out of bounds.
func (g *Grid) Set(x, y int, t Tile) bool {
	if !g.IsValidPosition(x, y) {
		return false
	}
	g.cells[y][x] = t
	return true
}

// SetPoint writes the tile at p. Returns false if out of bounds.
func (g *Grid) SetPoint(p geom.Point, t Tile) bool {
	return g.Set(p.X, p.Y, t)
}

// CenterPosition returns the x and y of the grid center
func (g *Grid) CenterPosition() (int, int) {
	return g.width / 2, g.height / 2
}

// GetRelative returns the tile adjacent to p in the specified direction
func (g *Grid) GetRelative(p geom.Point, dir Direction) Tile {
	dx, dy := dir.Delta()
	return g.Get(p.X+dx, p.Y+dy)
}

// ForEach iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEach(fn func(x, y int, t Tile)) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			fn(x, y, g.cells[y][x])
		}
	}
}

// Count returns the number of cells holding tile t.
func (g *Grid) Count(t Tile) int {
	n := 0
	g.ForEach(func(x, y int, cur Tile) {
		if cur == t {
			n++
		}
	})
	return n
}

// CountFunc returns the number of cells whose tile satisfies fn.
func (g *Grid) CountFunc(fn func(Tile) bool) int {
	n := 0
	g.ForEach(func(x, y int, cur Tile) {
		if fn(cur) {
			n++
		}
	})
	return n
}

// Find returns the positions of every cell holding tile t, in row order.
func (g *Grid) Find(t Tile) []geom.Point {
	var points []geom.Point
	g.ForEach(func(x, y int, cur Tile) {
		if cur == t {
			points = append(points, geom.Pt(x, y))
		}
	})
	return points
}

// FindFirst returns the position of the first cell holding tile t in row
// order, or false if no cell does.
func (g *Grid) FindFirst(t Tile) (geom.Point, bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x] == t {
				return geom.Pt(x, y), true
			}
		}
	}
	return geom.Point{}, false
}

// Replace rewrites every cell holding old with new and returns the count.
func (g *Grid) Replace(old, new Tile) int {
	n := 0
	g.ForEach(func(x, y int, cur Tile) {
		if cur == old {
			g.cells[y][x] = new
			n++
		}
	})
	return n
}

// Blit copies src into the grid with its top-left corner at (offX, offY).
// Cells falling outside the grid are dropped.
func (g *Grid) Blit(src *Grid, offX, offY int) {
	src.ForEach(func(x, y int, t Tile) {
		g.Set(offX+x, offY+y, t)
	})
}

// Snapshot returns a deep copy of the grid. Wall finalization reads the
// snapshot while writing the result, so rules never observe their own output.
func (g *Grid) Snapshot() *Grid {
	dup := NewGrid(g.width, g.height, g.fill)
	for y := 0; y < g.height; y++ {
		copy(dup.cells[y], g.cells[y])
	}
	return dup
}

// Expand grows the grid to the new dimensions, keeping existing content
// anchored at the origin and filling new cells with the fill tile.
// Returns false if either dimension would shrink.
func (g *Grid) Expand(newWidth, newHeight int) bool {
	if newWidth < g.width || newHeight < g.height {
		return false
	}
	if newWidth == g.width && newHeight == g.height {
		return true
	}

	cells := make([][]Tile, newHeight)
	for y := 0; y < newHeight; y++ {
		cells[y] = make([]Tile, newWidth)
		for x := 0; x < newWidth; x++ {
			if y < g.height && x < g.width {
				cells[y][x] = g.cells[y][x]
			} else {
				cells[y][x] = g.fill
			}
		}
	}

	g.cells = cells
	g.width = newWidth
	g.height = newHeight
	return true
}

// CardinalNeighbors returns the in-bounds positions 4-adjacent to p.
func (g *Grid) CardinalNeighbors(p geom.Point) []geom.Point {
	return g.neighbors(p, CardinalDirections())
}

// AllNeighbors returns the in-bounds positions 8-adjacent to p.
func (g *Grid) AllNeighbors(p geom.Point) []geom.Point {
	return g.neighbors(p, AllDirections())
}

func (g *Grid) neighbors(p geom.Point, dirs []Direction) []geom.Point {
	points := make([]geom.Point, 0, len(dirs))
	for _, dir := range dirs {
		dx, dy := dir.Delta()
		q := geom.Pt(p.X+dx, p.Y+dy)
		if g.IsValidPosition(q.X, q.Y) {
			points = append(points, q)
		}
	}
	return points
}
