package dungeon

import (
	"math/rand"

	"deepwarren/pkg/engine/geom"
	"deepwarren/pkg/engine/rng"
	"deepwarren/pkg/engine/world"
)

// RoomType classifies what a room contains.
type RoomType int

// Room types. Empty rooms get the ratio pass; the rest are assigned
// explicitly or built standalone.
const (
	RoomEmpty RoomType = iota
	RoomStart
	RoomEnd
	RoomMonster
	RoomTrap
	RoomReward
	RoomNPC
	RoomLobby
	RoomBoss
	RoomFinal
)

// String returns the lower-case name of the room type.
func (t RoomType) String() string {
	switch t {
	case RoomEmpty:
		return "empty"
	case RoomStart:
		return "start"
	case RoomEnd:
		return "end"
	case RoomMonster:
		return "monster"
	case RoomTrap:
		return "trap"
	case RoomReward:
		return "reward"
	case RoomNPC:
		return "npc"
	case RoomLobby:
		return "lobby"
	case RoomBoss:
		return "boss"
	case RoomFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Room is a placed rectangle with a type and a local tile sub-grid.
// Tiles is nil until Populate runs.
type Room struct {
	ID    int
	Rect  geom.Rect
	Type  RoomType
	Tiles *world.Grid
}

// NewRoom creates an untyped room covering rect.
func NewRoom(id int, rect geom.Rect) *Room {
	return &Room{ID: id, Rect: rect, Type: RoomEmpty}
}

// Center returns the room's center cell in grid coordinates.
func (r *Room) Center() geom.Point {
	return r.Rect.Center()
}

// InteriorPoint returns a uniform random cell at least two cells away
// from every room edge. Falls back to the center for tiny rooms.
func (r *Room) InteriorPoint(rnd *rand.Rand) geom.Point {
	inner := r.Rect.Inset(2)
	if inner.W <= 0 || inner.H <= 0 {
		return r.Center()
	}
	return geom.Pt(
		rng.IntBetween(rnd, inner.X, inner.X+inner.W-1),
		rng.IntBetween(rnd, inner.Y, inner.Y+inner.H-1),
	)
}

// Midpoints returns the four quarter points of the room, optionally
// jittered by up to jitter cells on each axis. Useful as alternative
// connection targets when centers cluster.
func (r *Room) Midpoints(rnd *rand.Rand, jitter int) []geom.Point {
	c := r.Center()
	points := []geom.Point{
		geom.Pt(r.Rect.X+r.Rect.W/4, c.Y),
		geom.Pt(r.Rect.X+3*r.Rect.W/4, c.Y),
		geom.Pt(c.X, r.Rect.Y+r.Rect.H/4),
		geom.Pt(c.X, r.Rect.Y+3*r.Rect.H/4),
	}
	if jitter > 0 && rnd != nil {
		for i := range points {
			points[i].X += rng.IntBetween(rnd, -jitter, jitter)
			points[i].Y += rng.IntBetween(rnd, -jitter, jitter)
		}
	}
	return points
}

// AnchorToward returns the corridor attachment point on the side of the
// room facing target: the side on the axis of the larger center delta,
// inset two cells from the room edge.
func (r *Room) AnchorToward(target geom.Point) geom.Point {
	c := r.Center()
	dx := target.X - c.X
	dy := target.Y - c.Y

	if absInt(dx) > absInt(dy) {
		if dx > 0 {
			return geom.Pt(r.Rect.X+r.Rect.W-2, c.Y)
		}
		return geom.Pt(r.Rect.X+2, c.Y)
	}
	if dy > 0 {
		return geom.Pt(c.X, r.Rect.Y+r.Rect.H-2)
	}
	return geom.Pt(c.X, r.Rect.Y+2)
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FloorTile returns the floor laid by this room's type.
func (t RoomType) FloorTile() world.Tile {
	switch t {
	case RoomStart:
		return TileStartFloor
	case RoomEnd:
		return TileEndFloor
	case RoomMonster:
		return TileMonsterFloor
	case RoomTrap:
		return TileTrapFloor
	case RoomReward:
		return TileRewardFloor
	case RoomNPC:
		return TileNPCFloor
	case RoomLobby:
		return TileLobbyFloor
	case RoomBoss:
		return TileBossFloor
	case RoomFinal:
		return TileFinalFloor
	default:
		return TileFloor
	}
}

// Monster and trap density. One monster per ~72 interior cells, one trap
// per ~16, both clamped.
const (
	monsterAreaPerSpawn = 72
	maxMonsterSpawns    = 15
	trapAreaPerSpawn    = 16
	maxTrapSpawns       = 50
)

// Populate builds the room's local sub-grid according to its type.
func (r *Room) Populate(rnd *rand.Rand) {
	w, h := r.Rect.W, r.Rect.H
	tiles := world.NewGrid(w, h, r.Type.FloorTile())
	r.Tiles = tiles

	cx, cy := w/2, h/2
	interiorArea := (w - 2) * (h - 2)

	switch r.Type {
	case RoomEnd:
		// Interior gets the end floor, the outermost ring stays plain.
		tiles.Replace(TileEndFloor, TileFloor)
		for y := 1; y < h-1; y++ {
			for x := 1; x < w-1; x++ {
				tiles.Set(x, y, TileEndFloor)
			}
		}
		tiles.Set(cx, cy, TileEndPortal)

	case RoomStart:
		tiles.Set(cx, cy, TilePlayerSpawn)

	case RoomLobby:
		tiles.Set(4, 3, TileMagicCrystalNPCSpawn)
		tiles.Set(w-4, 3, TilePortalNPCSpawn)
		tiles.Set(4, h-3, TileAlchemyPotNPCSpawn)
		tiles.Set(w-4, h-3, TileDummySpawn)
		tiles.Set(cx, cy+3, TilePlayerSpawn)
		tiles.Set(cx, cy-3, TileNPCSpawn)

	case RoomMonster:
		count := clamp(interiorArea/monsterAreaPerSpawn, 1, maxMonsterSpawns)
		cells := r.interiorCells(rnd, geom.Point{X: -1, Y: -1})
		for i := 0; i < count && i < len(cells); i++ {
			tiles.SetPoint(cells[i], TileMonsterSpawn)
		}

	case RoomTrap:
		tiles.Set(cx, cy, TileNPCSpawn)
		count := clamp(interiorArea/trapAreaPerSpawn, 1, maxTrapSpawns)
		cells := r.interiorCells(rnd, geom.Pt(cx, cy))
		for i := 0; i < count && i < len(cells); i++ {
			tiles.SetPoint(cells[i], TileTrapSpawn)
		}

	case RoomReward:
		tiles.Set(cx, cy, TileRewardSpawn)

	case RoomNPC:
		tiles.Set(cx, cy, TileNPCSpawn)

	case RoomBoss:
		tiles.Set(cx, cy, TileBossSpawn)
		tiles.Set(cx, cy+3, TilePlayerSpawn)

	case RoomFinal:
		tiles.Set(cx, cy, TileFinalNPCSpawn)
		tiles.Set(cx, cy+3, TilePlayerSpawn)
		for _, off := range []geom.Point{{X: -2, Y: -2}, {X: 2, Y: -2}, {X: -2, Y: 2}, {X: 2, Y: 2}} {
			x, y := cx+off.X, cy+off.Y
			if x >= 1 && x < w-1 && y >= 1 && y < h-1 {
				tiles.Set(x, y, TileRewardSpawn)
			}
		}
	}
}

// interiorCells returns the shuffled interior positions of the room's
// sub-grid, excluding skip.
func (r *Room) interiorCells(rnd *rand.Rand, skip geom.Point) []geom.Point {
	var cells []geom.Point
	for y := 1; y < r.Rect.H-1; y++ {
		for x := 1; x < r.Rect.W-1; x++ {
			p := geom.Pt(x, y)
			if p == skip {
				continue
			}
			cells = append(cells, p)
		}
	}
	rnd.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	return cells
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
