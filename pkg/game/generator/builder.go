package generator

import (
	"fmt"
	"log"
	"math/rand"

	"deepwarren/pkg/engine/geom"
	"deepwarren/pkg/engine/world"
	"deepwarren/pkg/game/dungeon"
	"deepwarren/pkg/game/level"
)

// Builder sequences the generation pipeline for one level: partition,
// place, type, connect, carve, wall, door.
type Builder struct {
	cfg *level.DungeonConfig
	rnd *rand.Rand
}

// NewBuilder creates a Builder for a validated config, drawing all
// randomness from rnd.
func NewBuilder(cfg *level.DungeonConfig, rnd *rand.Rand) *Builder {
	return &Builder{cfg: cfg, rnd: rnd}
}

// Build runs the full pipeline and returns the rooms and the finished
// grid. Fails when the configured space cannot fit a single room.
func (b *Builder) Build() ([]*dungeon.Room, *world.Grid, error) {
	cfg := b.cfg

	log.Printf("partitioning %dx%d space, depth %d, min leaf %d",
		cfg.GridWidth, cfg.GridHeight, cfg.MaxSplitDepth, cfg.MinSplitSize())
	root := NewPartitioner(cfg.MinSplitSize(), cfg.MaxSplitDepth, b.rnd).
		Partition(geom.NewRect(0, 0, cfg.GridWidth, cfg.GridHeight))
	leaves := root.Leaves()

	placer := &RoomPlacer{
		MinRoomSize:   cfg.MinRoomSize,
		MaxRoomWidth:  cfg.MaxRoomWidth,
		MaxRoomHeight: cfg.MaxRoomHeight,
		RoomGap:       cfg.RoomGap,
	}
	rooms := placer.Place(leaves)
	log.Printf("placed %d rooms in %d leaves", len(rooms), len(leaves))
	if len(rooms) == 0 {
		return nil, nil, fmt.Errorf("no rooms fit a %dx%d grid with min room size %d and gap %d",
			cfg.GridWidth, cfg.GridHeight, cfg.MinRoomSize, cfg.RoomGap)
	}

	NewRoomTypeAssigner(cfg.MonsterRoomRatio, cfg.TrapRoomRatio, cfg.RewardRoomRatio, b.rnd).
		Assign(rooms)
	log.Printf("assigned room types: %v", typeSummary(rooms))

	edges := NewGraphBuilder(cfg.ExtraBridgeRatio, b.rnd).Connect(rooms)
	log.Printf("connected rooms with %d edges", len(edges))

	grid := world.NewGrid(cfg.GridWidth, cfg.GridHeight, dungeon.TileOutside)
	for _, room := range rooms {
		room.Populate(b.rnd)
		grid.Blit(room.Tiles, room.Rect.X, room.Rect.Y)
	}

	carver := NewCorridorCarver()
	carver.Carve(grid, rooms, edges)
	grown := carver.Dilate(grid)
	log.Printf("carved %d corridor tiles, %d from dilation", grid.Count(dungeon.TileCorridor), grown)

	raised := AddInitialWalls(grid)
	grid = AdjustWalls(grid)
	doors := PlaceDoors(grid)
	log.Printf("raised %d walls, placed %d doors", raised, doors)

	return rooms, grid, nil
}

// BuildSingleRoom builds a standalone room of the given type centered
// on a fresh grid with walls finalized. Lobby, boss and final rooms are
// built this way: no partitioning, no corridors.
func (b *Builder) BuildSingleRoom(roomType dungeon.RoomType, roomW, roomH int) (*dungeon.Room, *world.Grid) {
	const margin = 4

	gridW := roomW + 2*margin
	gridH := roomH + 2*margin
	room := dungeon.NewRoom(0, geom.NewRect(margin, margin, roomW, roomH))
	room.Type = roomType
	room.Populate(b.rnd)

	grid := world.NewGrid(gridW, gridH, dungeon.TileOutside)
	grid.Blit(room.Tiles, room.Rect.X, room.Rect.Y)
	return room, FinalizeWalls(grid)
}

// BuildLobby builds the lobby room at its configured dimensions.
func (b *Builder) BuildLobby() (*dungeon.Room, *world.Grid) {
	return b.BuildSingleRoom(dungeon.RoomLobby, b.cfg.LobbyWidth, b.cfg.LobbyHeight)
}

// Statistics summarises a finished build.
type Statistics struct {
	NumRooms      int
	RoomTypes     map[dungeon.RoomType]int
	CorridorTiles int
	DoorCount     int
	GridWidth     int
	GridHeight    int
}

// Stats computes summary statistics for a build result.
func Stats(rooms []*dungeon.Room, grid *world.Grid) Statistics {
	return Statistics{
		NumRooms:      len(rooms),
		RoomTypes:     TypeCounts(rooms),
		CorridorTiles: grid.Count(dungeon.TileCorridor),
		DoorCount:     CountDoors(grid),
		GridWidth:     grid.Width(),
		GridHeight:    grid.Height(),
	}
}

func typeSummary(rooms []*dungeon.Room) map[string]int {
	out := make(map[string]int)
	for roomType, n := range TypeCounts(rooms) {
		out[roomType.String()] = n
	}
	return out
}
