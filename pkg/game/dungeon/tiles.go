// Package dungeon holds the tile vocabulary and room model shared by the
// generator pipeline and the preview renderer.
package dungeon

import (
	"strings"

	"github.com/zyedidia/generic/mapset"

	"deepwarren/pkg/engine/world"
)

// Scaffold and structure tiles.
const (
	TileOutside  world.Tile = "outside"
	TileCorridor world.Tile = "corridor"
	TileDoor     world.Tile = "door"
)

// Floor tiles. Each room type lays its own floor.
const (
	TileFloor        world.Tile = "floor"
	TileStartFloor   world.Tile = "start_floor"
	TileEndFloor     world.Tile = "end_floor"
	TileMonsterFloor world.Tile = "monster_floor"
	TileTrapFloor    world.Tile = "trap_floor"
	TileRewardFloor  world.Tile = "reward_floor"
	TileNPCFloor     world.Tile = "npc_floor"
	TileLobbyFloor   world.Tile = "lobby_floor"
	TileBossFloor    world.Tile = "boss_floor"
	TileFinalFloor   world.Tile = "final_floor"
)

// Wall tiles. Autotiling picks the variant from the 8-neighbour shape;
// everything carrying the "wall" prefix blocks movement.
const (
	TileWall world.Tile = "wall"

	TileWallTop    world.Tile = "wall_top"
	TileWallBottom world.Tile = "wall_bottom"
	TileWallLeft   world.Tile = "wall_left"
	TileWallRight  world.Tile = "wall_right"

	TileWallConcaveTopLeft     world.Tile = "wall_concave_top_left"
	TileWallConcaveTopRight    world.Tile = "wall_concave_top_right"
	TileWallConcaveBottomLeft  world.Tile = "wall_concave_bottom_left"
	TileWallConcaveBottomRight world.Tile = "wall_concave_bottom_right"

	TileWallConvexTopLeft     world.Tile = "wall_convex_top_left"
	TileWallConvexTopRight    world.Tile = "wall_convex_top_right"
	TileWallConvexBottomLeft  world.Tile = "wall_convex_bottom_left"
	TileWallConvexBottomRight world.Tile = "wall_convex_bottom_right"
)

// Spawn markers. Markers are floor cells carrying placement data for the
// simulation layer, so they stay walkable.
const (
	TilePlayerSpawn   world.Tile = "player_spawn"
	TileMonsterSpawn  world.Tile = "monster_spawn"
	TileTrapSpawn     world.Tile = "trap_spawn"
	TileRewardSpawn   world.Tile = "reward_spawn"
	TileNPCSpawn      world.Tile = "npc_spawn"
	TileBossSpawn     world.Tile = "boss_spawn"
	TileFinalNPCSpawn world.Tile = "final_npc_spawn"
	TileEndPortal     world.Tile = "end_portal"

	TileAlchemyPotNPCSpawn   world.Tile = "alchemy_pot_npc_spawn"
	TileMagicCrystalNPCSpawn world.Tile = "magic_crystal_npc_spawn"
	TilePortalNPCSpawn       world.Tile = "portal_npc_spawn"
	TileDummySpawn           world.Tile = "dummy_spawn"
)

var passableTiles = []world.Tile{
	TileFloor, TileStartFloor, TileEndFloor, TileMonsterFloor, TileTrapFloor,
	TileRewardFloor, TileNPCFloor, TileLobbyFloor, TileBossFloor, TileFinalFloor,
	TileCorridor, TileDoor,
	TilePlayerSpawn, TileMonsterSpawn, TileTrapSpawn, TileRewardSpawn,
	TileNPCSpawn, TileBossSpawn, TileFinalNPCSpawn, TileEndPortal,
	TileAlchemyPotNPCSpawn, TileMagicCrystalNPCSpawn, TilePortalNPCSpawn,
	TileDummySpawn,
}

// Passable returns a fresh set of every tile an actor can stand on.
func Passable() mapset.Set[world.Tile] {
	set := mapset.New[world.Tile]()
	for _, t := range passableTiles {
		set.Put(t)
	}
	return set
}

// IsPassable reports whether an actor can stand on t.
func IsPassable(t world.Tile) bool {
	for _, p := range passableTiles {
		if t == p {
			return true
		}
	}
	return false
}

// IsWall reports whether t belongs to the wall family.
func IsWall(t world.Tile) bool {
	return strings.HasPrefix(string(t), "wall")
}
