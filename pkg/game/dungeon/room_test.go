package dungeon

import (
	"math/rand"
	"testing"

	"deepwarren/pkg/engine/geom"
)

func TestPassableCoversMarkers(t *testing.T) {
	set := Passable()

	if !set.Has(TileTrapSpawn) || !set.Has(TileRewardSpawn) {
		t.Error("spawn markers must be passable")
	}
	if !set.Has(TileCorridor) || !set.Has(TileDoor) {
		t.Error("corridor and door must be passable")
	}
	if set.Has(TileOutside) || set.Has(TileWall) {
		t.Error("outside and walls must not be passable")
	}
}

func TestIsWall(t *testing.T) {
	if !IsWall(TileWallConcaveTopRight) || !IsWall(TileWall) {
		t.Error("wall variants should be recognised")
	}
	if IsWall(TileFloor) || IsWall(TileDoor) {
		t.Error("non-walls misclassified")
	}
}

func TestAnchorToward(t *testing.T) {
	r := NewRoom(0, geom.NewRect(10, 10, 8, 6))
	c := r.Center()

	right := r.AnchorToward(geom.Pt(40, c.Y))
	if right != geom.Pt(16, c.Y) {
		t.Errorf("right anchor = %v, want (16,%d)", right, c.Y)
	}
	left := r.AnchorToward(geom.Pt(0, c.Y))
	if left != geom.Pt(12, c.Y) {
		t.Errorf("left anchor = %v, want (12,%d)", left, c.Y)
	}
	down := r.AnchorToward(geom.Pt(c.X, 40))
	if down != geom.Pt(c.X, 14) {
		t.Errorf("down anchor = %v, want (%d,14)", down, c.X)
	}
	up := r.AnchorToward(geom.Pt(c.X, 0))
	if up != geom.Pt(c.X, 12) {
		t.Errorf("up anchor = %v, want (%d,12)", up, c.X)
	}
}

func TestInteriorPointStaysInset(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	r := NewRoom(0, geom.NewRect(5, 5, 9, 7))
	inner := r.Rect.Inset(2)

	for i := 0; i < 200; i++ {
		p := r.InteriorPoint(rnd)
		if !inner.Contains(p) {
			t.Fatalf("interior point %v escaped inset rect %v", p, inner)
		}
	}
}

func TestPopulateStartRoom(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	r := NewRoom(0, geom.NewRect(0, 0, 7, 7))
	r.Type = RoomStart
	r.Populate(rnd)

	if r.Tiles.Get(3, 3) != TilePlayerSpawn {
		t.Error("start room must hold the player spawn at its center")
	}
	if r.Tiles.Count(TileStartFloor) != 48 {
		t.Errorf("remaining cells should be start floor, got %d", r.Tiles.Count(TileStartFloor))
	}
}

func TestPopulateEndRoomKeepsPlainBorder(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	r := NewRoom(1, geom.NewRect(0, 0, 7, 5))
	r.Type = RoomEnd
	r.Populate(rnd)

	if r.Tiles.Get(3, 2) != TileEndPortal {
		t.Error("end room must hold the portal at its center")
	}
	if r.Tiles.Get(0, 0) != TileFloor || r.Tiles.Get(6, 4) != TileFloor {
		t.Error("end room border must stay plain floor")
	}
	if r.Tiles.Get(1, 1) != TileEndFloor {
		t.Error("end room interior must be end floor")
	}
}

func TestPopulateMonsterRoomDensity(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))

	// 14x14 interior area 144 -> 2 monsters.
	r := NewRoom(2, geom.NewRect(0, 0, 14, 14))
	r.Type = RoomMonster
	r.Populate(rnd)
	if n := r.Tiles.Count(TileMonsterSpawn); n != 2 {
		t.Errorf("monster room spawned %d monsters, want 2", n)
	}

	// Tiny room still gets one.
	small := NewRoom(3, geom.NewRect(0, 0, 5, 5))
	small.Type = RoomMonster
	small.Populate(rnd)
	if n := small.Tiles.Count(TileMonsterSpawn); n != 1 {
		t.Errorf("small monster room spawned %d monsters, want 1", n)
	}
}

func TestPopulateTrapRoom(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	r := NewRoom(4, geom.NewRect(0, 0, 10, 10))
	r.Type = RoomTrap
	r.Populate(rnd)

	if r.Tiles.Get(5, 5) != TileNPCSpawn {
		t.Error("trap room must keep the NPC at its center")
	}
	// Interior area 64 -> 4 traps.
	if n := r.Tiles.Count(TileTrapSpawn); n != 4 {
		t.Errorf("trap room spawned %d traps, want 4", n)
	}
}

func TestPopulateFinalRoom(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	r := NewRoom(5, geom.NewRect(0, 0, 11, 11))
	r.Type = RoomFinal
	r.Populate(rnd)

	if r.Tiles.Get(5, 5) != TileFinalNPCSpawn {
		t.Error("final room must hold the final NPC at its center")
	}
	if r.Tiles.Get(5, 8) != TilePlayerSpawn {
		t.Error("final room must place the player below the NPC")
	}
	if n := r.Tiles.Count(TileRewardSpawn); n != 4 {
		t.Errorf("final room placed %d chests, want 4", n)
	}
}

func TestPopulateLobbyRoom(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	r := NewRoom(6, geom.NewRect(0, 0, 20, 15))
	r.Type = RoomLobby
	r.Populate(rnd)

	for _, tile := range []struct {
		x, y int
		want string
	}{
		{4, 3, string(TileMagicCrystalNPCSpawn)},
		{16, 3, string(TilePortalNPCSpawn)},
		{4, 12, string(TileAlchemyPotNPCSpawn)},
		{16, 12, string(TileDummySpawn)},
	} {
		if got := string(r.Tiles.Get(tile.x, tile.y)); got != tile.want {
			t.Errorf("lobby tile at (%d,%d) = %q, want %q", tile.x, tile.y, got, tile.want)
		}
	}
	if r.Tiles.Get(10, 10) != TilePlayerSpawn {
		t.Error("lobby must place the player below center")
	}
	if r.Tiles.Get(10, 4) != TileNPCSpawn {
		t.Error("lobby must place an NPC above center")
	}
}
