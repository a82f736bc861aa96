package generator

import (
	"math/rand"
	"testing"

	"deepwarren/pkg/engine/geom"
)

func TestPlaceInsetsByGap(t *testing.T) {
	placer := &RoomPlacer{MinRoomSize: 5, MaxRoomWidth: 20, MaxRoomHeight: 20, RoomGap: 2}
	leaves := []*Region{{Rect: geom.NewRect(10, 10, 14, 12)}}

	rooms := placer.Place(leaves)
	if len(rooms) != 1 {
		t.Fatalf("placed %d rooms, want 1", len(rooms))
	}
	want := geom.NewRect(12, 12, 10, 8)
	if rooms[0].Rect != want {
		t.Errorf("room rect = %v, want %v", rooms[0].Rect, want)
	}
}

func TestPlaceSkipsTightLeaves(t *testing.T) {
	placer := &RoomPlacer{MinRoomSize: 5, MaxRoomWidth: 20, MaxRoomHeight: 20, RoomGap: 2}
	leaves := []*Region{
		{Rect: geom.NewRect(0, 0, 8, 20)},  // 8 - 4 = 4 < 5, skip
		{Rect: geom.NewRect(0, 0, 20, 20)}, // fits
	}

	rooms := placer.Place(leaves)
	if len(rooms) != 1 {
		t.Fatalf("placed %d rooms, want 1", len(rooms))
	}
	if rooms[0].ID != 0 {
		t.Errorf("room id = %d, want 0 (ids count placed rooms only)", rooms[0].ID)
	}
}

func TestPlaceCapsAtMaxSize(t *testing.T) {
	placer := &RoomPlacer{MinRoomSize: 5, MaxRoomWidth: 9, MaxRoomHeight: 7, RoomGap: 1}
	leaves := []*Region{{Rect: geom.NewRect(0, 0, 40, 40)}}

	rooms := placer.Place(leaves)
	if len(rooms) != 1 {
		t.Fatal("expected one room")
	}
	if rooms[0].Rect.W != 9 || rooms[0].Rect.H != 7 {
		t.Errorf("room size = %dx%d, want 9x7", rooms[0].Rect.W, rooms[0].Rect.H)
	}
}

func TestPlaceIDsAreMonotonic(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	p := NewPartitioner(13, 6, rnd)
	root := p.Partition(geom.NewRect(0, 0, 120, 100))

	placer := &RoomPlacer{MinRoomSize: 9, MaxRoomWidth: 20, MaxRoomHeight: 20, RoomGap: 2}
	rooms := placer.Place(root.Leaves())
	if len(rooms) == 0 {
		t.Fatal("no rooms placed")
	}
	for i, room := range rooms {
		if room.ID != i {
			t.Fatalf("room %d has id %d, ids must be dense and ordered", i, room.ID)
		}
		if !geom.NewRect(0, 0, 120, 100).Contains(room.Center()) {
			t.Fatalf("room %d center %v out of bounds", i, room.Center())
		}
	}
}
