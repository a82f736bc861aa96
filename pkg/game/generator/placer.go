package generator

import (
	"deepwarren/pkg/engine/geom"
	"deepwarren/pkg/game/dungeon"
)

// RoomPlacer carves one room out of each leaf region that can hold one.
type RoomPlacer struct {
	MinRoomSize   int
	MaxRoomWidth  int
	MaxRoomHeight int
	RoomGap       int

	nextID int
}

// Place returns the rooms fitted into the given leaves. Leaves whose
// gap-adjusted space falls below the minimum room size are skipped.
// Room ids are assigned in order of placement.
func (p *RoomPlacer) Place(leaves []*Region) []*dungeon.Room {
	var rooms []*dungeon.Room
	for _, leaf := range leaves {
		if room, ok := p.placeIn(leaf); ok {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

func (p *RoomPlacer) placeIn(leaf *Region) (*dungeon.Room, bool) {
	availW := leaf.Rect.W - 2*p.RoomGap
	availH := leaf.Rect.H - 2*p.RoomGap
	if availW < p.MinRoomSize || availH < p.MinRoomSize {
		return nil, false
	}

	w := clampSize(availW, p.MinRoomSize, p.MaxRoomWidth)
	h := clampSize(availH, p.MinRoomSize, p.MaxRoomHeight)

	rect := geom.NewRect(leaf.Rect.X+p.RoomGap, leaf.Rect.Y+p.RoomGap, w, h)
	room := dungeon.NewRoom(p.nextID, rect)
	p.nextID++
	return room, true
}

func clampSize(avail, min, max int) int {
	size := avail
	if max > 0 && size > max {
		size = max
	}
	if size < min {
		size = min
	}
	return size
}
