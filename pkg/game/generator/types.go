package generator

import (
	"math/rand"

	"deepwarren/pkg/game/dungeon"
)

// RoomTypeAssigner distributes room types: the special rooms first, then
// the remaining rooms by configured ratios.
type RoomTypeAssigner struct {
	MonsterRatio float64
	TrapRatio    float64
	RewardRatio  float64

	rnd *rand.Rand
}

// NewRoomTypeAssigner creates an assigner drawing randomness from rnd.
func NewRoomTypeAssigner(monster, trap, reward float64, rnd *rand.Rand) *RoomTypeAssigner {
	return &RoomTypeAssigner{
		MonsterRatio: monster,
		TrapRatio:    trap,
		RewardRatio:  reward,
		rnd:          rnd,
	}
}

// Assign types every room in place. With at least two rooms a uniform
// random room becomes the start and the room farthest from it becomes
// the end; with at least three left over, one becomes an NPC room. The
// rest are split monster/trap/reward by ratio.
func (a *RoomTypeAssigner) Assign(rooms []*dungeon.Room) {
	if len(rooms) < 2 {
		return
	}

	start := rooms[a.rnd.Intn(len(rooms))]
	start.Type = dungeon.RoomStart

	end := a.farthestFrom(start, rooms)
	end.Type = dungeon.RoomEnd

	remaining := untyped(rooms)
	if len(remaining) >= 3 {
		remaining[a.rnd.Intn(len(remaining))].Type = dungeon.RoomNPC
		remaining = untyped(rooms)
	}

	a.assignByRatio(remaining)
}

// farthestFrom returns the room with the greatest Euclidean center
// distance from origin. Ties keep the earliest room.
func (a *RoomTypeAssigner) farthestFrom(origin *dungeon.Room, rooms []*dungeon.Room) *dungeon.Room {
	var best *dungeon.Room
	bestDist := -1.0
	for _, room := range rooms {
		if room == origin {
			continue
		}
		d := origin.Center().Euclidean(room.Center())
		if d > bestDist {
			best = room
			bestDist = d
		}
	}
	return best
}

func untyped(rooms []*dungeon.Room) []*dungeon.Room {
	var out []*dungeon.Room
	for _, room := range rooms {
		if room.Type == dungeon.RoomEmpty {
			out = append(out, room)
		}
	}
	return out
}

// assignByRatio shuffles the rooms, gives the first floor(N*monster) the
// monster type and the next floor(N*trap) the trap type. Whatever is
// left becomes a reward room, absorbing the rounding remainder.
func (a *RoomTypeAssigner) assignByRatio(rooms []*dungeon.Room) {
	n := len(rooms)
	if n == 0 {
		return
	}

	shuffled := make([]*dungeon.Room, n)
	copy(shuffled, rooms)
	a.rnd.Shuffle(n, func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	monsters := int(float64(n) * a.MonsterRatio)
	traps := int(float64(n) * a.TrapRatio)

	for i, room := range shuffled {
		switch {
		case i < monsters:
			room.Type = dungeon.RoomMonster
		case i < monsters+traps:
			room.Type = dungeon.RoomTrap
		default:
			room.Type = dungeon.RoomReward
		}
	}
}

// TypeCounts returns a histogram of room types.
func TypeCounts(rooms []*dungeon.Room) map[dungeon.RoomType]int {
	counts := make(map[dungeon.RoomType]int)
	for _, room := range rooms {
		counts[room.Type]++
	}
	return counts
}
