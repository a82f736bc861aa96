// Package level defines the per-level configuration document and its
// JSON persistence. One file per level: level_<id>.json.
package level

import (
	"fmt"
	"math/rand"

	"deepwarren/pkg/engine/rng"
)

// MonsterConfig configures one monster type in a level's pool.
type MonsterConfig struct {
	Type             string  `json:"type"`
	MinCount         int     `json:"min_count"`
	MaxCount         int     `json:"max_count"`
	HealthMultiplier float64 `json:"health_multiplier"`
	DamageMultiplier float64 `json:"damage_multiplier"`
	SpawnWeight      float64 `json:"spawn_weight"`
}

// Validate returns nil when the monster entry is usable.
func (m *MonsterConfig) Validate() error {
	if m.MinCount < 0 {
		return fmt.Errorf("monster %s: min_count cannot be negative", m.Type)
	}
	if m.MaxCount < m.MinCount {
		return fmt.Errorf("monster %s: max_count cannot be below min_count", m.Type)
	}
	if m.HealthMultiplier <= 0 {
		return fmt.Errorf("monster %s: health_multiplier must be positive", m.Type)
	}
	if m.DamageMultiplier <= 0 {
		return fmt.Errorf("monster %s: damage_multiplier must be positive", m.Type)
	}
	if m.SpawnWeight < 0 {
		return fmt.Errorf("monster %s: spawn_weight cannot be negative", m.Type)
	}
	return nil
}

// MonsterPool is the set of monsters a level may spawn.
type MonsterPool struct {
	Monsters               []MonsterConfig `json:"monsters"`
	TotalMonsterMultiplier float64         `json:"total_monster_multiplier"`
}

// Validate returns nil when the pool is usable.
func (p *MonsterPool) Validate() error {
	if len(p.Monsters) == 0 {
		return fmt.Errorf("monster pool needs at least one monster type")
	}
	if p.TotalMonsterMultiplier <= 0 {
		return fmt.Errorf("total_monster_multiplier must be positive")
	}

	totalWeight := 0.0
	for i := range p.Monsters {
		if err := p.Monsters[i].Validate(); err != nil {
			return err
		}
		totalWeight += p.Monsters[i].SpawnWeight
	}
	if totalWeight <= 0 {
		return fmt.Errorf("monster spawn weights must sum to a positive value")
	}
	return nil
}

// ByType returns the entry for the named monster type.
func (p *MonsterPool) ByType(name string) (*MonsterConfig, bool) {
	for i := range p.Monsters {
		if p.Monsters[i].Type == name {
			return &p.Monsters[i], true
		}
	}
	return nil, false
}

// PickWeighted draws a monster type with probability proportional to its
// spawn weight. Returns false for an empty or zero-weight pool.
func (p *MonsterPool) PickWeighted(rnd *rand.Rand) (*MonsterConfig, bool) {
	weights := make([]float64, len(p.Monsters))
	for i := range p.Monsters {
		weights[i] = p.Monsters[i].SpawnWeight
	}
	idx := rng.WeightedIndex(rnd, weights)
	if idx < 0 {
		return nil, false
	}
	return &p.Monsters[idx], true
}

// DungeonConfig holds the generation parameters for one level.
type DungeonConfig struct {
	GridWidth     int `json:"grid_width"`
	GridHeight    int `json:"grid_height"`
	MaxSplitDepth int `json:"max_split_depth"`
	MinRoomSize   int `json:"min_room_size"`
	MaxRoomWidth  int `json:"max_room_width"`
	MaxRoomHeight int `json:"max_room_height"`
	RoomGap       int `json:"room_gap"`

	ExtraBridgeRatio float64 `json:"extra_bridge_ratio"`
	MonsterRoomRatio float64 `json:"monster_room_ratio"`
	TrapRoomRatio    float64 `json:"trap_room_ratio"`
	RewardRoomRatio  float64 `json:"reward_room_ratio"`

	MinBridgeWidth int `json:"min_bridge_width"`
	MaxBridgeWidth int `json:"max_bridge_width"`

	BiasRatio    float64 `json:"bias_ratio"`
	BiasStrength float64 `json:"bias_strength"`

	LobbyWidth  int `json:"lobby_width"`
	LobbyHeight int `json:"lobby_height"`
}

// MinSplitSize returns the smallest BSP leaf side that still fits a room
// plus its gap on both sides.
func (d *DungeonConfig) MinSplitSize() int {
	return d.MinRoomSize + 2*d.RoomGap
}

// Config is a full level document.
type Config struct {
	LevelID   int           `json:"level_id"`
	LevelName string        `json:"level_name"`
	Dungeon   DungeonConfig `json:"dungeon_config"`
	Monsters  MonsterPool   `json:"monster_config"`
}

// Default returns the baseline configuration for a level. Loaded files
// override these values field by field.
func Default(levelID int) *Config {
	return &Config{
		LevelID:   levelID,
		LevelName: fmt.Sprintf("Level %d", levelID),
		Dungeon: DungeonConfig{
			GridWidth:        120,
			GridHeight:       100,
			MaxSplitDepth:    6,
			MinRoomSize:      13,
			MaxRoomWidth:     20,
			MaxRoomHeight:    20,
			RoomGap:          2,
			ExtraBridgeRatio: 0.1,
			MonsterRoomRatio: 0.7,
			TrapRoomRatio:    0.15,
			RewardRoomRatio:  0.15,
			MinBridgeWidth:   2,
			MaxBridgeWidth:   4,
			BiasRatio:        0.8,
			BiasStrength:     0.3,
			LobbyWidth:       20,
			LobbyHeight:      15,
		},
		Monsters: MonsterPool{
			Monsters: []MonsterConfig{
				{Type: "slime", MinCount: 1, MaxCount: 3, HealthMultiplier: 1, DamageMultiplier: 1, SpawnWeight: 1},
			},
			TotalMonsterMultiplier: 1,
		},
	}
}

// Validate returns nil when the whole document is usable.
func (c *Config) Validate() error {
	if c.LevelID < 0 {
		return fmt.Errorf("level id cannot be negative")
	}

	d := &c.Dungeon
	if d.GridWidth <= 0 || d.GridHeight <= 0 {
		return fmt.Errorf("grid dimensions must be positive")
	}
	if d.MinRoomSize <= 0 {
		return fmt.Errorf("min_room_size must be positive")
	}
	if d.RoomGap < 0 {
		return fmt.Errorf("room_gap cannot be negative")
	}
	if d.MaxSplitDepth < 0 {
		return fmt.Errorf("max_split_depth cannot be negative")
	}
	if d.MinBridgeWidth <= 0 || d.MaxBridgeWidth <= 0 {
		return fmt.Errorf("bridge widths must be positive")
	}
	if d.MinBridgeWidth > d.MaxBridgeWidth {
		return fmt.Errorf("min_bridge_width cannot exceed max_bridge_width")
	}
	if d.ExtraBridgeRatio < 0 || d.ExtraBridgeRatio > 1 {
		return fmt.Errorf("extra_bridge_ratio must be within [0, 1]")
	}

	for _, ratio := range []float64{d.MonsterRoomRatio, d.TrapRoomRatio, d.RewardRoomRatio} {
		if ratio < 0 || ratio > 1 {
			return fmt.Errorf("room type ratios must be within [0, 1]")
		}
	}
	total := d.MonsterRoomRatio + d.TrapRoomRatio + d.RewardRoomRatio
	if total < 0.99 || total > 1.01 {
		return fmt.Errorf("room type ratios must sum to 1.0, got %.2f", total)
	}

	if err := c.Monsters.Validate(); err != nil {
		return fmt.Errorf("monster pool: %w", err)
	}
	return nil
}
