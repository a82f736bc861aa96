package level

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	cfg := Default(3)
	cfg.LevelName = "Sunken Vault"
	cfg.Dungeon.GridWidth = 90
	cfg.Dungeon.ExtraBridgeRatio = 0.25
	cfg.Monsters.Monsters = []MonsterConfig{
		{Type: "skeleton", MinCount: 2, MaxCount: 6, HealthMultiplier: 1.5, DamageMultiplier: 1.2, SpawnWeight: 3},
		{Type: "zombie", MinCount: 1, MaxCount: 4, HealthMultiplier: 2, DamageMultiplier: 0.8, SpawnWeight: 1},
	}
	cfg.Monsters.TotalMonsterMultiplier = 1.5

	if err := loader.SaveLevel(cfg); err != nil {
		t.Fatalf("SaveLevel: %v", err)
	}

	loaded, ok := loader.LoadLevel(3)
	if !ok {
		t.Fatal("LoadLevel(3) failed after save")
	}
	if loaded.LevelName != "Sunken Vault" {
		t.Errorf("level name = %q", loaded.LevelName)
	}
	if loaded.Dungeon.GridWidth != 90 || loaded.Dungeon.ExtraBridgeRatio != 0.25 {
		t.Error("dungeon config did not round-trip")
	}
	if len(loaded.Monsters.Monsters) != 2 || loaded.Monsters.Monsters[1].Type != "zombie" {
		t.Error("monster pool did not round-trip")
	}
	if loaded.Monsters.TotalMonsterMultiplier != 1.5 {
		t.Error("total multiplier did not round-trip")
	}
}

func TestLoadMissingLevel(t *testing.T) {
	loader := NewLoader(t.TempDir())

	if cfg, ok := loader.LoadLevel(42); ok || cfg != nil {
		t.Error("missing level must report (nil, false)")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "level_1.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	if _, ok := loader.LoadLevel(1); ok {
		t.Error("malformed file must report false")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	doc := `{"level_id": 1, "dungeon_config": {"grid_width": -5}}`
	if err := os.WriteFile(filepath.Join(dir, "level_1.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	if _, ok := loader.LoadLevel(1); ok {
		t.Error("invalid config must report false")
	}
}

func TestLoadAppliesDefaultsForAbsentFields(t *testing.T) {
	dir := t.TempDir()
	doc := `{"level_id": 7, "level_name": "Deep Halls"}`
	if err := os.WriteFile(filepath.Join(dir, "level_7.json"), []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	cfg, ok := loader.LoadLevel(7)
	if !ok {
		t.Fatal("sparse document should load")
	}
	if cfg.Dungeon.GridWidth != 120 || cfg.Dungeon.MinRoomSize != 13 {
		t.Error("absent dungeon fields must keep their defaults")
	}
	if len(cfg.Monsters.Monsters) == 0 {
		t.Error("absent monster pool must keep the default pool")
	}
}

func TestSaveRefusesInvalidConfig(t *testing.T) {
	loader := NewLoader(t.TempDir())
	cfg := Default(1)
	cfg.Dungeon.GridWidth = 0

	if err := loader.SaveLevel(cfg); err == nil {
		t.Error("SaveLevel must refuse an invalid config")
	}
}

func TestAvailableLevels(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(dir)

	for _, id := range []int{5, 1, 9} {
		if err := loader.SaveLevel(Default(id)); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	ids := loader.AvailableLevels()
	if len(ids) != 3 || ids[0] != 1 || ids[1] != 5 || ids[2] != 9 {
		t.Errorf("AvailableLevels = %v, want [1 5 9]", ids)
	}
}
