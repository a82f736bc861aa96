package level

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Loader reads and writes level documents in a directory. A level with
// id N lives in level_N.json.
type Loader struct {
	Dir string
}

// NewLoader creates a Loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Dir: dir}
}

func (l *Loader) levelPath(id int) string {
	return filepath.Join(l.Dir, fmt.Sprintf("level_%d.json", id))
}

// LoadLevel reads and validates the document for the given level id.
// Missing, malformed or invalid files log a warning and return
// (nil, false) so callers can fall back to defaults.
func (l *Loader) LoadLevel(id int) (*Config, bool) {
	cfg, ok := l.LoadFile(l.levelPath(id))
	if !ok {
		return nil, false
	}
	return cfg, true
}

// LoadFile reads and validates a level document at an explicit path.
func (l *Loader) LoadFile(path string) (*Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("level config %s not readable: %v", path, err)
		return nil, false
	}

	// Start from defaults so absent fields keep their baseline values.
	cfg := Default(0)
	if err := json.Unmarshal(data, cfg); err != nil {
		log.Printf("level config %s not parseable: %v", path, err)
		return nil, false
	}

	if err := cfg.Validate(); err != nil {
		log.Printf("level config %s invalid: %v", path, err)
		return nil, false
	}
	return cfg, true
}

// SaveLevel validates and writes the document to level_<id>.json,
// creating the directory when needed.
func (l *Loader) SaveLevel(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(l.levelPath(cfg.LevelID), data, 0o644)
}

// AvailableLevels returns the sorted level ids present in the directory.
func (l *Loader) AvailableLevels() []int {
	entries, err := os.ReadDir(l.Dir)
	if err != nil {
		return nil
	}

	var ids []int
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "level_") || !strings.HasSuffix(name, ".json") {
			continue
		}
		id, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "level_"), ".json"))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
