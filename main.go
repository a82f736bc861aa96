package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"deepwarren/pkg/engine/terminal"
	"deepwarren/pkg/game/generator"
	"deepwarren/pkg/game/level"
	"deepwarren/pkg/game/renderer"
)

func initGotext() {
	gotext.Configure("locales", "en_GB", "default")
}

// loadConfig loads the level document, falling back to defaults when no
// usable file exists.
func loadConfig(dir string, id int) *level.Config {
	loader := level.NewLoader(dir)
	if cfg, ok := loader.LoadLevel(id); ok {
		return cfg
	}
	log.Printf("using default config for level %d", id)
	return level.Default(id)
}

func printStats(stats generator.Statistics) {
	fmt.Printf("\n%s %d  ", gotext.Get("Rooms:"), stats.NumRooms)
	for roomType, n := range stats.RoomTypes {
		fmt.Printf("%s=%d ", roomType, n)
	}
	fmt.Printf("\n%s %d  %s %d  %s %dx%d\n",
		gotext.Get("Corridor tiles:"), stats.CorridorTiles,
		gotext.Get("Doors:"), stats.DoorCount,
		gotext.Get("Grid:"), stats.GridWidth, stats.GridHeight)
}

func main() {
	levelID := flag.Int("level", 1, "level number to generate")
	seed := flag.Int64("seed", 0, "generation seed (0 picks one from the clock)")
	levelsDir := flag.String("levels", "levels", "directory holding level_<id>.json documents")
	lobby := flag.Bool("lobby", false, "generate the lobby instead of a dungeon")
	stats := flag.Bool("stats", false, "print generation statistics under the map")
	dump := flag.String("dump", "", "write an uncolored map dump to this file")
	flag.Parse()

	initGotext()
	renderer.InitColors()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(*seed))

	cfg := loadConfig(*levelsDir, *levelID)
	builder := generator.NewBuilder(&cfg.Dungeon, rnd)

	if *lobby {
		_, lobbyGrid := builder.BuildLobby()
		renderer.PrintGrid(lobbyGrid)
		return
	}

	builtRooms, builtGrid, err := builder.Build()
	if err != nil {
		log.Fatalf("%s: %v", gotext.Get("generation failed"), err)
	}

	fmt.Printf("%s %q (%s %d, %s %d)\n",
		gotext.Get("Generated"), cfg.LevelName,
		gotext.Get("level"), cfg.LevelID,
		gotext.Get("seed"), *seed)

	renderer.PrintGrid(builtGrid)
	if terminal.Interactive() {
		renderer.PrintLegend()
	}

	if *stats {
		printStats(generator.Stats(builtRooms, builtGrid))
	}

	if *dump != "" {
		if err := os.WriteFile(*dump, []byte(renderer.RenderString(builtGrid)), 0o644); err != nil {
			log.Fatalf("map dump: %v", err)
		}
		fmt.Printf("%s %s\n", gotext.Get("Map dumped to"), *dump)
	}
}
