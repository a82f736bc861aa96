package renderer

import (
	"fmt"
	"strings"

	"github.com/gookit/color"

	"deepwarren/pkg/engine/terminal"
	"deepwarren/pkg/engine/world"
	"deepwarren/pkg/game/dungeon"
)

// Icon constants for the map preview
const (
	IconOutside  = " "
	IconFloor    = "·"
	IconCorridor = "░"
	IconWall     = "▒"
	IconDoor     = "+"
	IconPlayer   = "@"
	IconPortal   = "⌂"
	IconMonster  = "m"
	IconTrap     = "^"
	IconReward   = "$"
	IconNPC      = "n"
	IconBoss     = "B"
)

var (
	ColorFloor    color.Style
	ColorCorridor color.Style
	ColorWall     color.Style
	ColorDoor     color.Style
	ColorPlayer   color.Style
	ColorPortal   color.Style
	ColorDanger   color.Style
	ColorReward   color.Style
	ColorNPC      color.Style
	ColorSubtle   color.Style
)

// InitColors initializes the color styles
func InitColors() {
	ColorFloor = color.Style{color.FgGray}
	ColorCorridor = color.Style{color.FgBlue}
	ColorWall = color.Style{color.FgGray, color.OpBold}
	ColorDoor = color.Style{color.FgYellow}
	ColorPlayer = color.Style{color.FgGreen, color.OpBold}
	ColorPortal = color.Style{color.FgMagenta, color.OpBold}
	ColorDanger = color.Style{color.FgRed}
	ColorReward = color.Style{color.FgYellow, color.OpBold}
	ColorNPC = color.Style{color.FgCyan}
	ColorSubtle = color.Style{color.FgGray}
}

// RenderTile returns the colored string representation of a tile.
func RenderTile(tile world.Tile) string {
	switch tile {
	case dungeon.TileOutside:
		return IconOutside
	case dungeon.TileCorridor:
		return ColorCorridor.Sprint(IconCorridor)
	case dungeon.TileDoor:
		return ColorDoor.Sprint(IconDoor)
	case dungeon.TilePlayerSpawn:
		return ColorPlayer.Sprint(IconPlayer)
	case dungeon.TileEndPortal:
		return ColorPortal.Sprint(IconPortal)
	case dungeon.TileMonsterSpawn:
		return ColorDanger.Sprint(IconMonster)
	case dungeon.TileBossSpawn:
		return ColorDanger.Sprint(IconBoss)
	case dungeon.TileTrapSpawn:
		return ColorDanger.Sprint(IconTrap)
	case dungeon.TileRewardSpawn:
		return ColorReward.Sprint(IconReward)
	case dungeon.TileNPCSpawn, dungeon.TileFinalNPCSpawn,
		dungeon.TileAlchemyPotNPCSpawn, dungeon.TileMagicCrystalNPCSpawn,
		dungeon.TilePortalNPCSpawn, dungeon.TileDummySpawn:
		return ColorNPC.Sprint(IconNPC)
	}

	if dungeon.IsWall(tile) {
		return ColorWall.Sprint(IconWall)
	}
	return ColorFloor.Sprint(IconFloor)
}

// PlainTile returns the uncolored glyph for a tile, for file dumps.
func PlainTile(tile world.Tile) string {
	return color.ClearCode(RenderTile(tile))
}

// RenderString renders the whole grid as uncolored rows.
func RenderString(grid *world.Grid) string {
	var sb strings.Builder
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			sb.WriteString(PlainTile(grid.Get(x, y)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// PrintGrid prints the grid to stdout with colors, clipped to the
// current terminal size so wide maps stay readable.
func PrintGrid(grid *world.Grid) {
	termWidth, termHeight := terminal.GetSize()
	PrintGridClipped(grid, termWidth, termHeight-2)
}

// PrintGridClipped prints at most maxWidth columns and maxHeight rows
// of the grid.
func PrintGridClipped(grid *world.Grid, maxWidth, maxHeight int) {
	width := grid.Width()
	if width > maxWidth {
		width = maxWidth
	}
	height := grid.Height()
	if height > maxHeight {
		height = maxHeight
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			fmt.Print(RenderTile(grid.Get(x, y)))
		}
		fmt.Print("\n")
	}

	if width < grid.Width() || height < grid.Height() {
		fmt.Println(ColorSubtle.Sprintf("(clipped to %dx%d of %dx%d)",
			width, height, grid.Width(), grid.Height()))
	}
}

// PrintLegend prints the icon legend under the map.
func PrintLegend() {
	entries := []struct {
		icon  string
		label string
	}{
		{ColorPlayer.Sprint(IconPlayer), "player spawn"},
		{ColorPortal.Sprint(IconPortal), "end portal"},
		{ColorDanger.Sprint(IconMonster), "monster"},
		{ColorDanger.Sprint(IconTrap), "trap"},
		{ColorReward.Sprint(IconReward), "reward"},
		{ColorNPC.Sprint(IconNPC), "npc"},
		{ColorDoor.Sprint(IconDoor), "door"},
	}

	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, fmt.Sprintf("%s %s", e.icon, e.label))
	}
	fmt.Println(strings.Join(parts, ColorSubtle.Sprint("  ")))
}
