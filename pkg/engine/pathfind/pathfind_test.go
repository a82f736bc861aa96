package pathfind

import (
	"testing"

	"deepwarren/pkg/engine/geom"
	"deepwarren/pkg/engine/world"
)

func openGrid(w, h int) *world.Grid {
	g := world.NewGrid(w, h, "floor")
	return g
}

func TestFindPathCardinalLength(t *testing.T) {
	f := New(openGrid(5, 5), false)

	path := f.FindPath(geom.Pt(0, 0), geom.Pt(2, 2))
	if len(path) != 5 {
		t.Fatalf("4-dir path has %d cells, want 5", len(path))
	}
	if path[0] != geom.Pt(0, 0) || path[len(path)-1] != geom.Pt(2, 2) {
		t.Errorf("path endpoints wrong: %v", path)
	}
}

func TestFindPathDiagonalLength(t *testing.T) {
	f := New(openGrid(5, 5), true)

	path := f.FindPath(geom.Pt(0, 0), geom.Pt(2, 2))
	if len(path) != 3 {
		t.Fatalf("8-dir path has %d cells, want 3", len(path))
	}
}

func TestFindPathBlocked(t *testing.T) {
	g := openGrid(5, 5)
	// Wall column between start and goal.
	for y := 0; y < 5; y++ {
		g.Set(2, y, "wall")
	}
	f := New(g, false)
	f.SetPassable("floor")

	if path := f.FindPath(geom.Pt(0, 2), geom.Pt(4, 2)); len(path) != 0 {
		t.Errorf("walled-off goal should yield no path, got %v", path)
	}
}

func TestFindPathInvalidEndpoints(t *testing.T) {
	f := New(openGrid(3, 3), false)

	if path := f.FindPath(geom.Pt(-1, 0), geom.Pt(2, 2)); len(path) != 0 {
		t.Error("out-of-bounds start should yield no path")
	}
	if path := f.FindPath(geom.Pt(0, 0), geom.Pt(3, 0)); len(path) != 0 {
		t.Error("out-of-bounds goal should yield no path")
	}
}

func TestFindPathSameCell(t *testing.T) {
	f := New(openGrid(3, 3), false)

	path := f.FindPath(geom.Pt(1, 1), geom.Pt(1, 1))
	if len(path) != 1 || path[0] != geom.Pt(1, 1) {
		t.Errorf("degenerate path = %v, want the single start cell", path)
	}
}

func TestFindPathAvoidsExpensiveTiles(t *testing.T) {
	g := openGrid(5, 3)
	// Mud band across the middle column except the top row.
	g.Set(2, 1, "mud")
	g.Set(2, 2, "mud")

	f := New(g, false)
	f.SetCosts(map[world.Tile]float64{"mud": 25})

	path := f.FindPath(geom.Pt(0, 2), geom.Pt(4, 2))
	if len(path) == 0 {
		t.Fatal("expected a path")
	}
	for _, p := range path {
		if g.GetPoint(p) == "mud" {
			t.Fatalf("path crossed a mud tile at %v: %v", p, path)
		}
	}
}

func TestScaffoldAlwaysTraversable(t *testing.T) {
	g := world.NewGrid(5, 1, "outside")
	g.Set(0, 0, "floor")
	g.Set(4, 0, "floor")

	f := New(g, false)
	f.SetPassable("floor")
	f.SetScaffold("outside")

	path := f.FindPath(geom.Pt(0, 0), geom.Pt(4, 0))
	if len(path) != 5 {
		t.Fatalf("scaffold tiles should carry the path, got %v", path)
	}
}

func TestFindPaths(t *testing.T) {
	g := openGrid(5, 5)
	g.Set(4, 4, "wall")
	f := New(g, false)
	f.SetPassable("floor")

	goals := []geom.Point{geom.Pt(4, 0), geom.Pt(4, 4)}
	paths := f.FindPaths(geom.Pt(0, 0), goals)

	if len(paths) != 2 {
		t.Fatalf("got %d results, want 2", len(paths))
	}
	if len(paths[0]) != 5 {
		t.Errorf("first goal path has %d cells, want 5", len(paths[0]))
	}
	if len(paths[1]) != 0 {
		t.Errorf("blocked goal should yield nil, got %v", paths[1])
	}
}

func TestReachableBounded(t *testing.T) {
	f := New(openGrid(9, 9), false)

	reachable := f.Reachable(geom.Pt(4, 4), 2)
	// Diamond of Manhattan radius 2: 1 + 4 + 8 = 13 cells.
	if reachable.Size() != 13 {
		t.Errorf("bounded flood fill found %d cells, want 13", reachable.Size())
	}
	if !reachable.Has(geom.Pt(4, 4)) {
		t.Error("start must be in the reachable set")
	}
	if reachable.Has(geom.Pt(4, 1)) {
		t.Error("cell at distance 3 should be outside the bound")
	}
}

func TestReachableUnbounded(t *testing.T) {
	g := openGrid(4, 4)
	f := New(g, false)

	reachable := f.Reachable(geom.Pt(0, 0), -1)
	if reachable.Size() != 16 {
		t.Errorf("open 4x4 grid should be fully reachable, got %d", reachable.Size())
	}
}

func TestReachableBlockedStart(t *testing.T) {
	g := openGrid(3, 3)
	g.Set(1, 1, "wall")
	f := New(g, false)
	f.SetPassable("floor")

	if got := f.Reachable(geom.Pt(1, 1), -1); got.Size() != 0 {
		t.Errorf("blocked start should yield an empty set, got %d cells", got.Size())
	}
}
