// Package geom provides integer grid geometry shared by the generator,
// the pathfinder and the tile grid.
package geom

import "math"

// Point is a coordinate on the tile grid.
type Point struct {
	X int
	Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Euclidean returns the straight-line distance to q.
func (p Point) Euclidean(q Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Manhattan returns the taxicab distance to q.
func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Chebyshev returns the king-move distance to q.
func (p Point) Chebyshev(q Point) int {
	dx := abs(p.X - q.X)
	dy := abs(p.Y - q.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Rect is an axis-aligned rectangle covering cells [X, X+W) x [Y, Y+H).
type Rect struct {
	X int
	Y int
	W int
	H int
}

// NewRect builds a Rect from an origin and a size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Center returns the integer center cell of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects reports whether the two rectangles share any cell.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Area returns the number of cells covered by the rectangle.
func (r Rect) Area() int {
	return r.W * r.H
}

// Outcodes for the trivial reject test in SegmentIntersectsRect.
const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

func outcode(p Point, r Rect) int {
	code := 0
	if p.X < r.X {
		code |= outLeft
	} else if p.X >= r.X+r.W {
		code |= outRight
	}
	if p.Y < r.Y {
		code |= outTop
	} else if p.Y >= r.Y+r.H {
		code |= outBottom
	}
	return code
}

// ccw reports whether the triangle a, b, c winds counter-clockwise.
func ccw(a, b, c Point) bool {
	return (c.Y-a.Y)*(b.X-a.X) > (b.Y-a.Y)*(c.X-a.X)
}

// segmentsCross reports whether segments a-b and c-d properly intersect.
func segmentsCross(a, b, c, d Point) bool {
	return ccw(a, c, d) != ccw(b, c, d) && ccw(a, b, c) != ccw(a, b, d)
}

// SegmentIntersectsRect reports whether the segment a-b passes through r.
// An endpoint inside the rectangle counts as an intersection.
func SegmentIntersectsRect(a, b Point, r Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}

	codeA := outcode(a, r)
	codeB := outcode(b, r)
	if codeA == 0 || codeB == 0 {
		return true
	}
	if codeA&codeB != 0 {
		// Both endpoints on the same outside of the rectangle.
		return false
	}

	tl := Point{X: r.X, Y: r.Y}
	tr := Point{X: r.X + r.W - 1, Y: r.Y}
	bl := Point{X: r.X, Y: r.Y + r.H - 1}
	br := Point{X: r.X + r.W - 1, Y: r.Y + r.H - 1}

	return segmentsCross(a, b, tl, tr) ||
		segmentsCross(a, b, tr, br) ||
		segmentsCross(a, b, br, bl) ||
		segmentsCross(a, b, bl, tl)
}
