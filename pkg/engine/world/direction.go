package world

// Direction represents a step to one of the eight neighbouring cells.
type Direction int

// Direction constants. The first four are the cardinals.
const (
	North Direction = iota
	East
	South
	West
	NorthEast
	SouthEast
	SouthWest
	NorthWest
)

// CardinalDirections returns the four cardinal directions for iteration.
func CardinalDirections() []Direction {
	return []Direction{North, East, South, West}
}

// DiagonalDirections returns the four diagonal directions for iteration.
func DiagonalDirections() []Direction {
	return []Direction{NorthEast, SouthEast, SouthWest, NorthWest}
}

// AllDirections returns all eight directions for iteration.
func AllDirections() []Direction {
	return []Direction{North, East, South, West, NorthEast, SouthEast, SouthWest, NorthWest}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	case NorthEast:
		return "NorthEast"
	case SouthEast:
		return "SouthEast"
	case SouthWest:
		return "SouthWest"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight neighbours
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// IsDiagonal returns true for the four diagonal directions
func (d Direction) IsDiagonal() bool {
	return d >= NorthEast && d <= NorthWest
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return SouthWest
	case SouthWest:
		return NorthEast
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	default:
		return d
	}
}

// Delta returns the x and y offsets for this direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	case NorthEast:
		return 1, -1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return -1, 1
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}
