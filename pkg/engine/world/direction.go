package world

// Direction represents a cardinal direction
type Direction int

// Direction constants
const (
	North Direction = iota
	East
	South
	West
)

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
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
	default:
		return "Unknown"
	}
}

// Delta returns the unit vector for this direction
func (d Direction) Delta() Vec {
	switch d {
	case North:
		return Vec{DRow: -1}
	case East:
		return Vec{DCol: 1}
	case South:
		return Vec{DRow: 1}
	case West:
		return Vec{DCol: -1}
	default:
		return Vec{}
	}
}
