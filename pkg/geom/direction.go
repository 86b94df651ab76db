package geom

// Direction represents one of the four cardinal directions. Diagonal movement
// is not modelled.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal directions in N, E, S, W order.
var Directions = [4]Direction{North, East, South, West}

// String returns the string representation of a Direction.
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

// Opposite returns the opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}
