package darwin

import "fmt"

// Direction is one of the eight compass directions an animal can face.
type Direction int

// Compass directions, clockwise from the top left.
// The order matches the index of the gene that weights each direction.
const (
	NorthWest Direction = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
)

// NumDirections is the length of a gene vector.
const NumDirections = 8

var offsets = [NumDirections][2]int{
	NorthWest: {-1, -1},
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
}

var directionNames = [NumDirections]string{"NW", "N", "NE", "E", "SE", "S", "SW", "W"}

// Offset returns the unit step (dx, dy) for d. Y grows downwards.
func (d Direction) Offset() (dx, dy int) {
	o := offsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// wrap steps v by delta on a ring of size n.
func wrap(v uint32, delta int, n uint32) uint32 {
	switch {
	case delta < 0 && v == 0:
		return n - 1
	case delta < 0:
		return v - 1
	case delta > 0 && v >= n-1:
		return 0
	case delta > 0:
		return v + 1
	}
	return v
}
