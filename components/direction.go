// Package components defines the plain data types of the simulation:
// directions, positions, movement schedules, and the cell itself.
package components

// Direction is the heading a cell holds during one patrol step.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// NumDirections is the draw bound for random schedule generation.
const NumDirections = 5

// Delta returns the per-tick position change for the direction.
// The Y axis grows downward, so up is y-1.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "invalid"
}

// Position is an integer world coordinate.
type Position struct {
	X, Y int
}

// Rand is the injected randomness source used for initial energy, random
// schedules, and division offsets. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}
