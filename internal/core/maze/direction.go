// Package maze contains the pure maze generation logic.
// This is part of the Functional Core - no I/O, randomness is injected by the caller.
package maze

import "fmt"

// Direction is one of the four cardinal wall flags of a cell.
// Each value carries its bit weight in the wall bitmask.
type Direction uint8

const (
	Up    Direction = 1
	Right Direction = 2
	Down  Direction = 4
	Left  Direction = 8
)

// Directions lists every direction in neighbour order.
var Directions = [4]Direction{Up, Right, Down, Left}

// Opposite returns the direction pointing back the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	panic(fmt.Sprintf("maze: invalid direction %d", uint8(d)))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}
