package maze

// Neighbour is an adjacent cell reachable from a source index.
type Neighbour struct {
	Direction Direction
	Index     int
}

// Neighbours returns the in-bounds neighbours of index in Up, Right, Down, Left order.
// An index outside [0, columns*rows) yields no neighbours.
func Neighbours(index, columns, rows int) []Neighbour {
	size := columns * rows
	if index < 0 || index >= size {
		return nil
	}

	neighbours := make([]Neighbour, 0, len(Directions))
	if index >= columns {
		neighbours = append(neighbours, Neighbour{Up, index - columns})
	}
	if index%columns != columns-1 {
		neighbours = append(neighbours, Neighbour{Right, index + 1})
	}
	if index < size-columns {
		neighbours = append(neighbours, Neighbour{Down, index + columns})
	}
	if index%columns > 0 {
		neighbours = append(neighbours, Neighbour{Left, index - 1})
	}
	return neighbours
}
