package maze

import (
	"strconv"
	"strings"
)

// Cell is the wall bitmask of a single cell. A set bit means a wall.
type Cell uint8

// AllWalls is the initial state of every cell.
const AllWalls = Cell(Up | Right | Down | Left)

// Has reports whether the wall toward d is present.
func (c Cell) Has(d Direction) bool {
	return c&Cell(d) != 0
}

// Open reports whether there is a passage toward d.
func (c Cell) Open(d Direction) bool {
	return !c.Has(d)
}

// Grid is a row-major sequence of cells: index i is row i/columns, column i%columns.
type Grid []Cell

// NewGrid allocates a columns*rows grid with every wall in place.
func NewGrid(columns, rows int) Grid {
	grid := make(Grid, columns*rows)
	for i := range grid {
		grid[i] = AllWalls
	}
	return grid
}

// Carve opens the passage from index toward d and the paired wall on the target cell.
func (g Grid) Carve(index int, n Neighbour) {
	g[index] &^= Cell(n.Direction)
	g[n.Index] &^= Cell(n.Direction.Opposite())
}

// Passages counts the carved passages. Each passage is counted once.
func (g Grid) Passages() int {
	count := 0
	for _, c := range g {
		// Right and Down cover every adjacent pair exactly once.
		if c.Open(Right) {
			count++
		}
		if c.Open(Down) {
			count++
		}
	}
	return count
}

// String formats the grid as a bracketed list of wall bitmasks, e.g. "[13, 3, 13, 6]".
func (g Grid) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range g {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(c)))
	}
	b.WriteByte(']')
	return b.String()
}

// Position returns the row and column of index in a grid with the given column count.
func Position(index, columns int) (row, col int) {
	return index / columns, index % columns
}
