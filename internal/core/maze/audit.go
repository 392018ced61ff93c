package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is wrapped by every Audit failure.
var ErrInvalidGrid = errors.New("maze: invalid grid")

// Audit checks that grid is a perfect maze over columns*rows cells.
// Checks run in order: size, boundary walls, wall symmetry between
// neighbours, passage count (size-1) and connectivity.
func Audit(grid Grid, columns, rows int) error {
	if columns < 1 || rows < 1 {
		return fmt.Errorf("%w: dimensions %dx%d are not positive", ErrInvalidGrid, columns, rows)
	}
	size := columns * rows
	if len(grid) != size {
		return fmt.Errorf("%w: has %d cells, want %d", ErrInvalidGrid, len(grid), size)
	}

	for i, c := range grid {
		row, col := Position(i, columns)
		if row == 0 && c.Open(Up) {
			return fmt.Errorf("%w: cell %d opens up out of bounds", ErrInvalidGrid, i)
		}
		if row == rows-1 && c.Open(Down) {
			return fmt.Errorf("%w: cell %d opens down out of bounds", ErrInvalidGrid, i)
		}
		if col == 0 && c.Open(Left) {
			return fmt.Errorf("%w: cell %d opens left out of bounds", ErrInvalidGrid, i)
		}
		if col == columns-1 && c.Open(Right) {
			return fmt.Errorf("%w: cell %d opens right out of bounds", ErrInvalidGrid, i)
		}
		if c&^AllWalls != 0 {
			return fmt.Errorf("%w: cell %d has unknown bits %#x", ErrInvalidGrid, i, uint8(c&^AllWalls))
		}
	}

	for i, c := range grid {
		for _, n := range Neighbours(i, columns, rows) {
			if c.Open(n.Direction) != grid[n.Index].Open(n.Direction.Opposite()) {
				return fmt.Errorf("%w: wall between %d and %d is one-sided", ErrInvalidGrid, i, n.Index)
			}
		}
	}

	if passages := grid.Passages(); passages != size-1 {
		return fmt.Errorf("%w: has %d passages, want %d", ErrInvalidGrid, passages, size-1)
	}

	if reached := reachable(grid, columns, rows); reached != size {
		return fmt.Errorf("%w: only %d of %d cells reachable from cell 0", ErrInvalidGrid, reached, size)
	}
	return nil
}

// reachable counts the cells connected to cell 0 through open passages.
func reachable(grid Grid, columns, rows int) int {
	seen := make([]bool, len(grid))
	seen[0] = true
	queue := []int{0}
	count := 0
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		count++
		for _, n := range Neighbours(i, columns, rows) {
			if grid[i].Open(n.Direction) && !seen[n.Index] {
				seen[n.Index] = true
				queue = append(queue, n.Index)
			}
		}
	}
	return count
}
