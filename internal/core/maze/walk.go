package maze

// StartPolicy selects the range the starting cell is drawn from.
type StartPolicy string

const (
	// StartUniform draws the start from [0, size).
	StartUniform StartPolicy = "uniform"
	// StartLegacy draws the start from [0, size-1), never starting on the last cell.
	// Grids recorded under this policy replay only under this policy.
	StartLegacy StartPolicy = "legacy"
)

// ParseStartPolicy maps a config or flag value to a StartPolicy.
// The empty string selects StartUniform.
func ParseStartPolicy(s string) (StartPolicy, bool) {
	switch StartPolicy(s) {
	case "", StartUniform:
		return StartUniform, true
	case StartLegacy:
		return StartLegacy, true
	}
	return "", false
}

type walkConfig struct {
	start StartPolicy
}

// Option customizes a single Generate call.
type Option func(*walkConfig)

// WithStartPolicy overrides the start range. Unknown policies fall back to StartUniform.
func WithStartPolicy(p StartPolicy) Option {
	return func(c *walkConfig) {
		if p == StartLegacy {
			c.start = StartLegacy
			return
		}
		c.start = StartUniform
	}
}

// Generate carves a perfect maze over a columns*rows grid using a randomized
// depth-first walk with an explicit backtrack stack.
//
// Callers must validate dimensions first (see CanGenerate); Generate panics on
// non-positive dimensions.
func Generate(columns, rows int, rng Random, opts ...Option) Grid {
	if columns < 1 || rows < 1 {
		panic("maze: Generate requires positive dimensions")
	}

	cfg := walkConfig{start: StartUniform}
	for _, opt := range opts {
		opt(&cfg)
	}

	grid := NewGrid(columns, rows)
	walk(grid, columns, rows, startIndex(len(grid), cfg.start, rng), rng)
	return grid
}

// startIndex draws the first cell of the walk according to policy.
func startIndex(size int, policy StartPolicy, rng Random) int {
	if policy == StartLegacy {
		if size == 1 {
			return 0
		}
		return rng.IntN(size - 1)
	}
	return rng.IntN(size)
}

func walk(grid Grid, columns, rows, start int, rng Random) {
	size := len(grid)
	visited := make([]bool, size)
	stack := make([]int, 0, size)

	current := start
	visited[current] = true
	visitedCount := 1
	stack = append(stack, current)

	candidates := make([]Neighbour, 0, len(Directions))
	for visitedCount < size {
		candidates = candidates[:0]
		for _, n := range Neighbours(current, columns, rows) {
			if !visited[n.Index] {
				candidates = append(candidates, n)
			}
		}

		if len(candidates) > 0 {
			next := Choose(rng, candidates)
			grid.Carve(current, next)

			current = next.Index
			visited[current] = true
			visitedCount++
			stack = append(stack, current)
			continue
		}

		// Dead end: the start cell stays on the stack until everything is visited.
		if len(stack) == 0 {
			panic("maze: backtrack stack exhausted with unvisited cells remaining")
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
	}
}
