package maze

import (
	"fmt"
	"math"
)

// MaxCells bounds the number of cells a single grid may hold.
// The walk keeps a stack and a visited flag per cell, so the product must fit in an int.
const MaxCells = math.MaxInt32

// GenerateContext provides the requested dimensions for generation guards.
type GenerateContext struct {
	Columns int
	Rows    int
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string // Human-readable reason (populated when not allowed)
}

// Error returns the guard result as an error if not allowed, nil otherwise.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanGenerate evaluates whether a grid of the requested dimensions can be generated.
// Rules:
// - columns and rows must both be at least 1
// - columns*rows must not exceed MaxCells
func CanGenerate(ctx GenerateContext) GuardResult {
	if ctx.Columns < 1 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("columns must be a positive integer (got %d)", ctx.Columns),
		}
	}
	if ctx.Rows < 1 {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("rows must be a positive integer (got %d)", ctx.Rows),
		}
	}
	if ctx.Columns > MaxCells/ctx.Rows {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("grid of %dx%d exceeds the maximum of %d cells", ctx.Columns, ctx.Rows, MaxCells),
		}
	}
	return GuardResult{Allowed: true}
}
