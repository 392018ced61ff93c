package maze

// Random is the source of randomness consumed by Generate.
// Implementations are not required to be safe for concurrent use; give each
// generation its own instance.
type Random interface {
	// IntN returns a uniform integer in [0, n). n is always positive.
	IntN(n int) int
}

// Choose returns a uniformly chosen element of items.
// Panics if items is empty.
func Choose[T any](r Random, items []T) T {
	if len(items) == 0 {
		panic("maze: Choose from empty sequence")
	}
	return items[r.IntN(len(items))]
}
