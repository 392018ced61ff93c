package maze

import (
	"fmt"
	"hash/fnv"
)

// Digest returns a stable hex fingerprint of the wall sequence.
// Two grids with equal digests and dimensions are treated as identical.
func Digest(grid Grid) string {
	h := fnv.New64a()
	buf := make([]byte, len(grid))
	for i, c := range grid {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%016x", h.Sum64())
}
