// Package run contains the pure business rules for recorded generation runs.
// This is part of the Functional Core - no I/O, only pure functions.
package run

import (
	"fmt"
	"regexp"
	"strconv"
)

// runIDPattern matches a complete run ID; nothing may follow the digits.
var runIDPattern = regexp.MustCompile(`^RUN-(\d+)$`)

// GenerateRunID generates a run ID from the current max number.
// The format is RUN-XXX where XXX is a zero-padded 3-digit number.
func GenerateRunID(currentMax int) string {
	return fmt.Sprintf("RUN-%03d", currentMax+1)
}

// ParseRunNumber extracts the numeric portion from a run ID.
// Returns -1 if the ID format is invalid.
func ParseRunNumber(id string) int {
	m := runIDPattern.FindStringSubmatch(id)
	if m == nil {
		return -1
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return num
}
