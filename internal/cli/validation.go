package cli

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/example/maze/internal/core/run"
)

var shortIDPattern = regexp.MustCompile(`^\d+$`)

// validateRunID checks that id uses the full RUN-NNN format.
// Returns an error with a helpful message if the ID appears to be a short ID.
func validateRunID(id string) error {
	if run.ParseRunNumber(id) > 0 {
		return nil
	}

	// Check if it looks like a short ID (just digits)
	if shortIDPattern.MatchString(id) {
		n, _ := strconv.Atoi(id)
		return fmt.Errorf("invalid run ID '%s'. Use full ID format: RUN-%03d", id, n)
	}

	// Check if it's using wrong case
	if upper := strings.ToUpper(id); upper != id && run.ParseRunNumber(upper) > 0 {
		return fmt.Errorf("invalid run ID '%s'. IDs are case-sensitive, use: %s", id, upper)
	}

	return fmt.Errorf("invalid run ID '%s'. Expected format: RUN-xxx", id)
}
