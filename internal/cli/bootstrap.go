// Package cli provides CLI commands for the maze application.
package cli

import (
	gocontext "context"
)

// NewContext creates the context for a single CLI invocation.
// CLI commands should use this instead of context.Background() directly.
func NewContext() gocontext.Context {
	return gocontext.Background()
}
