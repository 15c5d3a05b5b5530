package cli

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey is the type for context keys used in this package.
// Using a distinct type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// WithLogger returns a new context with the CLI's logger attached.
// The logger can be retrieved later with loggerFromContext.
func (c *CLI) WithLogger(ctx context.Context) context.Context {
	return context.WithValue(ctx, loggerKey, c.Logger)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
// This ensures commands always have a valid logger even if context setup fails.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
