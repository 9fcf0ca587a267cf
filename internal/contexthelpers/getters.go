package contexthelpers

import (
	"context"

	"github.com/myrjola/icaro/internal/game"
)

func CurrentPath(ctx context.Context) string {
	currentPath, ok := ctx.Value(currentPathContextKey).(string)
	if !ok {
		return ""
	}

	return currentPath
}

func CSRFToken(ctx context.Context) string {
	csrfToken, ok := ctx.Value(csrfTokenContextKey).(string)
	if !ok {
		return ""
	}

	return csrfToken
}

func CSPNonce(ctx context.Context) string {
	nonce, ok := ctx.Value(cspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return nonce
}

// Table returns the game table of the current session or nil if the request did not pass the table middleware.
func Table(ctx context.Context) *game.Table {
	table, ok := ctx.Value(tableContextKey).(*game.Table)
	if !ok {
		return nil
	}

	return table
}
