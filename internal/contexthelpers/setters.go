package contexthelpers

import (
	"context"
	"net/http"

	"github.com/myrjola/icaro/internal/game"
)

func SetCurrentPath(r *http.Request, currentPath string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, currentPathContextKey, currentPath)
	return r.WithContext(ctx)
}

func SetCSRFToken(r *http.Request, csrfToken string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, csrfTokenContextKey, csrfToken)
	return r.WithContext(ctx)
}

func SetCSPNonce(r *http.Request, nonce string) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, cspNonceContextKey, nonce)
	return r.WithContext(ctx)
}

func SetTable(r *http.Request, table *game.Table) *http.Request {
	ctx := r.Context()
	ctx = context.WithValue(ctx, tableContextKey, table)
	return r.WithContext(ctx)
}
