package contexthelpers_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/myrjola/icaro/internal/contexthelpers"
	"github.com/myrjola/icaro/internal/game"
	"github.com/myrjola/icaro/internal/random"
	"github.com/myrjola/icaro/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	r := httptest.NewRequest("GET", "/cards/evid-E4", nil)
	ctx := r.Context()
	require.Empty(t, contexthelpers.CurrentPath(ctx))
	require.Empty(t, contexthelpers.CSRFToken(ctx))
	require.Empty(t, contexthelpers.CSPNonce(ctx))
	require.Nil(t, contexthelpers.Table(ctx))

	table := game.NewTable(testhelpers.NewLogger(io.Discard), random.Crypto{})
	r = contexthelpers.SetCurrentPath(r, r.URL.Path)
	r = contexthelpers.SetCSRFToken(r, "token")
	r = contexthelpers.SetCSPNonce(r, "nonce")
	r = contexthelpers.SetTable(r, table)

	ctx = r.Context()
	require.Equal(t, "/cards/evid-E4", contexthelpers.CurrentPath(ctx))
	require.Equal(t, "token", contexthelpers.CSRFToken(ctx))
	require.Equal(t, "nonce", contexthelpers.CSPNonce(ctx))
	require.Same(t, table, contexthelpers.Table(ctx))
}
