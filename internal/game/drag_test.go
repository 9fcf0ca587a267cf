package game_test

import (
	"testing"

	"github.com/myrjola/icaro/internal/game"
	"github.com/stretchr/testify/require"
)

func TestDrag(t *testing.T) {
	t.Parallel()
	s := stackDeck(t, game.NewState(seeded(4)), "evid-E4", "rec-5")
	s, _ = game.Investigate(s)
	s, _ = game.Investigate(s)

	var d game.Drag
	_, holding := d.Holding()
	require.False(t, holding)

	require.False(t, d.PickUp(s, "rec-5"), "hand cards cannot be filed")
	require.False(t, d.PickUp(s, "dossier-D1"), "dossiers never move")
	_, ok := d.Drop(s, "dossier-D1")
	require.False(t, ok, "nothing to drop")

	require.True(t, d.PickUp(s, "evid-E4"))
	id, holding := d.Holding()
	require.True(t, holding)
	require.Equal(t, "evid-E4", id)

	_, ok = d.Drop(s, "board")
	require.False(t, ok, "dropping outside a dossier does nothing")
	_, holding = d.Holding()
	require.False(t, holding)

	require.True(t, d.PickUp(s, "evid-E4"))
	d.Cancel()
	_, holding = d.Holding()
	require.False(t, holding)

	require.True(t, d.PickUp(s, "evid-E4"))
	a, ok := d.Drop(s, "dossier-D4")
	require.True(t, ok)
	require.Equal(t, game.AssignAction{CardID: "evid-E4", DossierID: "dossier-D4"}, a)

	s, outcome := game.Reduce(s, a)
	require.True(t, outcome.Changed)
	require.False(t, d.PickUp(s, "evid-E4"), "filed cards cannot be picked up again")
}

func TestDragAfterGameOver(t *testing.T) {
	t.Parallel()
	s := stackDeck(t, game.NewState(seeded(4)), "evid-E4")
	s, _ = game.Investigate(s)
	s.GameOver = true

	var d game.Drag
	require.False(t, d.PickUp(s, "evid-E4"))
}
