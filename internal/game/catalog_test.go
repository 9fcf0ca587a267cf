package game_test

import (
	"testing"

	"github.com/myrjola/icaro/internal/game"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Parallel()
	cards := game.Catalog()
	require.Len(t, cards, 31)

	counts := make(map[game.CardType]int)
	ids := make(map[string]bool)
	for _, c := range cards {
		counts[c.Type]++
		require.False(t, ids[c.ID], "duplicate id %s", c.ID)
		ids[c.ID] = true
		require.NotEmpty(t, c.Title, c.ID)
		require.NotEmpty(t, c.Description, c.ID)
		require.NotEmpty(t, c.Code, c.ID)
		require.Empty(t, c.ImageURL, c.ID)
	}
	require.Equal(t, map[game.CardType]int{
		game.CardTypeDossier:       5,
		game.CardTypeEvidence:      12,
		game.CardTypeInterrogation: 8,
		game.CardTypeResource:      6,
	}, counts)

	for _, id := range []string{"dossier-D1", "dossier-D5", "evid-E1", "evid-E12", "inter-I1", "inter-I8", "rec-1", "rec-6"} {
		require.True(t, ids[id], "missing %s", id)
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	t.Parallel()
	cards := game.Catalog()
	cards[0].Title = "tampered"
	require.NotEqual(t, "tampered", game.Catalog()[0].Title)
}

func TestCardTypeLabel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		cardType game.CardType
		want     string
	}{
		{game.CardTypeDossier, "Dossiê"},
		{game.CardTypeEvidence, "Evidência Forense"},
		{game.CardTypeInterrogation, "Interrogatório"},
		{game.CardTypeResource, "Recurso Tático"},
		{game.CardType("other"), "other"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.cardType.Label())
	}
}
