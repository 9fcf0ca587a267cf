package game_test

import (
	"slices"
	"testing"

	"github.com/myrjola/icaro/internal/game"
	"github.com/stretchr/testify/require"
)

func TestInvestigateBranching(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		cardID       string
		wantHand     int
		wantRevealed int
	}{
		{name: "resource goes to hand", cardID: "rec-3", wantHand: 1, wantRevealed: 0},
		{name: "evidence is revealed", cardID: "evid-E7", wantHand: 0, wantRevealed: 1},
		{name: "interrogation is revealed", cardID: "inter-I5", wantHand: 0, wantRevealed: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			before := stackDeck(t, game.NewState(seeded(11)), tt.cardID)

			after, outcome := game.Investigate(before)

			require.True(t, outcome.Changed)
			require.NotNil(t, outcome.Drawn)
			require.Equal(t, tt.cardID, outcome.Drawn.ID)
			require.Empty(t, outcome.Notice)
			require.Equal(t, 11, after.Hours)
			require.Equal(t, before.DeckCount()-1, after.DeckCount())
			require.Len(t, after.Hand, tt.wantHand)
			require.Len(t, after.Revealed, tt.wantRevealed)
			requireConserved(t, after)
		})
	}
}

func TestTwelveInvestigationsEndTheGame(t *testing.T) {
	t.Parallel()
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		s := game.NewState(seeded(seed))
		var outcome game.Outcome
		for i := range 12 {
			require.False(t, s.GameOver, "draw %d", i)
			s, outcome = game.Investigate(s)
			require.True(t, outcome.Changed)
			require.Equal(t, 12-i-1, s.Hours)
		}
		require.Equal(t, 0, s.Hours)
		require.True(t, s.GameOver)
		require.Equal(t, game.NoticeTimeExpired, outcome.Notice)
		require.Equal(t, 14, s.DeckCount(), "time runs out before the deck does")
		require.Equal(t, 12, len(s.Hand)+len(s.Revealed))
		requireConserved(t, s)
	}
}

func TestInvestigateNoOps(t *testing.T) {
	t.Parallel()
	emptyDeck := game.NewState(firstRNG{})
	emptyDeck.Deck = []game.Card{}
	emptyDeck.Hours = 5

	noHours := game.NewState(firstRNG{})
	noHours.Hours = 0

	over := game.NewState(firstRNG{})
	over.GameOver = true

	for name, s := range map[string]game.State{"empty deck": emptyDeck, "no hours": noHours, "game over": over} {
		require.False(t, s.CanInvestigate(), name)
		after, outcome := game.Investigate(s)
		require.False(t, outcome.Changed, name)
		require.Nil(t, outcome.Drawn, name)
		require.Equal(t, s, after, name)
	}
}

func TestAssignToDossier(t *testing.T) {
	t.Parallel()
	s := stackDeck(t, game.NewState(seeded(5)), "evid-E4", "rec-1")
	s, _ = game.Investigate(s)
	s, _ = game.Investigate(s)
	require.Len(t, s.Revealed, 1)

	after, outcome := game.AssignToDossier(s, "evid-E4", "dossier-D4")
	require.True(t, outcome.Changed)
	require.Empty(t, after.Revealed)
	d4, _ := after.Dossier("dossier-D4")
	require.Len(t, d4.AssignedCards, 1)
	require.Equal(t, "evid-E4", d4.AssignedCards[0].ID)
	for _, d := range after.Dossiers {
		if d.ID != "dossier-D4" {
			require.Empty(t, d.AssignedCards)
		}
	}
	requireConserved(t, after)

	again, outcome := game.AssignToDossier(after, "evid-E4", "dossier-D4")
	require.False(t, outcome.Changed, "filed cards cannot be assigned again")
	require.Equal(t, after, again)

	moved, outcome := game.AssignToDossier(after, "evid-E4", "dossier-D1")
	require.False(t, outcome.Changed, "filed cards cannot move to another dossier")
	require.Equal(t, after, moved)

	require.Len(t, s.Revealed, 1, "input state is untouched")
	d4, _ = s.Dossier("dossier-D4")
	require.Empty(t, d4.AssignedCards)
}

func TestAssignToDossierNoOps(t *testing.T) {
	t.Parallel()
	s := stackDeck(t, game.NewState(seeded(9)), "evid-E1", "rec-2")
	s, _ = game.Investigate(s)
	s, _ = game.Investigate(s)

	tests := []struct {
		name      string
		cardID    string
		dossierID string
	}{
		{name: "hand card", cardID: "rec-2", dossierID: "dossier-D1"},
		{name: "deck card", cardID: s.Deck[0].ID, dossierID: "dossier-D1"},
		{name: "unknown card", cardID: "evid-E99", dossierID: "dossier-D1"},
		{name: "unknown dossier", cardID: "evid-E1", dossierID: "dossier-D9"},
		{name: "card as target", cardID: "evid-E1", dossierID: "rec-2"},
		{name: "dossier card as source", cardID: "dossier-D2", dossierID: "dossier-D1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			after, outcome := game.AssignToDossier(s, tt.cardID, tt.dossierID)
			require.False(t, outcome.Changed)
			require.Equal(t, s, after)
		})
	}
}

func TestActivateResource(t *testing.T) {
	t.Parallel()
	s := stackDeck(t, game.NewState(seeded(21)), "rec-4", "rec-1", "evid-E2")
	s, _ = game.Investigate(s)
	s, _ = game.Investigate(s)
	s, _ = game.Investigate(s)
	require.Len(t, s.Hand, 2)

	after, outcome := game.ActivateResource(s, "rec-1")
	require.True(t, outcome.Changed)
	require.Equal(t, game.NoticeResourceActivated, outcome.Notice)
	require.Len(t, after.Hand, 1)
	require.Equal(t, "rec-4", after.Hand[0].ID)

	// Nothing but the hand changes.
	expected := s
	expected.Hand = after.Hand
	require.Equal(t, expected, after)

	again, outcome := game.ActivateResource(after, "rec-1")
	require.False(t, outcome.Changed)
	require.Equal(t, after, again)

	_, outcome = game.ActivateResource(after, "evid-E2")
	require.False(t, outcome.Changed, "only hand cards can be activated")
}

func TestAttachPortrait(t *testing.T) {
	t.Parallel()
	s := game.NewState(seeded(2))
	const img = "data:image/png;base64,AAAA"

	after, outcome := game.AttachPortrait(s, "dossier-D2", img)
	require.True(t, outcome.Changed)
	d2, _ := after.Dossier("dossier-D2")
	require.Equal(t, img, d2.Card.ImageURL)
	original, _ := s.Dossier("dossier-D2")
	require.Empty(t, original.Card.ImageURL, "input state is untouched")

	expected := s
	expected.Dossiers = after.Dossiers
	require.Equal(t, expected, after, "only the dossier card changes")

	for name, args := range map[string][2]string{
		"empty payload":   {"dossier-D2", ""},
		"unknown dossier": {"dossier-D7", img},
		"not a dossier":   {"evid-E1", img},
	} {
		same, outcome := game.AttachPortrait(s, args[0], args[1])
		require.False(t, outcome.Changed, name)
		require.Equal(t, s, same, name)
	}
}

func TestGameOverLatch(t *testing.T) {
	t.Parallel()
	s := stackDeck(t, game.NewState(seeded(13)), "rec-1", "evid-E4")
	for range 12 {
		s, _ = game.Investigate(s)
	}
	require.True(t, s.GameOver)
	require.NotEmpty(t, s.Hand)
	require.NotEmpty(t, s.Revealed)

	actions := []game.Action{
		game.InvestigateAction{},
		game.AssignAction{CardID: "evid-E4", DossierID: "dossier-D4"},
		game.ActivateAction{CardID: "rec-1"},
		game.AttachPortraitAction{DossierID: "dossier-D1", ImageURL: "data:image/png;base64,AAAA"},
	}
	for _, a := range actions {
		after, outcome := game.Reduce(s, a)
		require.False(t, outcome.Changed, "%T", a)
		require.Equal(t, s, after, "%T", a)
	}
}

// TestRandomPlay plays many games with random actions. Cards are never lost or duplicated (activated resources leave
// the table for good), the clock only runs down and later transitions never modify earlier snapshots.
func TestRandomPlay(t *testing.T) {
	t.Parallel()
	for seed := range int64(50) {
		rng := seeded(seed)
		s := game.NewState(rng)
		var (
			history   []game.State
			frozen    [][]string
			activated []string
		)
		for range 80 {
			history = append(history, s)
			frozen = append(frozen, zoneOrder(s))

			var a game.Action
			switch rng.Intn(4) {
			case 0:
				a = game.InvestigateAction{}
			case 1:
				if len(s.Revealed) > 0 {
					a = game.AssignAction{
						CardID:    s.Revealed[rng.Intn(len(s.Revealed))].ID,
						DossierID: s.Dossiers[rng.Intn(len(s.Dossiers))].ID,
					}
				}
			case 2:
				if len(s.Hand) > 0 {
					a = game.ActivateAction{CardID: s.Hand[rng.Intn(len(s.Hand))].ID}
				}
			case 3:
				a = game.AssignAction{CardID: "rec-1", DossierID: "dossier-D1"}
			}
			if a == nil {
				continue
			}

			next, outcome := game.Reduce(s, a)
			require.LessOrEqual(t, next.Hours, s.Hours)
			require.GreaterOrEqual(t, next.Hours, 0)
			require.Equal(t, next.Hours == 0, next.GameOver)
			if !outcome.Changed {
				require.Equal(t, s, next)
			}
			if act, ok := a.(game.ActivateAction); ok && outcome.Changed {
				activated = append(activated, act.CardID)
			}
			s = next

			ids := append(nonDossierIDs(s), activated...)
			slices.Sort(ids)
			require.Equal(t, catalogNonDossierIDs(), ids)
		}
		for i, h := range history {
			require.Equal(t, frozen[i], zoneOrder(h), "snapshot %d was modified", i)
		}
	}
}

// zoneOrder lists the card ids of every zone in order, including the dossier cards and their portraits.
func zoneOrder(s game.State) []string {
	var ids []string
	for _, zone := range [][]game.Card{s.Deck, s.Revealed, s.Hand} {
		ids = append(ids, "|")
		for _, c := range zone {
			ids = append(ids, c.ID)
		}
	}
	for _, d := range s.Dossiers {
		ids = append(ids, "|", d.Card.ID+d.Card.ImageURL)
		for _, c := range d.AssignedCards {
			ids = append(ids, c.ID)
		}
	}
	return ids
}
