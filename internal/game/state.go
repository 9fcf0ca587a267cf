package game

import (
	"fmt"
	"slices"
)

// InitialHours is the time budget of a fresh game. Every investigation costs one hour.
const InitialHours = 12

// urgentHours is the threshold below which the countdown is shown as urgent.
const urgentHours = 3

// State is a snapshot of one game. States are values: transitions return new states and never modify the slices of
// the state they were given, so a snapshot can be shared freely.
type State struct {
	Hours int `json:"hours"`
	// Deck is the face-down draw pile. The top of the pile is the last element.
	Deck []Card `json:"-"`
	// Revealed holds drawn cards that wait to be filed into a dossier.
	Revealed []Card `json:"revealedCards"`
	// Hand holds drawn tactical resources that wait to be activated.
	Hand     []Card    `json:"hand"`
	Dossiers []Dossier `json:"dossiers"`
	GameOver bool      `json:"isGameOver"`
}

// NewState deals a fresh game from the catalog. The dossier cards seed one dossier each and the rest of the catalog
// is shuffled into the deck.
func NewState(rng RNG) State {
	var (
		catalog  = Catalog()
		dossiers = make([]Dossier, 0, dossierCount)
		rest     = make([]Card, 0, len(catalog)-dossierCount)
	)
	for _, c := range catalog {
		if c.Type == CardTypeDossier {
			dossiers = append(dossiers, Dossier{ID: c.ID, Card: c, AssignedCards: []Card{}})
			continue
		}
		rest = append(rest, c)
	}

	return State{
		Hours:    InitialHours,
		Deck:     Shuffle(rest, rng),
		Revealed: []Card{},
		Hand:     []Card{},
		Dossiers: dossiers,
		GameOver: false,
	}
}

// DeckCount is the number of cards left to investigate.
func (s State) DeckCount() int {
	return len(s.Deck)
}

// Clock formats the remaining hours like a countdown display, e.g. "07:00H".
func (s State) Clock() string {
	return fmt.Sprintf("%02d:00H", s.Hours)
}

// Urgent reports whether the countdown is close to running out.
func (s State) Urgent() bool {
	return s.Hours <= urgentHours
}

// CanInvestigate reports whether [Investigate] would draw a card.
func (s State) CanInvestigate() bool {
	return !s.GameOver && s.Hours > 0 && len(s.Deck) > 0
}

// FindCard looks up a face-up card: revealed cards, the hand, dossier cards and the cards filed into dossiers.
// Cards still in the deck are face down and never found.
func (s State) FindCard(id string) (Card, bool) {
	if i := indexOf(s.Revealed, id); i >= 0 {
		return s.Revealed[i], true
	}
	if i := indexOf(s.Hand, id); i >= 0 {
		return s.Hand[i], true
	}
	for _, d := range s.Dossiers {
		if d.Card.ID == id {
			return d.Card, true
		}
		if i := indexOf(d.AssignedCards, id); i >= 0 {
			return d.AssignedCards[i], true
		}
	}
	return Card{}, false
}

// Dossier returns the dossier with the given id.
func (s State) Dossier(id string) (Dossier, bool) {
	i := s.dossierIndex(id)
	if i < 0 {
		return Dossier{}, false
	}
	return s.Dossiers[i], true
}

func (s State) dossierIndex(id string) int {
	return slices.IndexFunc(s.Dossiers, func(d Dossier) bool { return d.ID == id })
}

func indexOf(cards []Card, id string) int {
	return slices.IndexFunc(cards, func(c Card) bool { return c.ID == id })
}

// without returns a new slice with the i:th card removed.
func without(cards []Card, i int) []Card {
	out := make([]Card, 0, len(cards)-1)
	out = append(out, cards[:i]...)
	return append(out, cards[i+1:]...)
}

// with returns a new slice with card appended.
func with(cards []Card, card Card) []Card {
	return append(slices.Clip(cards), card)
}
