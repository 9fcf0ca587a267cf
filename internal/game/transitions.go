package game

import "slices"

// Notices shown to the players after a transition.
const (
	NoticeResourceActivated = "Recurso tático ativado."
	NoticeTimeExpired       = "TEMPO ESGOTADO"
)

// Outcome describes what a transition did. A transition whose preconditions do not hold leaves the state untouched
// and reports Changed == false; this is not an error.
type Outcome struct {
	Changed bool
	// Drawn is the card taken from the deck by an investigation.
	Drawn *Card
	// Notice is a message for the players, if any.
	Notice string
}

// Investigate draws the top card of the deck at the cost of one hour. Resources go to the hand and everything else
// is revealed. The game ends when the clock reaches zero, whether or not cards remain.
func Investigate(s State) (State, Outcome) {
	if !s.CanInvestigate() {
		return s, Outcome{}
	}

	top := len(s.Deck) - 1
	card := s.Deck[top]

	next := s
	next.Deck = s.Deck[:top:top]
	next.Hours = s.Hours - 1
	if card.Type == CardTypeResource {
		next.Hand = with(s.Hand, card)
	} else {
		next.Revealed = with(s.Revealed, card)
	}

	outcome := Outcome{Changed: true, Drawn: &card}
	if next.Hours <= 0 {
		next.Hours = 0
		next.GameOver = true
		outcome.Notice = NoticeTimeExpired
	}
	return next, outcome
}

// AssignToDossier files a revealed card into a dossier. Cards that are not revealed, including cards already filed
// and cards in the hand, are left where they are. Unknown dossiers are ignored.
func AssignToDossier(s State, cardID, dossierID string) (State, Outcome) {
	if s.GameOver {
		return s, Outcome{}
	}
	ci := indexOf(s.Revealed, cardID)
	di := s.dossierIndex(dossierID)
	if ci < 0 || di < 0 {
		return s, Outcome{}
	}

	next := s
	next.Revealed = without(s.Revealed, ci)
	next.Dossiers = slices.Clone(s.Dossiers)
	next.Dossiers[di].AssignedCards = with(s.Dossiers[di].AssignedCards, s.Revealed[ci])
	return next, Outcome{Changed: true}
}

// ActivateResource spends a resource from the hand. Activation consumes the card and notifies the players; resources
// have no further mechanical effect.
func ActivateResource(s State, cardID string) (State, Outcome) {
	if s.GameOver {
		return s, Outcome{}
	}
	i := indexOf(s.Hand, cardID)
	if i < 0 {
		return s, Outcome{}
	}

	next := s
	next.Hand = without(s.Hand, i)
	return next, Outcome{Changed: true, Notice: NoticeResourceActivated}
}

// AttachPortrait sets the portrait of a dossier card. An empty imageURL means nothing was supplied.
func AttachPortrait(s State, dossierID, imageURL string) (State, Outcome) {
	if s.GameOver || imageURL == "" {
		return s, Outcome{}
	}
	di := s.dossierIndex(dossierID)
	if di < 0 {
		return s, Outcome{}
	}

	next := s
	next.Dossiers = slices.Clone(s.Dossiers)
	next.Dossiers[di].Card.ImageURL = imageURL
	return next, Outcome{Changed: true}
}
