package main

import (
	"encoding/json"
	"net/http"

	"github.com/myrjola/icaro/internal/contexthelpers"
	"github.com/myrjola/icaro/internal/errors"
	"github.com/myrjola/icaro/internal/game"
)

// stateView is the public projection of a game. The deck is face down so only its size is exposed.
type stateView struct {
	Hours     int            `json:"hours"`
	Clock     string         `json:"clock"`
	Urgent    bool           `json:"urgent"`
	DeckCount int            `json:"deckCount"`
	Revealed  []game.Card    `json:"revealedCards"`
	Hand      []game.Card    `json:"hand"`
	Dossiers  []game.Dossier `json:"dossiers"`
	GameOver  bool           `json:"isGameOver"`
}

func newStateView(s game.State) stateView {
	return stateView{
		Hours:     s.Hours,
		Clock:     s.Clock(),
		Urgent:    s.Urgent(),
		DeckCount: s.DeckCount(),
		Revealed:  s.Revealed,
		Hand:      s.Hand,
		Dossiers:  s.Dossiers,
		GameOver:  s.GameOver,
	}
}

func (app *application) state(w http.ResponseWriter, r *http.Request) {
	view := newStateView(contexthelpers.Table(r.Context()).Snapshot())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(view); err != nil {
		app.serverError(w, r, errors.Wrap(err, "encode state"))
	}
}
