package main

import (
	"net/http"

	"github.com/myrjola/icaro/internal/contexthelpers"
	"github.com/myrjola/icaro/internal/game"
)

// dispatch applies a player action to the session's table. Actions that have no effect are not errors, the players
// simply see the unchanged board.
func (app *application) dispatch(w http.ResponseWriter, r *http.Request, a game.Action) {
	ctx := r.Context()
	outcome := contexthelpers.Table(ctx).Dispatch(ctx, a)
	if outcome.Notice != "" {
		app.sessionManager.Put(ctx, noticeSessionKey, outcome.Notice)
	}
	app.boardResponse(w, r)
}

func (app *application) investigate(w http.ResponseWriter, r *http.Request) {
	app.dispatch(w, r, game.InvestigateAction{})
}

func (app *application) assign(w http.ResponseWriter, r *http.Request) {
	app.dispatch(w, r, game.AssignAction{
		CardID:    r.PostFormValue("card_id"),
		DossierID: r.PathValue("dossierID"),
	})
}

func (app *application) activate(w http.ResponseWriter, r *http.Request) {
	app.dispatch(w, r, game.ActivateAction{CardID: r.PathValue("cardID")})
}

func (app *application) restart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	contexthelpers.Table(ctx).Restart(ctx)
	app.sessionManager.Remove(ctx, briefingDismissedSessionKey)
	app.sessionManager.Remove(ctx, noticeSessionKey)
	app.boardResponse(w, r)
}

func (app *application) dismissBriefing(w http.ResponseWriter, r *http.Request) {
	app.sessionManager.Put(r.Context(), briefingDismissedSessionKey, true)
	app.boardResponse(w, r)
}
