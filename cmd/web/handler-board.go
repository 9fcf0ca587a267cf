package main

import (
	"net/http"
	"slices"

	"github.com/myrjola/icaro/internal/contexthelpers"
	"github.com/myrjola/icaro/internal/game"
)

type zoomTemplateData struct {
	Card game.Card
	// Activatable is set for resources in the hand.
	Activatable bool
	// Fileable is set for revealed cards.
	Fileable bool
}

type boardTemplateData struct {
	State        game.State
	Inspected    *zoomTemplateData
	Notice       string
	ShowBriefing bool
}

func (app *application) newBoardTemplateData(r *http.Request) boardTemplateData {
	ctx := r.Context()
	table := contexthelpers.Table(ctx)
	state := table.Snapshot()

	data := boardTemplateData{
		State:        state,
		Inspected:    nil,
		Notice:       app.sessionManager.PopString(ctx, noticeSessionKey),
		ShowBriefing: !app.sessionManager.GetBool(ctx, briefingDismissedSessionKey),
	}
	if card, ok := table.Inspected(); ok {
		isCard := func(c game.Card) bool { return c.ID == card.ID }
		data.Inspected = &zoomTemplateData{
			Card:        card,
			Activatable: !state.GameOver && slices.ContainsFunc(state.Hand, isCard),
			Fileable:    !state.GameOver && slices.ContainsFunc(state.Revealed, isCard),
		}
	}
	return data
}

// board renders the table. Visiting the board closes any zoomed card.
func (app *application) board(w http.ResponseWriter, r *http.Request) {
	contexthelpers.Table(r.Context()).Dismiss()
	app.render(w, r, http.StatusOK, "board", "board", app.newBoardTemplateData(r))
}

// zoom renders the table with a card enlarged on top of it.
func (app *application) zoom(w http.ResponseWriter, r *http.Request) {
	if _, ok := contexthelpers.Table(r.Context()).Inspect(r.PathValue("cardID")); !ok {
		app.notFound(w, r)
		return
	}
	app.render(w, r, http.StatusOK, "board", "board", app.newBoardTemplateData(r))
}

// boardResponse finishes a state changing request. Plain form posts are redirected back to the board while htmx
// requests get the updated board right away.
func (app *application) boardResponse(w http.ResponseWriter, r *http.Request) {
	if !app.htmx.NewHandler(w, r).IsHxRequest() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	contexthelpers.Table(r.Context()).Dismiss()
	w.Header().Set("HX-Replace-Url", "/")
	app.render(w, r, http.StatusOK, "board", "board", app.newBoardTemplateData(r))
}
