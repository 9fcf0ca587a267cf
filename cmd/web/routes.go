package main

import (
	"net/http"

	"github.com/donseba/go-htmx/middleware"
	"github.com/justinas/alice"
	"github.com/myrjola/icaro/ui"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", http.FileServerFS(ui.Files))

	session := alice.New(app.sessionManager.LoadAndSave, noSurf, middleware.MiddleWare, commonContext, app.withTable)

	mux.Handle("GET /{$}", session.ThenFunc(app.board))
	mux.Handle("GET /cards/{cardID}", session.ThenFunc(app.zoom))
	mux.Handle("POST /investigate", session.ThenFunc(app.investigate))
	mux.Handle("POST /dossiers/{dossierID}/cards", session.ThenFunc(app.assign))
	mux.Handle("POST /hand/{cardID}/activate", session.ThenFunc(app.activate))
	mux.Handle("POST /dossiers/{dossierID}/portrait",
		alice.New(app.limitPortraitBody).Extend(session).ThenFunc(app.attachPortrait))
	mux.Handle("POST /restart", session.ThenFunc(app.restart))
	mux.Handle("POST /briefing/dismiss", session.ThenFunc(app.dismissBriefing))

	api := alice.New(app.sessionManager.LoadAndSave, app.withTable)
	mux.Handle("GET /api/state", api.ThenFunc(app.state))
	mux.HandleFunc("GET /api/healthy", app.healthy)

	return app.recoverPanic(app.logRequest(app.secureHeaders(timeoutHandler(mux, defaultTimeout))))
}
