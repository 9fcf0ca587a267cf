package main

import (
	"log/slog"
	"net/http"

	"github.com/myrjola/icaro/internal/contexthelpers"
	"github.com/myrjola/icaro/internal/errors"
	"github.com/myrjola/icaro/internal/portrait"
)

// attachPortrait sets an uploaded image as the portrait of a dossier. Submitting the form without a file does
// nothing.
func (app *application) attachPortrait(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dossierID := r.PathValue("dossierID")

	file, _, err := r.FormFile("portrait")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrMissingFile):
			app.boardResponse(w, r)
		case errors.As(err, &maxBytesErr):
			app.clientError(w, r, http.StatusRequestEntityTooLarge, errors.Wrap(err, "read form"))
		default:
			app.clientError(w, r, http.StatusBadRequest, errors.Wrap(err, "read form"))
		}
		return
	}
	defer func() {
		_ = file.Close()
	}()

	_, err = contexthelpers.Table(ctx).AttachPortrait(ctx, dossierID, portrait.Decoder(file, app.maxPortraitBytes))
	switch {
	case err == nil, errors.Is(err, portrait.ErrEmpty):
		app.boardResponse(w, r)
	case errors.Is(err, portrait.ErrTooLarge):
		app.clientError(w, r, http.StatusRequestEntityTooLarge, err)
	case errors.Is(err, portrait.ErrNotImage):
		app.clientError(w, r, http.StatusUnsupportedMediaType, err)
	default:
		app.serverError(w, r, errors.Wrap(err, "attach portrait", slog.String("dossier_id", dossierID)))
	}
}
