package game

import "log/slog"

// Action is a player intent that can be reduced against a [State].
type Action interface {
	slog.LogValuer
	apply(s State) (State, Outcome)
}

// Reduce applies a to s.
func Reduce(s State, a Action) (State, Outcome) {
	return a.apply(s)
}

type InvestigateAction struct{}

func (InvestigateAction) apply(s State) (State, Outcome) {
	return Investigate(s)
}

func (InvestigateAction) LogValue() slog.Value {
	return slog.GroupValue(slog.String("kind", "investigate"))
}

type AssignAction struct {
	CardID    string
	DossierID string
}

func (a AssignAction) apply(s State) (State, Outcome) {
	return AssignToDossier(s, a.CardID, a.DossierID)
}

func (a AssignAction) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", "assign"),
		slog.String("card_id", a.CardID),
		slog.String("dossier_id", a.DossierID),
	)
}

type ActivateAction struct {
	CardID string
}

func (a ActivateAction) apply(s State) (State, Outcome) {
	return ActivateResource(s, a.CardID)
}

func (a ActivateAction) LogValue() slog.Value {
	return slog.GroupValue(slog.String("kind", "activate"), slog.String("card_id", a.CardID))
}

// AttachPortraitAction carries an already encoded image URL.
type AttachPortraitAction struct {
	DossierID string
	ImageURL  string
}

func (a AttachPortraitAction) apply(s State) (State, Outcome) {
	return AttachPortrait(s, a.DossierID, a.ImageURL)
}

// LogValue leaves out the image since data URLs are large.
func (a AttachPortraitAction) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", "attach_portrait"),
		slog.String("dossier_id", a.DossierID),
		slog.Int("image_url_length", len(a.ImageURL)),
	)
}
