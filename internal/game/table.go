package game

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/myrjola/icaro/internal/errors"
)

// Table is the state container of one game. All transitions go through [Table.Dispatch] which applies them one at a
// time so that concurrent callers never lose each other's updates.
type Table struct {
	logger *slog.Logger
	rng    RNG
	now    func() time.Time

	mu        sync.Mutex
	state     State
	inspected string
	lastUsed  time.Time
}

// NewTable deals a new game. rng is used for this and every later restart.
func NewTable(logger *slog.Logger, rng RNG) *Table {
	return newTable(logger, rng, time.Now)
}

func newTable(logger *slog.Logger, rng RNG, now func() time.Time) *Table {
	return &Table{
		logger:    logger,
		rng:       rng,
		now:       now,
		mu:        sync.Mutex{},
		state:     NewState(rng),
		inspected: "",
		lastUsed:  now(),
	}
}

// Dispatch applies a to the current state.
func (t *Table) Dispatch(ctx context.Context, a Action) Outcome {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dispatchLocked(ctx, a)
}

func (t *Table) dispatchLocked(ctx context.Context, a Action) Outcome {
	t.lastUsed = t.now()
	next, outcome := Reduce(t.state, a)
	if !outcome.Changed {
		t.logger.LogAttrs(ctx, slog.LevelDebug, "action had no effect", slog.Any("action", a))
		return outcome
	}
	t.state = next
	if t.inspected != "" {
		if _, ok := t.state.FindCard(t.inspected); !ok {
			t.inspected = ""
		}
	}

	attrs := []slog.Attr{slog.Any("action", a), slog.Int("hours", next.Hours), slog.Int("deck", next.DeckCount())}
	if outcome.Drawn != nil {
		attrs = append(attrs, slog.String("drawn", outcome.Drawn.ID))
	}
	if outcome.Notice != "" {
		attrs = append(attrs, slog.String("notice", outcome.Notice))
	}
	t.logger.LogAttrs(ctx, slog.LevelInfo, "applied action", attrs...)
	if next.GameOver {
		t.logger.LogAttrs(ctx, slog.LevelInfo, "game over")
	}
	return outcome
}

// Snapshot returns the current state. The returned state shares no mutable memory with the table.
func (t *Table) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Restart throws the current game away and deals a new one.
func (t *Table) Restart(ctx context.Context) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastUsed = t.now()
	t.state = NewState(t.rng)
	t.inspected = ""
	t.logger.LogAttrs(ctx, slog.LevelInfo, "restarted game")
	return t.state
}

// Inspect selects a face-up card for a closer look. Inspection never changes the game.
func (t *Table) Inspect(cardID string) (Card, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastUsed = t.now()
	card, ok := t.state.FindCard(cardID)
	if !ok {
		return Card{}, false
	}
	t.inspected = cardID
	return card, true
}

// Inspected returns the card under inspection as it currently is.
func (t *Table) Inspected() (Card, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.inspected == "" {
		return Card{}, false
	}
	return t.state.FindCard(t.inspected)
}

// Dismiss ends the inspection.
func (t *Table) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inspected = ""
}

// AttachPortrait decodes a portrait and sets it on a dossier card. The decode runs without holding the table so
// players can keep playing meanwhile; the result is applied as a single action against whatever state is current
// once decoding finishes.
func (t *Table) AttachPortrait(
	ctx context.Context,
	dossierID string,
	decode func(ctx context.Context) (string, error),
) (Outcome, error) {
	imageURL, err := decode(ctx)
	if err != nil {
		return Outcome{}, errors.Wrap(err, "decode portrait", slog.String("dossier_id", dossierID))
	}
	return t.Dispatch(ctx, AttachPortraitAction{DossierID: dossierID, ImageURL: imageURL}), nil
}

// idleSince returns when the table was last used.
func (t *Table) idleSince() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastUsed
}
