package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/myrjola/icaro/internal/e2etest"
	"github.com/myrjola/icaro/internal/errors"
	"github.com/myrjola/icaro/internal/logging"
)

type smokeState struct {
	Hours     int `json:"hours"`
	DeckCount int `json:"deckCount"`
}

// TestInvestigate draws one card on a fresh table and checks that the countdown moved.
func TestInvestigate(client *e2etest.Client) error {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second) //nolint:mnd // 10 seconds
	defer cancel()
	var (
		err           error
		before, after smokeState
	)

	if err = client.GetJSON(ctx, "/api/state", &before); err != nil {
		return errors.Wrap(err, "get state")
	}
	if _, err = client.SubmitForm(ctx, "/", "/investigate", nil); err != nil {
		return errors.Wrap(err, "investigate")
	}
	if err = client.GetJSON(ctx, "/api/state", &after); err != nil {
		return errors.Wrap(err, "get state after investigating")
	}
	if after.Hours != before.Hours-1 || after.DeckCount != before.DeckCount-1 {
		return errors.New("investigating did not draw a card",
			slog.Int("hours_before", before.Hours), slog.Int("hours_after", after.Hours),
			slog.Int("deck_before", before.DeckCount), slog.Int("deck_after", after.DeckCount))
	}
	if _, err = client.SubmitForm(ctx, "/", "/restart", nil); err != nil {
		return errors.Wrap(err, "restart")
	}
	return nil
}

func main() {
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	ctx := context.Background()

	if len(os.Args) != 2 { //nolint:mnd // we expect only hostname to be passed as argument.
		logger.LogAttrs(ctx, slog.LevelError, "usage: smoketest <hostname>")
		os.Exit(1)
	}

	var (
		url    = os.Args[1]
		client *e2etest.Client
		err    error
	)
	if !strings.Contains(url, "://") {
		url = "https://" + url
	}
	ctx = logging.WithAttrs(ctx, slog.String("url", url))

	if client, err = e2etest.NewClient(url); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error creating client", errors.SlogError(err))
		os.Exit(1)
	}
	if err = TestInvestigate(client); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "error testing investigation", errors.SlogError(err))
		os.Exit(1)
	}

	logger.LogAttrs(ctx, slog.LevelInfo, "Smoke test successful 🙌")
	os.Exit(0)
}
