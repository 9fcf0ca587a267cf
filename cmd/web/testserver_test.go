package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"io"
	"slices"
	"strconv"
	"testing"

	"github.com/myrjola/icaro/internal/e2etest"
	"github.com/myrjola/icaro/internal/game"
	"github.com/myrjola/icaro/internal/random"
	"github.com/stretchr/testify/require"
)

// testMaxPortraitBytes keeps the portrait limit small so that oversized uploads are cheap to produce.
const testMaxPortraitBytes = 4096

// testShuffleSeed makes the deal of the first table on a test server predictable, see [testDrawOrder].
const testShuffleSeed = 1234

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "ICARO_ADDR":
		return "localhost:0", true
	case "ICARO_SQLITE_URL":
		return ":memory:", true
	case "ICARO_MAX_PORTRAIT_BYTES":
		return strconv.Itoa(testMaxPortraitBytes), true
	case "ICARO_SHUFFLE_SEED":
		return strconv.Itoa(testShuffleSeed), true
	default:
		return "", false
	}
}

// startTestServer starts the web server for the duration of the test.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	server, err := e2etest.StartServer(ctx, io.Discard, testLookupEnv, run)
	require.NoError(t, err)
	return server
}

// testDrawOrder lists the cards in the order the first table of a test server reveals them.
func testDrawOrder() []game.Card {
	deck := game.NewState(random.NewSeeded(testShuffleSeed)).Deck
	order := slices.Clone(deck)
	slices.Reverse(order)
	return order
}

// firstDrawOf returns the position in draw order of the first card matching keep.
func firstDrawOf(t *testing.T, order []game.Card, keep func(game.Card) bool) (int, game.Card) {
	t.Helper()
	i := slices.IndexFunc(order, keep)
	require.GreaterOrEqual(t, i, 0)
	require.Less(t, i, game.InitialHours, "the card has to be reachable within the time budget")
	return i, order[i]
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := range 8 {
		for y := range 8 {
			img.Set(x, y, color.RGBA{R: uint8(x * 32), G: uint8(y * 32), B: 128, A: 255}) //nolint:gosec // test pattern
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
