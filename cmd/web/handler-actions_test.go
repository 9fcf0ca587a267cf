package main

import (
	"context"
	"fmt"
	"net/url"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/icaro/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clockText(doc *goquery.Document) string {
	return doc.Find(".clock").Text()
}

func Test_actions(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := context.Background()

	order := testDrawOrder()
	evidenceAt, evidence := firstDrawOf(t, order, func(c game.Card) bool { return c.Type != game.CardTypeResource })
	resourceAt, resource := firstDrawOf(t, order, func(c game.Card) bool { return c.Type == game.CardTypeResource })
	draws := max(evidenceAt, resourceAt) + 1

	var (
		doc *goquery.Document
		err error
	)
	for i := range draws {
		doc, err = client.SubmitForm(ctx, "/", "/investigate", nil)
		require.NoError(t, err)
		assert.Contains(t, clockText(doc), fmt.Sprintf("%02d:00H", game.InitialHours-i-1))
		assert.Contains(t, doc.Find(".deck").Text(), fmt.Sprintf("%d cartas", len(order)-i-1))
	}
	assert.Contains(t, doc.Find(".revealed").Text(), evidence.Code)
	assert.Contains(t, doc.Find(".hand").Text(), resource.Code)

	t.Run("assign from zoom", func(t *testing.T) {
		action := "/dossiers/dossier-D3/cards"
		doc, err = client.SubmitForm(ctx, "/cards/"+evidence.ID, action, url.Values{"card_id": {evidence.ID}})
		require.NoError(t, err)
		assert.Contains(t, doc.Find("[data-dossier-id=dossier-D3] .assigned").Text(), evidence.Code)
		assert.NotContains(t, doc.Find(".revealed").Text(), evidence.Code)
		assert.Equal(t, 0, doc.Find(".zoom").Length())

		// Filed cards cannot be filed again.
		doc, err = client.SubmitForm(ctx, "/", "/dossiers/dossier-D1/cards", url.Values{"card_id": {evidence.ID}})
		require.NoError(t, err)
		assert.NotContains(t, doc.Find("[data-dossier-id=dossier-D1] .assigned").Text(), evidence.Code)
		assert.Contains(t, doc.Find("[data-dossier-id=dossier-D3] .assigned").Text(), evidence.Code)
	})

	t.Run("activate resource", func(t *testing.T) {
		zoom, zoomErr := client.GetDoc(ctx, "/cards/"+resource.ID)
		require.NoError(t, zoomErr)
		assert.Contains(t, zoom.Find(".zoom").Text(), "Ativar Este Recurso Agora")

		doc, err = client.SubmitForm(ctx, "/cards/"+resource.ID, "/hand/"+resource.ID+"/activate", nil)
		require.NoError(t, err)
		assert.Contains(t, doc.Find(".notice").Text(), game.NoticeResourceActivated)
		assert.NotContains(t, doc.Find(".hand").Text(), resource.Code)

		// The notice is shown once.
		doc, err = client.GetDoc(ctx, "/")
		require.NoError(t, err)
		assert.Equal(t, 0, doc.Find(".notice").Length())
	})

	t.Run("restart", func(t *testing.T) {
		_, err = client.SubmitForm(ctx, "/", "/briefing/dismiss", nil)
		require.NoError(t, err)
		doc, err = client.SubmitForm(ctx, "/", "/restart", nil)
		require.NoError(t, err)
		assert.Contains(t, clockText(doc), "12:00H")
		assert.Contains(t, doc.Find(".deck").Text(), "26 cartas")
		assert.Equal(t, 5, doc.Find(".assigned .placeholder").Length())
		assert.Equal(t, 1, doc.Find(".briefing").Length(), "restart shows the briefing again")
	})
}

func Test_actions_gameOver(t *testing.T) {
	server := startTestServer(t)
	client := server.Client()
	ctx := context.Background()

	var (
		doc *goquery.Document
		err error
	)
	for range game.InitialHours {
		doc, err = client.SubmitForm(ctx, "/", "/investigate", nil)
		require.NoError(t, err)
	}
	assert.Contains(t, clockText(doc), "00:00H")
	assert.Equal(t, 1, doc.Find(".clock-urgent").Length())
	assert.Contains(t, doc.Find(".game-over").Text(), game.NoticeTimeExpired)
	_, disabled := doc.Find("form[action='/investigate'] button").Attr("disabled")
	assert.True(t, disabled)

	// Nothing moves once the time is up.
	doc, err = client.SubmitForm(ctx, "/", "/investigate", nil)
	require.NoError(t, err)
	assert.Contains(t, clockText(doc), "00:00H")
	assert.Contains(t, doc.Find(".deck").Text(), "14 cartas")

	doc, err = client.SubmitForm(ctx, "/", "/restart", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find(".game-over").Length())
	assert.Contains(t, clockText(doc), "12:00H")
}

func Test_actions_separateSessions(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	alice := server.Client()
	bob, err := server.NewClient()
	require.NoError(t, err)

	_, err = alice.SubmitForm(ctx, "/", "/investigate", nil)
	require.NoError(t, err)

	var aliceState, bobState stateView
	require.NoError(t, alice.GetJSON(ctx, "/api/state", &aliceState))
	require.NoError(t, bob.GetJSON(ctx, "/api/state", &bobState))
	assert.Equal(t, game.InitialHours-1, aliceState.Hours)
	assert.Equal(t, game.InitialHours, bobState.Hours)
	assert.Equal(t, 1, len(aliceState.Revealed)+len(aliceState.Hand))
}
