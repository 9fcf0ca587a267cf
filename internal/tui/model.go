// Package tui is a same-screen table for the terminal. Players share the keyboard the way they would share a
// tabletop: one player draws, another files the evidence.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/myrjola/icaro/internal/errors"
	"github.com/myrjola/icaro/internal/game"
	"github.com/myrjola/icaro/internal/portrait"
)

type zone int

const (
	zoneRevealed zone = iota
	zoneHand
)

type mode int

const (
	modeBoard mode = iota
	modeChooseDossier
	modePortraitPath
)

// portraitMsg reports the result of reading a portrait file.
type portraitMsg struct {
	dossierID string
	err       error
}

type Model struct {
	ctx   context.Context
	table *game.Table
	drag  game.Drag

	zone   zone
	cursor int

	mode            mode
	portraitDossier string
	input           textinput.Model

	help         help.Model
	showBriefing bool
	notice       string
	err          error
	width        int
}

// New returns a model playing on table. ctx scopes the logging of the actions taken.
func New(ctx context.Context, table *game.Table) Model {
	ti := textinput.New()
	ti.Placeholder = "caminho/para/foto.png"
	ti.CharLimit = 512
	ti.Width = 50

	return Model{
		ctx:             ctx,
		table:           table,
		drag:            game.Drag{},
		zone:            zoneRevealed,
		cursor:          0,
		mode:            modeBoard,
		portraitDossier: "",
		input:           ti,
		help:            help.New(),
		showBriefing:    true,
		notice:          "",
		err:             nil,
		width:           0,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case portraitMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.notice = "Foto anexada ao dossiê."
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) && m.mode != modePortraitPath {
			return m, tea.Quit
		}
		if m.showBriefing {
			m.showBriefing = false
			return m, nil
		}
		switch m.mode {
		case modeChooseDossier:
			return m.chooseDossier(msg), nil
		case modePortraitPath:
			return m.portraitPath(msg)
		case modeBoard:
		}
		return m.board(msg), nil
	}
	return m, nil
}

func (m Model) board(msg tea.KeyMsg) Model {
	state := m.table.Snapshot()
	m.err = nil

	switch {
	case key.Matches(msg, keys.Investigate):
		m.notice = ""
		m = m.dispatch(game.InvestigateAction{})
	case key.Matches(msg, keys.Left):
		m.cursor--
	case key.Matches(msg, keys.Right):
		m.cursor++
	case key.Matches(msg, keys.SwitchZone):
		if m.zone == zoneRevealed {
			m.zone = zoneHand
		} else {
			m.zone = zoneRevealed
		}
		m.cursor = 0
	case key.Matches(msg, keys.PickUp):
		card, ok := m.selected(state)
		if held, holding := m.drag.Holding(); holding && ok && held == card.ID {
			m.drag.Cancel()
			break
		}
		if !ok || !m.drag.PickUp(state, card.ID) {
			m.notice = "Só provas reveladas podem ser arquivadas."
		}
	case key.Matches(msg, keys.Drop):
		m = m.drop(state, msg.String())
	case key.Matches(msg, keys.Activate):
		m = m.activate(state)
	case key.Matches(msg, keys.Zoom):
		if card, ok := m.selected(state); ok {
			m.table.Inspect(card.ID)
		}
	case key.Matches(msg, keys.Dismiss):
		if _, holding := m.drag.Holding(); holding {
			m.drag.Cancel()
			break
		}
		m.table.Dismiss()
	case key.Matches(msg, keys.Portrait):
		if !state.GameOver {
			m.mode = modeChooseDossier
		}
	case key.Matches(msg, keys.Restart):
		m.table.Restart(m.ctx)
		m.drag.Cancel()
		m.zone, m.cursor = zoneRevealed, 0
		m.notice = ""
		m.showBriefing = true
	}

	return m.clampCursor()
}

// drop files the held card, or the zoomed card, into the dossier numbered by slot.
func (m Model) drop(state game.State, slot string) Model {
	dossierID, ok := dossierAt(state, slot)
	if !ok {
		return m
	}
	if _, holding := m.drag.Holding(); holding {
		if a, dropped := m.drag.Drop(state, dossierID); dropped {
			return m.dispatch(a)
		}
		return m
	}
	if card, zoomed := m.table.Inspected(); zoomed {
		m = m.dispatch(game.AssignAction{CardID: card.ID, DossierID: dossierID})
		m.table.Dismiss()
		return m
	}
	m.notice = "Pegue uma prova com espaço antes de arquivar."
	return m
}

// activate uses the zoomed resource, or the selected one in the hand.
func (m Model) activate(state game.State) Model {
	if card, zoomed := m.table.Inspected(); zoomed && card.Type == game.CardTypeResource {
		return m.dispatch(game.ActivateAction{CardID: card.ID})
	}
	if m.zone != zoneHand {
		return m
	}
	if card, ok := m.selected(state); ok {
		return m.dispatch(game.ActivateAction{CardID: card.ID})
	}
	return m
}

func (m Model) dispatch(a game.Action) Model {
	outcome := m.table.Dispatch(m.ctx, a)
	switch {
	case outcome.Notice != "":
		m.notice = outcome.Notice
	case outcome.Drawn != nil:
		m.notice = fmt.Sprintf("Revelada: %s %s", outcome.Drawn.Code, outcome.Drawn.Title)
	case !outcome.Changed:
		m.notice = "Nada aconteceu."
	default:
		m.notice = ""
	}
	return m
}

func (m Model) chooseDossier(msg tea.KeyMsg) Model {
	if key.Matches(msg, keys.Dismiss) {
		m.mode = modeBoard
		return m
	}
	dossierID, ok := dossierAt(m.table.Snapshot(), msg.String())
	if !ok {
		return m
	}
	m.portraitDossier = dossierID
	m.mode = modePortraitPath
	m.input.SetValue("")
	m.input.Focus()
	return m
}

func (m Model) portraitPath(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // the input handles the rest
	case tea.KeyEsc:
		m.mode = modeBoard
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeBoard
		m.input.Blur()
		return m, attachPortrait(m.ctx, m.table, m.portraitDossier, m.input.Value())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// attachPortrait reads the image at path in the background and sets it on the dossier.
func attachPortrait(ctx context.Context, table *game.Table, dossierID string, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return portraitMsg{dossierID: dossierID, err: errors.Wrap(err, "open portrait", slog.String("path", path))}
		}
		defer func() {
			_ = f.Close()
		}()
		_, err = table.AttachPortrait(ctx, dossierID, portrait.Decoder(f, portrait.DefaultMaxBytes))
		return portraitMsg{dossierID: dossierID, err: err}
	}
}

func (m Model) zoneCards(state game.State) []game.Card {
	if m.zone == zoneHand {
		return state.Hand
	}
	return state.Revealed
}

func (m Model) selected(state game.State) (game.Card, bool) {
	cards := m.zoneCards(state)
	if m.cursor < 0 || m.cursor >= len(cards) {
		return game.Card{}, false
	}
	return cards[m.cursor], true
}

func (m Model) clampCursor() Model {
	n := len(m.zoneCards(m.table.Snapshot()))
	m.cursor = min(max(m.cursor, 0), max(n-1, 0))
	return m
}

// dossierAt maps the slot keys "1" to "5" to dossier ids.
func dossierAt(state game.State, slot string) (string, bool) {
	if len(slot) != 1 || slot[0] < '1' || slot[0] > '9' {
		return "", false
	}
	i := int(slot[0] - '1')
	if i >= len(state.Dossiers) {
		return "", false
	}
	return state.Dossiers[i].ID, true
}

// Run plays on table until the players quit.
func Run(ctx context.Context, table *game.Table) error {
	if _, err := tea.NewProgram(New(ctx, table), tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return errors.Wrap(err, "run terminal table")
	}
	return nil
}
