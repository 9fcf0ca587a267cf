package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/myrjola/icaro/internal/game"
)

const briefing = `ORDEM DE OPERAÇÃO: ÍCARO
TOP SECRET / ACESSO RESTRITO

O Dr. Arnaldo Rossi, cientista-chefe do Projeto Ícaro, foi encontrado morto no Hangar 7
e o protótipo V-4 desapareceu.

Compilem evidências nos dossiês dos 5 suspeitos principais. Vocês têm exatamente
12 HORAS antes que a base seja evacuada.

Pressione qualquer tecla para iniciar a investigação.`

func (m Model) View() string {
	if m.showBriefing {
		return zoomStyle.Render(briefing)
	}

	state := m.table.Snapshot()
	sections := []string{
		m.header(state),
		m.dossiers(state),
		m.zones(state),
	}
	if card, ok := m.table.Inspected(); ok {
		sections = append(sections, m.zoom(state, card))
	}
	if state.GameOver {
		sections = append(sections, errorStyle.Bold(true).Render(game.NoticeTimeExpired+". Pressione r para reiniciar."))
	}
	switch m.mode {
	case modeChooseDossier:
		sections = append(sections, "Anexar foto a qual dossiê? (1-5, esc cancela)")
	case modePortraitPath:
		sections = append(sections, "Arquivo da foto: "+m.input.View())
	case modeBoard:
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render(m.err.Error()))
	} else if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections, m.help.View(keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header(state game.State) string {
	clock := clockStyle
	if state.Urgent() {
		clock = urgentStyle
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("OPERAÇÃO ÍCARO"),
		" ",
		clock.Render(state.Clock()+" RESTANTES"),
		" ",
		fmt.Sprintf("Baralho: %d cartas", state.DeckCount()),
	)
}

func (m Model) dossiers(state game.State) string {
	boxes := make([]string, 0, len(state.Dossiers))
	for i, d := range state.Dossiers {
		var b strings.Builder
		fmt.Fprintf(&b, "[%d] %s", i+1, d.Card.Code)
		if d.Card.ImageURL != "" {
			b.WriteString(" [foto]")
		}
		b.WriteString("\n")
		b.WriteString(d.Card.Title)
		b.WriteString("\n")
		if len(d.AssignedCards) == 0 {
			b.WriteString(placeholderStyle.Render("Aguardando evidências..."))
		}
		for _, c := range d.AssignedCards {
			b.WriteString("\n• " + c.Code)
		}
		boxes = append(boxes, dossierStyle.Render(b.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) zones(state game.State) string {
	held, _ := m.drag.Holding()
	revealed := m.renderZone(zoneRevealed, "Provas Reveladas", state.Revealed, "Nenhuma Prova Revelada", held)
	hand := m.renderZone(zoneHand, "Recursos Táticos", state.Hand, "SEM SUPORTE NO MOMENTO", "")
	return lipgloss.JoinHorizontal(lipgloss.Top, revealed, " ", hand)
}

func (m Model) renderZone(z zone, title string, cards []game.Card, empty string, held string) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(title)}
	if len(cards) == 0 {
		lines = append(lines, placeholderStyle.Render(empty))
	}
	for i, c := range cards {
		style := cardStyle
		switch {
		case c.ID == held:
			style = heldCardStyle
		case z == m.zone && i == m.cursor:
			style = selectedCardStyle
		}
		lines = append(lines, style.Render(c.Code+" "+c.Title))
	}

	box := zoneStyle
	if z == m.zone {
		box = activeZoneStyle
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (m Model) zoom(state game.State, card game.Card) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s · %s\n\n", card.Code, card.Type.Label())
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(card.Title))
	b.WriteString("\n\n")
	b.WriteString(card.Description)
	if !state.GameOver {
		for _, c := range state.Hand {
			if c.ID == card.ID {
				b.WriteString("\n\n[a] Ativar Este Recurso Agora")
			}
		}
		for _, c := range state.Revealed {
			if c.ID == card.ID {
				b.WriteString("\n\n[1-5] Arquivar no dossiê")
			}
		}
	}
	b.WriteString("\n\n[esc] Fechar")
	return zoomStyle.Render(b.String())
}
