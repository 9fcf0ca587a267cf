package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Investigate key.Binding
	Left        key.Binding
	Right       key.Binding
	SwitchZone  key.Binding
	PickUp      key.Binding
	Drop        key.Binding
	Activate    key.Binding
	Zoom        key.Binding
	Dismiss     key.Binding
	Portrait    key.Binding
	Restart     key.Binding
	Quit        key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Investigate, k.PickUp, k.Drop, k.Activate, k.Zoom, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Investigate, k.Restart, k.Quit},
		{k.Left, k.Right, k.SwitchZone},
		{k.PickUp, k.Drop, k.Activate},
		{k.Zoom, k.Dismiss, k.Portrait},
	}
}

var keys = keyMap{
	Investigate: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "investigar")),
	Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "anterior")),
	Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "próxima")),
	SwitchZone:  key.NewBinding(key.WithKeys("up", "down", "tab"), key.WithHelp("↑/↓", "provas/recursos")),
	PickUp:      key.NewBinding(key.WithKeys(" "), key.WithHelp("espaço", "pegar prova")),
	Drop:        key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "arquivar no dossiê")),
	Activate:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "ativar recurso")),
	Zoom:        key.NewBinding(key.WithKeys("z", "enter"), key.WithHelp("z", "ampliar")),
	Dismiss:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "fechar")),
	Portrait:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "anexar foto")),
	Restart:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reiniciar")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "sair")),
}
