package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7A1F1F")).
			Padding(0, 1)

	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F2C14E"))

	urgentStyle = clockStyle.
			Foreground(lipgloss.Color("#FF4D4D")).
			Blink(true)

	dossierStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8C7851")).
			Padding(0, 1).
			Width(26)

	zoneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)

	activeZoneStyle = zoneStyle.
			BorderForeground(lipgloss.Color("#F2C14E"))

	cardStyle = lipgloss.NewStyle().
			Padding(0, 1)

	selectedCardStyle = cardStyle.
				Reverse(true)

	heldCardStyle = cardStyle.
			Foreground(lipgloss.Color("#F2C14E")).
			Underline(true)

	zoomStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#F2C14E")).
			Padding(1, 2).
			Width(60)

	noticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4D4D"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#777777")).
				Italic(true)
)
