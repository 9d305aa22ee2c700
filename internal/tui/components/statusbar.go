package components

import (
	"strings"

	"github.com/diarijajan/diari/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// an optional message on the right, shown in the error color when isErr.
func RenderStatusBar(width int, message string, isErr bool) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)
	msgStyle := style
	if isErr {
		msgStyle = msgStyle.Foreground(t.Error).Bold(true)
	}

	left := style.Render(" [a]tambah  [j/k]gulir  [?]bantuan  [q]keluar")
	right := ""
	if message != "" {
		right = msgStyle.Render(message + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return left + style.Render(strings.Repeat(" ", padding)) + right
}
