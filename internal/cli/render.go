package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Plain-terminal palette (Flexoki Dark).
var (
	ColorBorder    = lipgloss.Color("#282726")
	ColorTextDim   = lipgloss.Color("#575653")
	ColorTextMuted = lipgloss.Color("#6F6E69")
	ColorText      = lipgloss.Color("#FFFCF0")
	ColorAccent    = lipgloss.Color("#3AA99F")
	ColorGreen     = lipgloss.Color("#879A39")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Align(lipgloss.Center)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	valueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	costStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	totalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen)

	mutedStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	dimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// Table is a bordered two-or-more column table. The last column is
// right-aligned and colored as money.
type Table struct {
	Title  string
	Rows   [][]string
	Footer []string // optional, rendered bold below a separator
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Width(45).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Render(title))
}

// RenderSubtitle renders a muted label followed by a bold amount.
func RenderSubtitle(label, amount string) string {
	return mutedStyle.Render(label+" ") + totalStyle.Render(amount)
}

// RenderTable renders t with rounded borders.
func RenderTable(t Table) string {
	numCols := len(t.Footer)
	for _, row := range t.Rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	measure := func(row []string) {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for _, row := range t.Rows {
		measure(row)
	}
	measure(t.Footer)

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
		return b.String()
	}

	line := func(row []string, footer bool) string {
		var b strings.Builder
		b.WriteString(dimStyle.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			last := i == numCols-1
			var padded string
			if last {
				padded = fmt.Sprintf(" %*s ", widths[i], cell)
			} else {
				padded = fmt.Sprintf(" %-*s ", widths[i], cell)
			}
			switch {
			case footer:
				b.WriteString(totalStyle.Render(padded))
			case last:
				b.WriteString(costStyle.Render(padded))
			default:
				b.WriteString(valueStyle.Render(padded))
			}
			if !last {
				b.WriteString(dimStyle.Render("│"))
			}
		}
		b.WriteString(dimStyle.Render("│"))
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(t.Title))
		b.WriteString("\n")
	}
	b.WriteString(rule("╭", "┬", "╮"))
	for _, row := range t.Rows {
		b.WriteString(line(row, false))
	}
	if len(t.Footer) > 0 {
		b.WriteString(rule("├", "┼", "┤"))
		b.WriteString(line(t.Footer, true))
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}
