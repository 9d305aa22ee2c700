// Package components provides reusable widgets for the diari screen.
package components

import (
	"strings"

	"github.com/diarijajan/diari/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// CardLine is one record row: left text and a right-aligned amount.
type CardLine struct {
	Left  string
	Right string
}

// DayCard is the pre-formatted content of one day group.
type DayCard struct {
	Header string
	Lines  []CardLine
	Total  string
}

// MinCardWidth is the narrowest a day card is ever rendered.
const MinCardWidth = 28

// RenderDayCard renders a bordered card: header, one row per record, and a
// "Total" footer. outerWidth includes the border.
func RenderDayCard(c DayCard, outerWidth int) string {
	t := theme.Active

	if outerWidth < MinCardWidth {
		outerWidth = MinCardWidth
	}
	inner := CardInnerWidth(outerWidth)

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		BorderBackground(t.Background).
		Background(t.Surface).
		Width(outerWidth-2).
		Padding(0, 1)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	moneyStyle := lipgloss.NewStyle().Foreground(t.Money).Background(t.Surface)
	ruleStyle := lipgloss.NewStyle().Foreground(t.Border).Background(t.Surface)
	totalStyle := lipgloss.NewStyle().Foreground(t.Total).Background(t.Surface).Bold(true)

	var b strings.Builder
	b.WriteString(headerStyle.Render(c.Header))
	for _, l := range c.Lines {
		b.WriteString("\n")
		b.WriteString(ruleStyle.Render(strings.Repeat("─", inner)))
		b.WriteString("\n")
		b.WriteString(splitLine(nameStyle.Render(truncate(l.Left, inner-lipgloss.Width(l.Right)-1)),
			moneyStyle.Render(l.Right), inner, t.Surface))
	}
	b.WriteString("\n")
	b.WriteString(ruleStyle.Render(strings.Repeat("━", inner)))
	b.WriteString("\n")
	b.WriteString(splitLine(totalStyle.Render("Total"), totalStyle.Render(c.Total), inner, t.Surface))

	return cardStyle.Render(b.String())
}

// CardGrid wraps cards left to right into rows that fit width. Every card
// is rendered at the same outer width.
func CardGrid(cards []DayCard, width, cardWidth int) string {
	if len(cards) == 0 {
		return ""
	}
	if cardWidth < MinCardWidth {
		cardWidth = MinCardWidth
	}
	perRow := width / cardWidth
	if perRow < 1 {
		perRow = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}
		rendered := make([]string, 0, end-start)
		for _, c := range cards[start:end] {
			rendered = append(rendered, RenderDayCard(c, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// CardInnerWidth returns the usable text width inside a card of the given
// outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}

func splitLine(left, right string, width int, bg lipgloss.Color) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", gap)) + right
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
