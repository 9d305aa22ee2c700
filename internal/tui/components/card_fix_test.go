package components

import (
	"strings"
	"testing"

	"github.com/diarijajan/diari/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func sampleCard(lines int) DayCard {
	c := DayCard{Header: "5 Maret", Total: "Rp 88.000"}
	for i := 0; i < lines; i++ {
		c.Lines = append(c.Lines, CardLine{Left: "08:15 Kopi susu", Right: "Rp 18.000"})
	}
	return c
}

func TestRenderDayCard_Content(t *testing.T) {
	theme.SetActive("flexoki-dark")

	out := RenderDayCard(sampleCard(2), 36)
	plain := stripANSI(out)

	for _, want := range []string{"5 Maret", "08:15 Kopi susu", "Rp 18.000", "Total", "Rp 88.000"} {
		if !strings.Contains(plain, want) {
			t.Errorf("card missing %q:\n%s", want, plain)
		}
	}

	// border + header + (rule + line) per record + rule + total + border
	if got, want := len(strings.Split(out, "\n")), 2+1+2*2+2; got != want {
		t.Errorf("card height = %d, want %d", got, want)
	}
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != 36 {
			t.Errorf("line %d width = %d, want 36", i, w)
		}
	}
}

func TestRenderDayCard_TruncatesLongNames(t *testing.T) {
	c := DayCard{
		Header: "6 Maret",
		Lines:  []CardLine{{Left: "07:30 " + strings.Repeat("bubur ayam spesial ", 5), Right: "Rp 15.000"}},
		Total:  "Rp 15.000",
	}
	out := RenderDayCard(c, MinCardWidth)
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != MinCardWidth {
			t.Errorf("line %d width = %d, want %d", i, w, MinCardWidth)
		}
	}
	if !strings.Contains(stripANSI(out), "…") {
		t.Error("long name was not truncated")
	}
}

func TestCardGrid_Wraps(t *testing.T) {
	cards := []DayCard{sampleCard(1), sampleCard(1), sampleCard(1)}

	single := CardGrid(cards, 40, 36)
	wide := CardGrid(cards, 120, 36)

	oneCard := len(strings.Split(RenderDayCard(sampleCard(1), 36), "\n"))
	if got := len(strings.Split(single, "\n")); got != 3*oneCard {
		t.Errorf("narrow grid height = %d, want %d", got, 3*oneCard)
	}
	if got := len(strings.Split(wide, "\n")); got != oneCard {
		t.Errorf("wide grid height = %d, want %d", got, oneCard)
	}
	if CardGrid(nil, 80, 36) != "" {
		t.Error("empty grid should render nothing")
	}
}

func TestRenderStatusBar(t *testing.T) {
	bar := RenderStatusBar(80, "gagal", true)
	if w := lipgloss.Width(bar); w != 80 {
		t.Errorf("status bar width = %d, want 80", w)
	}
	if !strings.Contains(stripANSI(bar), "gagal") {
		t.Error("status message missing")
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
