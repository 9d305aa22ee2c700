// Package tui provides the interactive Bubble Tea expense screen for diari.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/diarijajan/diari/internal/cli"
	"github.com/diarijajan/diari/internal/model"
	"github.com/diarijajan/diari/internal/pipeline"
	"github.com/diarijajan/diari/internal/tui/components"
	"github.com/diarijajan/diari/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DataLoadedMsg is sent when the seed collection has been read.
type DataLoadedMsg struct {
	Collection model.Collection
	Err        error
}

// Options configures a new App.
type Options struct {
	SeedPath   string
	Aggregator pipeline.Aggregator
	Formatter  cli.Formatter
	// Now stamps new entries. Defaults to time.Now.
	Now func() time.Time
}

// App is the root Bubble Tea model: the day cards, the grand total and the
// add-entry modal.
type App struct {
	// Data
	collection model.Collection
	summary    model.Summary
	loaded     bool
	dataErr    error

	agg      pipeline.Aggregator
	format   cli.Formatter
	seedPath string
	now      func() time.Time

	// UI state
	width    int
	height   int
	scroll   int
	showHelp bool
	spinner  spinner.Model

	// Add-entry modal (huh form)
	form  *huh.Form
	entry *entryValues

	// Status bar message after an add
	status    string
	statusErr bool
}

const (
	minTerminalWidth = 40
	maxContentWidth  = 160
	cardWidth        = 36
	minContentHeight = 3
)

// NewApp creates a new screen model.
func NewApp(opts Options) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return App{
		agg:      opts.Aggregator,
		format:   opts.Formatter,
		seedPath: opts.SeedPath,
		now:      now,
		spinner:  sp,
		entry:    &entryValues{},
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadDataCmd(a.seedPath), a.spinner.Tick)
}

// recompute rebuilds the display model from the current collection.
func (a *App) recompute() {
	s, err := a.agg.Summarize(a.collection)
	if err != nil {
		a.dataErr = err
		a.summary = model.Summary{}
		return
	}
	a.dataErr = nil
	a.summary = s
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(modalWidth(a.width))
		}
		return a, nil

	case DataLoadedMsg:
		a.loaded = true
		if msg.Err != nil {
			a.dataErr = msg.Err
			return a, nil
		}
		a.collection = msg.Collection
		a.recompute()
		return a, nil

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		if key == "ctrl+c" {
			return a, tea.Quit
		}

		if a.form != nil {
			if key == "esc" {
				return a.closeEntryForm(), nil
			}
			return a.updateEntryForm(msg)
		}

		if !a.loaded {
			return a, nil
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "a", "+":
			if a.dataErr != nil {
				return a, nil
			}
			return a.openEntryForm()
		case "j", "down":
			if a.scroll < a.maxScroll() {
				a.scroll++
			}
		case "k", "up":
			if a.scroll > 0 {
				a.scroll--
			}
		case "g", "home":
			a.scroll = 0
		case "G", "end":
			a.scroll = a.maxScroll()
		}
		return a, nil
	}

	// Forward everything else (cursor blinks, etc.) to the modal
	if a.form != nil {
		return a.updateEntryForm(msg)
	}

	return a, nil
}

// Collection returns the current collection, including added entries.
func (a App) Collection() model.Collection {
	return a.collection
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n  diari needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.dataErr != nil {
		return a.viewError()
	}
	if a.form != nil {
		return a.viewEntryForm()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) contentWidth() int {
	if a.width > maxContentWidth {
		return maxContentWidth
	}
	return a.width
}

func (a App) viewLoading() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 3)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	card := cardStyle.Render(a.spinner.View() + textStyle.Render(" Memuat data..."))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

func (a App) viewError() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Error).
		Width(a.contentWidth() - 8).
		Padding(1, 2)
	titleStyle := lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	body := titleStyle.Render("Data tidak bisa dibaca") + "\n\n" +
		textStyle.Render(a.dataErr.Error()) + "\n\n" +
		dimStyle.Render("Press q to quit")
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(body))
}

func (a App) viewHelp() string {
	t := theme.Active
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	bindings := []struct{ key, desc string }{
		{"a", "Tambah item"},
		{"j k", "Scroll"},
		{"g G", "Top / bottom"},
		{"Esc", "Cancel the form"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-5s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()

	header := a.renderHeader(cw)
	statusBar := components.RenderStatusBar(w, a.status, a.statusErr)
	contentH := a.contentHeight()

	offset := a.scroll
	if maxOff := a.maxScroll(); offset > maxOff {
		offset = maxOff
	}
	content := scrollLines(a.renderCards(cw), offset, contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.PlaceHorizontal(w, lipgloss.Center, header),
		content,
		statusBar)
}

func (a App) renderHeader(cw int) string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	subtitleStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	totalStyle := lipgloss.NewStyle().Foreground(t.Total).Bold(true)
	buttonStyle := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Padding(0, 1)

	title := titleStyle.Render("Diari Jajan")
	subtitle := subtitleStyle.Render("Pengeluaran Bulan ini ") + totalStyle.Render(a.format.Currency(a.summary.Total))
	button := buttonStyle.Render("[a] Tambah Item")

	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(
		"\n" + title + "\n" + subtitle + "\n\n" + button + "\n")
}

// dayCards turns the summary into pre-formatted card content.
func (a App) dayCards() []components.DayCard {
	cards := make([]components.DayCard, 0, len(a.summary.Groups))
	for _, g := range a.summary.Groups {
		c := components.DayCard{
			Header: a.format.DayHeader(g.Date),
			Total:  a.format.Currency(g.Subtotal),
		}
		for _, r := range g.Records {
			ts, err := a.agg.ParseCreatedAt(r)
			if err != nil {
				continue // already validated by Summarize
			}
			c.Lines = append(c.Lines, components.CardLine{
				Left:  cli.FormatTimeLabel(ts) + " " + r.Name,
				Right: a.format.Currency(r.Cost),
			})
		}
		cards = append(cards, c)
	}
	return cards
}

func (a App) renderCards(cw int) string {
	cards := a.dayCards()
	if len(cards) == 0 {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim).
			Render("Belum ada pengeluaran. Tekan a untuk menambah.")
	}
	return components.CardGrid(cards, cw, cardWidth)
}

// contentHeight is the number of card lines visible between the header and
// the status bar.
func (a App) contentHeight() int {
	h := a.height - lipgloss.Height(a.renderHeader(a.contentWidth())) - 1
	if h < minContentHeight {
		h = minContentHeight
	}
	return h
}

func (a App) maxScroll() int {
	lines := strings.Count(a.renderCards(a.contentWidth()), "\n") + 1
	maxOff := lines - a.contentHeight()
	if maxOff < 0 {
		return 0
	}
	return maxOff
}

// ─── Helpers ────────────────────────────────────────────────────

// loadDataCmd reads the seed collection off the update loop.
func loadDataCmd(seedPath string) tea.Cmd {
	return func() tea.Msg {
		c, err := pipeline.Load(seedPath)
		return DataLoadedMsg{Collection: c, Err: err}
	}
}

// scrollLines returns h lines of s starting at offset, padded with blank lines.
func scrollLines(s string, offset, h int) string {
	lines := strings.Split(s, "\n")
	if offset > len(lines) {
		offset = len(lines)
	}
	lines = lines[offset:]
	if len(lines) > h {
		lines = lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
